// Package main is a terminal demo client for the fluxion state container.
//
// It wires a counter store with typed dispatchers, thunk and recovery
// middleware, and a change-handler-driven redraw loop on a tcell screen.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/fluxion/action"
	"github.com/dshills/fluxion/devtools"
	"github.com/dshills/fluxion/middleware"
	"github.com/dshills/fluxion/reducer"
	"github.com/dshills/fluxion/selector"
	"github.com/dshills/fluxion/store"
)

type counterState struct {
	Count int `json:"count"`
	Step  int `json:"step"`
}

func main() {
	os.Exit(run())
}

func run() int {
	red := buildReducer()
	rec := devtools.NewRecorder[counterState](500)

	st := store.New(counterState{Step: 1}, red,
		store.WithMiddleware(
			rec.Middleware(),
			middleware.Recovery[counterState](),
			middleware.Thunk[counterState](),
		),
		store.WithMetrics[counterState](),
	)

	increment := store.DispatcherFor[int](st, "counter.increment")
	decrement := store.DispatcherFor[int](st, "counter.decrement")
	reset := store.DispatcherFor[struct{}](st, "counter.reset")
	setStep := store.DispatcherFor[int](st, "counter.step")

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Redraw on every committed counter change. The count line is
	// highlighted only when the count itself moved, so step changes
	// render without the flash.
	countSel := selector.New("count")
	handlers := store.NewChangeHandlerBuilder[counterState]()
	for _, name := range red.Actions() {
		handlers.OnAction(name, func(c store.Change[counterState]) error {
			moved, err := countSel.Changed(c.Prev, c.Next)
			if err != nil {
				return err
			}
			draw(screen, c.Next, moved)
			return nil
		})
	}
	if _, err := handlers.Build(st); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to subscribe: %v\n", err)
		return 1
	}
	defer handlers.Dispose()

	draw(screen, st.State(), false)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, st.State(), false)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return 0
			}
			switch ev.Rune() {
			case 'q':
				return 0
			case '+', '=':
				_, _ = increment.Dispatch(st.State().Step)
			case '-':
				_, _ = decrement.Dispatch(st.State().Step)
			case 'r':
				_, _ = reset.Dispatch(struct{}{})
			case 's':
				_, _ = setStep.Dispatch(nextStep(st.State().Step))
			case 'x':
				_ = exportLog(rec)
			case 'd':
				// Double via a thunk: read state, re-inject an increment.
				double := middleware.ThunkFunc[counterState](func(api middleware.API[counterState]) error {
					return api.Dispatch(action.New("counter.increment", api.State().Count))
				})
				_ = st.Dispatch(action.New("counter.double", double))
			}
		}
	}
}

func buildReducer() reducer.Reducer[counterState] {
	b := reducer.NewBuilder[counterState]()
	reducer.Add(b, "counter.increment", func(s counterState, n int) (counterState, error) {
		s.Count += n
		return s, nil
	})
	reducer.Add(b, "counter.decrement", func(s counterState, n int) (counterState, error) {
		s.Count -= n
		return s, nil
	})
	reducer.Add(b, "counter.reset", func(s counterState, _ struct{}) (counterState, error) {
		s.Count = 0
		return s, nil
	})
	reducer.Add(b, "counter.step", func(s counterState, n int) (counterState, error) {
		s.Step = n
		return s, nil
	})
	return b.Build()
}

// exportLog writes the recorded action log as JSON lines.
func exportLog(rec *devtools.Recorder[counterState]) error {
	f, err := os.Create("counter-session.jsonl")
	if err != nil {
		return err
	}
	defer f.Close()
	return rec.Export(f)
}

func nextStep(step int) int {
	switch step {
	case 1:
		return 5
	case 5:
		return 10
	default:
		return 1
	}
}

func draw(screen tcell.Screen, s counterState, countMoved bool) {
	screen.Clear()

	countStyle := tcell.StyleDefault
	if countMoved {
		countStyle = countStyle.Bold(true)
	}

	drawText(screen, 2, 1, tcell.StyleDefault.Bold(true), "fluxion counter")
	drawText(screen, 2, 3, countStyle, fmt.Sprintf("count: %d    step: %d", s.Count, s.Step))
	drawText(screen, 2, 5, tcell.StyleDefault.Dim(true),
		"+/- adjust   d double   s step   r reset   x export log   q quit")

	drawBar(screen, 2, 7, s.Count)

	screen.Show()
}

// drawBar renders the count as a colored bar, hue shifting with magnitude.
func drawBar(screen tcell.Screen, x, y, count int) {
	width := count
	if width < 0 {
		width = -width
	}
	if max, _ := screen.Size(); width > max-x-1 {
		width = max - x - 1
	}

	for i := 0; i < width; i++ {
		hue := 120.0 - float64(i)*3.0
		if hue < 0 {
			hue = 0
		}
		c := colorful.Hsv(hue, 0.9, 0.9)
		r, g, b := c.RGB255()
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
