package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"term-ca/internal/core"
)

var titlePause = time.Second

// Options configures an interactive run.
type Options struct {
	FPS         int   // generations per second, 0 means 60
	Generations int   // stop after this many generations, 0 means unlimited
	Seed        int64 // seed used when the r key reinitializes the simulation
	Title       bool  // show the title card before the first frame
}

// Run drives the simulation on an initialized screen until a quit key is
// pressed, the generation budget is exhausted, or the grid settles all dead
// or all alive. Keys: q or Escape quits, space pauses, n steps once, r
// reinitializes from the seed, s reseeds from the clock.
func Run(screen tcell.Screen, sim core.Sim, opts Options) error {
	if opts.Title {
		drawTitle(screen, sim.Size())
		time.Sleep(titlePause)
	}

	clock := core.NewFrameClock(opts.FPS)
	defer clock.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	seed := opts.Seed
	paused := false
	drawFrame(screen, sim)

	advance := func() bool {
		sim.Step()
		drawFrame(screen, sim)
		if opts.Generations > 0 && sim.Generation() >= opts.Generations {
			return false
		}
		return !settled(sim)
	}

	for {
		select {
		case <-clock.C():
			if paused {
				continue
			}
			if !advance() {
				return nil
			}
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				drawFrame(screen, sim)
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' || ev.Rune() == 'Q':
					return nil
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n' || ev.Rune() == 'N':
					if !advance() {
						return nil
					}
				case ev.Rune() == 'r' || ev.Rune() == 'R':
					sim.Reset(seed)
					drawFrame(screen, sim)
				case ev.Rune() == 's' || ev.Rune() == 'S':
					seed = time.Now().UnixNano()
					sim.Reset(seed)
					drawFrame(screen, sim)
				}
			}
		}
	}
}

// settled reports whether every cell is dead or every cell is alive.
func settled(sim core.Sim) bool {
	cells := sim.Cells()
	live := 0
	for _, v := range cells {
		if v != 0 {
			live++
		}
	}
	return live == 0 || live == len(cells)
}

func drawFrame(screen tcell.Screen, sim core.Sim) {
	size := sim.Size()
	cells := sim.Cells()
	style := tcell.StyleDefault
	screen.Clear()
	drawBorder(screen, size, style)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			r := ' '
			if cells[y*size.W+x] != 0 {
				r = '█'
			}
			screen.SetContent(x+1, y+1, r, nil, style)
		}
	}
	screen.Show()
}

func drawTitle(screen tcell.Screen, size core.Size) {
	style := tcell.StyleDefault
	screen.Clear()
	drawBorder(screen, size, style)
	w, h := size.W, size.H
	if w >= 14 && h >= 5 {
		mid := (h-3)/2 + 1
		writeCentered(screen, mid, w, "Conway's", style)
		writeCentered(screen, mid+2, w, "Game of Life", style)
	} else {
		writeCentered(screen, (h-1)/2+1, w, "G o L", style)
	}
	screen.Show()
}

func drawBorder(screen tcell.Screen, size core.Size, style tcell.Style) {
	for x := 0; x < size.W+2; x++ {
		screen.SetContent(x, 0, '—', nil, style)
		screen.SetContent(x, size.H+1, '—', nil, style)
	}
	for y := 1; y <= size.H; y++ {
		screen.SetContent(0, y, '|', nil, style)
		screen.SetContent(size.W+1, y, '|', nil, style)
	}
}

func writeCentered(screen tcell.Screen, y, w int, text string, style tcell.Style) {
	x := (w-len(text))/2 + 1
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
