// Command life plays a life-family cellular automaton in the terminal.
//
// usage: life [flags] [filename]
//
// The starting grid comes from a pattern file when a filename is given,
// otherwise from the -pattern flag. The board wraps around at the edges and
// the run stops once every cell is dead or alive, when the generation budget
// is exhausted, or on q/Escape.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"term-ca/internal/core"
	"term-ca/internal/pattern"
	"term-ca/internal/sims/life"
	"term-ca/internal/term"
)

type config struct {
	rule         string
	neighborhood string
	width        int
	height       int
	fps          int
	generations  int
	seed         int64
	pattern      string
}

func (c *config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.rule, "rule", life.DefaultRuleSpec, "birth/survival rule in B/S notation")
	fs.StringVar(&c.neighborhood, "neighborhood", life.Moore.String(), "neighbor shape: moore or vonneumann")
	fs.IntVar(&c.width, "width", 0, "terminal columns to use, 0 fits the terminal (set with -height)")
	fs.IntVar(&c.height, "height", 0, "terminal rows to use, 0 fits the terminal (set with -width)")
	fs.IntVar(&c.fps, "fps", 60, "generations per second")
	fs.IntVar(&c.generations, "generations", 0, "stop after this many generations, 0 runs until the grid settles")
	fs.Int64Var(&c.seed, "seed", 42, "seed for random fills")
	fs.StringVar(&c.pattern, "pattern", "random", "starting pattern: glider, r-pentomino or random")
}

func main() {
	log.SetFlags(0)
	var cfg config
	cfg.bind(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()

	rules, err := life.ParseRuleSet(cfg.rule)
	if err != nil {
		log.Fatal(err)
	}
	shape, err := life.ParseNeighborhood(cfg.neighborhood)
	if err != nil {
		log.Fatal(err)
	}
	if (cfg.width == 0) != (cfg.height == 0) {
		log.Fatal("-width and -height must be set together")
	}

	var stamp [][]uint8
	if path := flag.Arg(0); path != "" {
		stamp, err = pattern.Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("cannot find %q, please check the file name", path)
		}
		if err != nil {
			log.Fatal(err)
		}
	} else {
		switch cfg.pattern {
		case "random":
		case "glider":
			stamp = pattern.Glider()
		case "r-pentomino":
			stamp = pattern.RPentomino()
		default:
			log.Fatalf("unknown pattern %q (want glider, r-pentomino or random)", cfg.pattern)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	die := func(err error) {
		screen.Fini()
		log.Fatal(err)
	}

	var w, h int
	if cfg.width == 0 {
		cols, rows := screen.Size()
		w, h, err = term.Fit(cols, rows)
	} else {
		w, h, err = term.Inset(cfg.width, cfg.height)
	}
	if err != nil {
		die(err)
	}

	var grid core.Grid
	if stamp != nil {
		grid, err = pattern.Center(w, h, stamp)
	} else {
		grid, err = pattern.Random(cfg.seed, w, h)
	}
	if err != nil {
		die(err)
	}

	board, err := life.NewBoard(grid, rules, shape)
	if err != nil {
		die(err)
	}

	runErr := term.Run(screen, board, term.Options{
		FPS:         cfg.fps,
		Generations: cfg.generations,
		Seed:        cfg.seed,
		Title:       true,
	})
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: %s [flags] [filename]\n\n", os.Args[0])
	fmt.Fprintln(out, "Plays a life-family automaton in the terminal. A filename names a")
	fmt.Fprintln(out, "pattern file ('0'/'1' rows) placed in the middle of the grid and")
	fmt.Fprintln(out, "overrides -pattern. Keys: q/Escape quits, space pauses, n steps,")
	fmt.Fprintln(out, "r restarts from the seed, s reseeds.")
	fmt.Fprintln(out)
	flag.PrintDefaults()
}
