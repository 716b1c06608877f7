// Command elementary prints the history of a one-dimensional cellular
// automaton grown from a single live cell.
//
// usage: elementary [iterations [rule]]
//
// When iterations is omitted the count is read interactively. The rule
// defaults to 90, the classic Sierpinski generator.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"term-ca/internal/sims/elementary"
	"term-ca/internal/term"
)

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	iterations, err := iterationCount(flag.Arg(0), os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	rule := 90
	if arg := flag.Arg(1); arg != "" {
		rule, err = strconv.Atoi(arg)
		if err != nil {
			log.Fatalf("rule must be an integer, got %q", arg)
		}
	}
	table, err := elementary.NewTable(rule)
	if err != nil {
		log.Fatal(err)
	}

	// After n iterations the pattern can reach n cells either side of the
	// seed, so the row is sized to hold the full light cone.
	width := 1 + 2*iterations
	initial := make([]uint8, width)
	initial[iterations] = 1
	row := elementary.NewRow(initial, table)

	history := make([][]uint8, 0, iterations)
	history = append(history, append([]uint8(nil), row.Cells()...))
	for i := 1; i < iterations; i++ {
		row.Step()
		history = append(history, append([]uint8(nil), row.Cells()...))
	}

	if err := term.WriteHistory(os.Stdout, history); err != nil {
		log.Fatal(err)
	}
}

func iterationCount(arg string, stdin io.Reader) (int, error) {
	s := arg
	if s == "" {
		fmt.Println("How many iterations would you like to run?")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && line == "" {
			return 0, fmt.Errorf("reading iterations: %w", err)
		}
		s = strings.TrimSpace(line)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("iterations must be an integer, got %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("iterations must be at least 1")
	}
	return n, nil
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: %s [iterations [rule]]\n\n", os.Args[0])
	fmt.Fprintln(out, "Prints the history of a one-dimensional automaton grown from a single")
	fmt.Fprintln(out, "live cell. The rule number (0-255) defaults to 90.")
	flag.PrintDefaults()
}
