// Command rulescan traces every elementary rule from a single live cell and
// classifies its long-run behavior: dies out, freezes, cycles, or keeps
// changing for the whole trace.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"term-ca/internal/sims/elementary"
)

type result struct {
	rule   int
	class  string
	period int
	step   int
	peak   int
	final  int
}

func main() {
	log.SetFlags(0)
	steps := flag.Int("steps", 64, "generations to trace per rule")
	width := flag.Int("width", 0, "row width in cells, 0 sizes to the light cone")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if *steps < 1 {
		log.Fatal("steps must be at least 1")
	}
	w := *width
	if w <= 0 {
		w = 1 + 2*(*steps)
	}

	tables := make([]elementary.Table, 0, 256)
	for rule := 0; rule <= 255; rule++ {
		table, err := elementary.NewTable(rule)
		if err != nil {
			log.Fatal(err)
		}
		tables = append(tables, table)
	}

	fmt.Printf("Scanning %d rules (%d workers, %d steps, width %d)\n", len(tables), *workers, *steps, w)

	jobs := make(chan elementary.Table)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for table := range jobs {
				results <- scan(table, w, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, table := range tables {
			jobs <- table
		}
		close(jobs)
	}()

	start := time.Now()
	all := make([]result, 0, len(tables))
	for res := range results {
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return all[i].rule < all[j].rule })
	byClass := map[string][]int{}
	for _, r := range all {
		byClass[r.class] = append(byClass[r.class], r.rule)
	}

	fmt.Printf("\nBehavior after %d steps (elapsed %s):\n", *steps, elapsed.Round(time.Millisecond))
	for _, class := range []string{"dies", "fixed", "periodic", "chaotic"} {
		rules := byClass[class]
		if len(rules) == 0 {
			continue
		}
		fmt.Printf("%-9s %3d rules: %s\n", class, len(rules), ruleList(rules))
	}

	busiest := append([]result(nil), all...)
	sort.Slice(busiest, func(i, j int) bool {
		if busiest[i].peak != busiest[j].peak {
			return busiest[i].peak > busiest[j].peak
		}
		return busiest[i].rule < busiest[j].rule
	})
	fmt.Printf("\nTop 5 rules by peak live cells:\n")
	for i := 0; i < len(busiest) && i < 5; i++ {
		r := busiest[i]
		fmt.Printf("%2d) rule %3d  class=%-8s peak=%d final=%d", i+1, r.rule, r.class, r.peak, r.final)
		if r.class == "periodic" {
			fmt.Printf("  period=%d", r.period)
		}
		fmt.Println()
	}
}

// scan runs one rule from a single center cell and watches the trace for
// extinction or a revisited state.
func scan(table elementary.Table, width, steps int) result {
	initial := make([]uint8, width)
	initial[width/2] = 1
	row := elementary.NewRow(initial, table)

	seen := map[string]int{string(row.Cells()): 0}
	peak := countLive(row.Cells())

	for step := 1; step <= steps; step++ {
		row.Step()
		cells := row.Cells()
		live := countLive(cells)
		if live > peak {
			peak = live
		}
		if live == 0 {
			return result{rule: table.Rule(), class: "dies", step: step, peak: peak}
		}
		key := string(cells)
		if prev, ok := seen[key]; ok {
			period := step - prev
			class := "periodic"
			if period == 1 {
				class = "fixed"
			}
			return result{rule: table.Rule(), class: class, period: period, step: step, peak: peak, final: live}
		}
		seen[key] = step
	}
	return result{rule: table.Rule(), class: "chaotic", step: steps, peak: peak, final: countLive(row.Cells())}
}

func countLive(cells []uint8) int {
	n := 0
	for _, v := range cells {
		if v != 0 {
			n++
		}
	}
	return n
}

func ruleList(rules []int) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, " ")
}
