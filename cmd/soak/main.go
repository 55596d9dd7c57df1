// Command soak batch-runs the autopilot game across many seeds and reports
// how far the greedy pilot gets. Useful for sanity-checking rule changes.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"wrapsnake/internal/game/autopilot"
)

type result struct {
	seed   int64
	final  int
	peak   int
	deaths int
}

func main() {
	seeds := flag.Int("seeds", 16, "number of seeds to run")
	ticks := flag.Int("ticks", 5000, "ticks to simulate per seed")
	width := flag.Int("w", 32, "grid width in cells")
	height := flag.Int("h", 24, "grid height in cells")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	jobs := make(chan int64)
	results := make([]result, 0, *seeds)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				r := run(seed, *width, *height, *ticks)
				mu.Lock()
				results = append(results, r)
				mu.Unlock()
			}
		}()
	}
	for s := 0; s < *seeds; s++ {
		jobs <- int64(s + 1)
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].seed < results[j].seed })

	best, sum := 0, 0
	for _, r := range results {
		fmt.Printf("seed %3d: final %3d peak %3d deaths %2d\n", r.seed, r.final, r.peak, r.deaths)
		sum += r.peak
		if r.peak > best {
			best = r.peak
		}
	}
	if len(results) > 0 {
		fmt.Printf("seeds %d  mean peak %.1f  best peak %d\n",
			len(results), float64(sum)/float64(len(results)), best)
	}
}

func run(seed int64, w, h, ticks int) result {
	p := autopilot.New(w, h)
	p.Reset(seed)

	r := result{seed: seed, peak: p.Length()}
	prev := p.Length()
	for i := 0; i < ticks; i++ {
		p.Step()
		l := p.Length()
		if l > r.peak {
			r.peak = l
		}
		if l < prev {
			r.deaths++
		}
		prev = l
	}
	r.final = p.Length()
	return r
}
