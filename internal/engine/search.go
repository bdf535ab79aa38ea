package engine

import (
	"runtime"
	"sync"

	"github.com/piwi3910/maxrects/internal/model"
)

// candidate is a scored (item, region) pair. Lower scores are tighter fits.
type candidate struct {
	score  int
	item   int
	region int
}

// less orders candidates by score, then region index, then item index.
func (c candidate) less(o candidate) bool {
	if c.score != o.score {
		return c.score < o.score
	}
	if c.region != o.region {
		return c.region < o.region
	}
	return c.item < o.item
}

// scored is one item's best fit; ok is false when the item fits nowhere.
type scored struct {
	candidate
	ok bool
}

// fitScore returns the smaller leftover dimension of placing it in r.
// Items with a non-positive side never fit, nor do items already placed.
func fitScore(it model.Item, r model.FreeRect) (int, bool) {
	if it.IsPlaced() || it.Width <= 0 || it.Height <= 0 {
		return 0, false
	}
	if it.Width > r.Width || it.Height > r.Height {
		return 0, false
	}
	return min(r.Width-it.Width, r.Height-it.Height), true
}

// bestRegion returns the tightest region for item i. The lowest region index
// wins a tie.
func bestRegion(i int, it model.Item, free []model.FreeRect) scored {
	var best scored
	for j, r := range free {
		s, ok := fitScore(it, r)
		if !ok {
			continue
		}
		if !best.ok || s < best.score {
			best = scored{candidate: candidate{score: s, item: i, region: j}, ok: true}
		}
	}
	return best
}

// scoreRange fills out[lo:hi] with the best fit of items[lo:hi].
func scoreRange(items []model.Item, free []model.FreeRect, lo, hi int, out []scored) {
	for i := lo; i < hi; i++ {
		out[i] = bestRegion(i, items[i], free)
	}
}

// search finds the globally best (item, region) pair. Scoring reads the
// engine state only; every worker writes to its own range of the results
// slice, so nothing is shared until the reduction after the join.
func (e *Engine) search() (candidate, bool) {
	items, free := e.items, e.free
	if len(items) == 0 || len(free) == 0 {
		return candidate{}, false
	}

	results := make([]scored, len(items))
	workers := e.workerCount(len(items), len(free))
	if workers <= 1 {
		scoreRange(items, free, 0, len(items), results)
	} else {
		chunk := (len(items) + workers - 1) / workers
		var wg sync.WaitGroup
		for lo := 0; lo < len(items); lo += chunk {
			hi := min(lo+chunk, len(items))
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				scoreRange(items, free, lo, hi, results)
			}(lo, hi)
		}
		wg.Wait()
	}

	var best scored
	for _, r := range results {
		if !r.ok {
			continue
		}
		if !best.ok || r.less(best.candidate) {
			best = r
		}
	}
	return best.candidate, best.ok
}

// workerCount decides how many goroutines score this iteration.
func (e *Engine) workerCount(items, regions int) int {
	if items*regions < e.Settings.MinParallel {
		return 1
	}
	w := e.Settings.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	return min(w, items)
}
