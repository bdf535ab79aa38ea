// Package engine implements the greedy MaxRects placement loop.
//
// Each container starts as one free region. On every iteration the engine
// scores every (item, free region) pair, places the tightest fit flush with
// the region's left and bottom edges, splits the consumed region, carves
// every free region the new item overlaps, and drops regions contained in
// another. It stops the first time nothing fits.
package engine

import (
	"slices"

	"k8s.io/klog/v2"

	"github.com/piwi3910/maxrects/internal/model"
)

// Engine owns the working sets of one packing run.
type Engine struct {
	Settings model.PackSettings

	items []model.Item
	free  []model.FreeRect
}

// New creates an engine with default settings. The slices are copied; the
// caller's values are never modified. Items that are already placed never
// fit and come back unchanged in Result.Unplaced.
func New(items []model.Item, regions []model.FreeRect) *Engine {
	return NewWithSettings(model.DefaultPackSettings(), items, regions)
}

// NewWithSettings is New with explicit search settings.
func NewWithSettings(settings model.PackSettings, items []model.Item, regions []model.FreeRect) *Engine {
	return &Engine{
		Settings: settings,
		items:    slices.Clone(items),
		free:     slices.Clone(regions),
	}
}

// Place runs the placement loop to a fixed point and returns the placed
// items in placement order, the items that never fit, and the remaining
// maximal free regions. Calling Place again continues from the remaining
// state, so a second call places nothing new.
func (e *Engine) Place() model.Result {
	placed := []model.Item{}

	for {
		c, ok := e.search()
		if !ok {
			break
		}

		item := e.items[c.item]
		region := e.free[c.region]
		e.items = slices.Concat(e.items[:c.item], e.items[c.item+1:])
		e.free = slices.Concat(e.free[:c.region], e.free[c.region+1:])

		item = item.PlacedAt(region.X, region.Y+region.Height-item.Height, region.ContainerID)
		placed = append(placed, item)

		e.free = append(e.free, splitLeftover(region, item)...)
		e.free = resolveOverlaps(e.free, item)
		e.free = pruneContained(e.free)

		klog.V(2).Infof("placed %s (%dx%d) at %s in container %d, score %d, %d items left, %d free regions",
			item.ID, item.Width, item.Height, item.Span(), region.ContainerID, c.score, len(e.items), len(e.free))
		if klog.V(4).Enabled() {
			for i, r := range e.free {
				klog.Infof("  free[%d] %s container %d", i, r.Span(), r.ContainerID)
			}
		}
	}

	return model.Result{
		Placed:   placed,
		Unplaced: append([]model.Item{}, e.items...),
		Free:     append([]model.FreeRect{}, e.free...),
	}
}
