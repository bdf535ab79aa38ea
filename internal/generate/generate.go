// Package generate builds packing jobs for the command-line front end:
// identical empty containers and items with random sides.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/piwi3910/maxrects/internal/model"
)

// Containers returns n empty containers of size w x h at the origin, with
// container ids 0..n-1.
func Containers(n, w, h int) []model.FreeRect {
	containers := make([]model.FreeRect, 0, max(n, 0))
	for i := 0; i < n; i++ {
		containers = append(containers, model.NewFreeRect(w, h, 0, 0, i))
	}
	return containers
}

// Items returns m items whose sides are drawn uniformly from [minSide, maxSide].
// Each item is labelled with its position in the list.
func Items(rng *rand.Rand, m, minSide, maxSide int) []model.Item {
	if maxSide < minSide {
		minSide, maxSide = maxSide, minSide
	}
	span := maxSide - minSide + 1

	items := make([]model.Item, 0, max(m, 0))
	for i := 0; i < m; i++ {
		it := model.NewItem(minSide+rng.Intn(span), minSide+rng.Intn(span))
		it.Label = fmt.Sprintf("Item %d", i+1)
		items = append(items, it)
	}
	return items
}

// NewRand returns a generator seeded with seed, or with a time based seed
// when seed is zero. The seed actually used is returned so a run can be
// repeated.
func NewRand(seed int64, now func() int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = now()
	}
	return rand.New(rand.NewSource(seed)), seed
}
