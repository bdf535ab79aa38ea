package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/maxrects/internal/model"
)

func kinds(vs []Violation) []ViolationKind {
	out := make([]ViolationKind, len(vs))
	for i, v := range vs {
		out[i] = v.Kind
	}
	return out
}

func TestCheck_PlaceResultsAreClean(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 10; round++ {
		items, containers := randomJob(rng, 10+rng.Intn(30), 1+rng.Intn(3))
		result := New(items, containers).Place()
		assert.Empty(t, FormatViolations(Check(result, containers)), "round %d", round)
	}
}

func TestCheck_ItemOutsideContainer(t *testing.T) {
	containers := []model.FreeRect{model.NewFreeRect(10, 10, 0, 0, 0)}
	result := model.Result{
		Placed: []model.Item{
			model.NewItem(5, 5).PlacedAt(8, 0, 0),
			model.NewItem(5, 5).PlacedAt(0, 0, 1),
		},
	}
	assert.Equal(t, []ViolationKind{ItemOutsideContainer, ItemOutsideContainer}, kinds(Check(result, containers)))
}

func TestCheck_ItemsOverlap(t *testing.T) {
	containers := []model.FreeRect{model.NewFreeRect(10, 10, 0, 0, 0)}
	a := model.NewItem(5, 5).PlacedAt(0, 0, 0)
	b := model.NewItem(5, 5).PlacedAt(4, 4, 0)
	c := model.NewItem(5, 5).PlacedAt(5, 0, 0) // touches a along an edge

	vs := Check(model.Result{Placed: []model.Item{a, b, c}}, containers)
	require.Len(t, vs, 2)
	assert.Equal(t, ItemsOverlap, vs[0].Kind)
	assert.Equal(t, a.String(), vs[0].Subject)
	assert.Equal(t, b.String(), vs[0].Other)
	assert.Equal(t, b.String(), vs[1].Subject)
	assert.Equal(t, c.String(), vs[1].Other)
}

func TestCheck_FreeRegionRules(t *testing.T) {
	containers := []model.FreeRect{model.NewFreeRect(10, 10, 0, 0, 0)}
	result := model.Result{
		Placed: []model.Item{model.NewItem(5, 5).PlacedAt(0, 5, 0)},
		Free: []model.FreeRect{
			model.NewFreeRect(10, 6, 0, 0, 0), // overlaps the item
			model.NewFreeRect(5, 5, 5, 0, 0),  // inside the first region
			model.NewFreeRect(0, 5, 5, 5, 0),
		},
	}
	assert.Equal(t, []ViolationKind{FreeOverlapsItem, FreeContained, FreeDegenerate}, kinds(Check(result, containers)))
}

func TestCheck_UnplacedStillFits(t *testing.T) {
	containers := []model.FreeRect{model.NewFreeRect(10, 10, 0, 0, 0)}
	result := model.Result{
		Unplaced: []model.Item{model.NewItem(3, 3), model.NewItem(20, 1), model.NewItem(0, 1)},
		Free:     containers,
	}
	vs := Check(result, containers)
	require.Len(t, vs, 1)
	assert.Equal(t, UnplacedStillFits, vs[0].Kind)
}

func TestCheck_DeduplicatesReports(t *testing.T) {
	vs := deduplicate([]Violation{
		{Kind: ItemsOverlap, Subject: "a", Other: "b"},
		{Kind: ItemsOverlap, Subject: "a", Other: "b"},
		{Kind: ItemsOverlap, Subject: "a", Other: "c"},
	})
	assert.Len(t, vs, 2)
}

func TestFormatViolations(t *testing.T) {
	msgs := FormatViolations([]Violation{
		{Kind: FreeDegenerate, Subject: "r"},
		{Kind: ItemsOverlap, Subject: "a", Other: "b"},
	})
	assert.Equal(t, []string{
		"free region has no area: r",
		"items overlap: a and b",
	}, msgs)
}
