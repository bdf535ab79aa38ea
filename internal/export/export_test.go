package export

import (
	"testing"

	"github.com/piwi3910/maxrects/internal/model"
)

// buildTestResult returns two 100x50 containers with three placed items,
// one unplaced item and a couple of free regions.
func buildTestResult() (model.Result, []model.FreeRect) {
	containers := []model.FreeRect{
		model.NewFreeRect(100, 50, 0, 0, 0),
		model.NewFreeRect(100, 50, 0, 0, 1),
	}

	a := model.NewItem(40, 20)
	a.Label = "Shelf"
	b := model.NewItem(30, 30)
	b.Label = "Door"
	c := model.NewItem(50, 50)
	c.Label = "Back Panel"
	missed := model.NewItem(200, 10)
	missed.Label = "Too Long"

	return model.Result{
		Placed: []model.Item{
			a.PlacedAt(0, 30, 0),
			b.PlacedAt(40, 20, 0),
			c.PlacedAt(0, 0, 1),
		},
		Unplaced: []model.Item{missed},
		Free: []model.FreeRect{
			model.NewFreeRect(30, 50, 70, 0, 0),
			model.NewFreeRect(50, 50, 50, 0, 1),
		},
	}, containers
}

func TestLayout_SideBySide(t *testing.T) {
	_, containers := buildTestResult()
	offsets, w, h := layout(containers)

	if offsets[0] != 0 || offsets[1] != 110 {
		t.Errorf("expected offsets 0 and 110, got %v", offsets)
	}
	if w != 210 || h != 50 {
		t.Errorf("expected 210x50 canvas, got %dx%d", w, h)
	}
}

func TestItemOrigin_RelativeToContainer(t *testing.T) {
	containers := []model.FreeRect{model.NewFreeRect(10, 10, 5, 5, 3)}
	offsets, _, _ := layout(containers)

	it := model.NewItem(2, 2).PlacedAt(7, 8, 3)
	x, y, ok := itemOrigin(it, containers, offsets)
	if !ok || x != 2 || y != 3 {
		t.Errorf("expected (2,3), got (%d,%d) ok=%v", x, y, ok)
	}

	if _, _, ok := itemOrigin(model.NewItem(2, 2), containers, offsets); ok {
		t.Error("unplaced item should have no origin")
	}
	if _, _, ok := itemOrigin(model.NewItem(2, 2).PlacedAt(0, 0, 9), containers, offsets); ok {
		t.Error("item in unknown container should have no origin")
	}
}
