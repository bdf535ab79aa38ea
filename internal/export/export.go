// Package export writes packing results to image, document and CAD formats.
package export

import (
	"errors"

	"github.com/piwi3910/maxrects/internal/model"
)

// itemColor represents an RGB color for a placed item.
type itemColor struct {
	R, G, B int
}

// itemColors is the fill palette shared by every renderer, cycled per item.
var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

func colorFor(i int) itemColor {
	return itemColors[i%len(itemColors)]
}

// ContainerGap is the spacing between containers when they are laid out side
// by side.
const ContainerGap = 10

var errNoContainers = errors.New("no containers to export")

// layout places containers left to right in the order given, separated by
// ContainerGap. It returns the X offset of each container keyed by container
// id, plus the overall width and height.
func layout(containers []model.FreeRect) (map[int]int, int, int) {
	offsets := make(map[int]int, len(containers))
	x, height := 0, 0
	for i, c := range containers {
		if i > 0 {
			x += ContainerGap
		}
		if _, dup := offsets[c.ContainerID]; !dup {
			offsets[c.ContainerID] = x
		}
		x += c.Width
		height = max(height, c.Height)
	}
	return offsets, x, height
}

// itemOrigin returns the drawing position of a placed item: its container's
// offset plus the item's position relative to the container origin.
func itemOrigin(it model.Item, containers []model.FreeRect, offsets map[int]int) (int, int, bool) {
	p, ok := it.Placed()
	if !ok {
		return 0, 0, false
	}
	off, ok := offsets[p.ContainerID]
	if !ok {
		return 0, 0, false
	}
	c := containerByID(containers, p.ContainerID)
	return off + p.X - c.X, p.Y - c.Y, true
}

func containerByID(containers []model.FreeRect, id int) model.FreeRect {
	for _, c := range containers {
		if c.ContainerID == id {
			return c
		}
	}
	return model.FreeRect{}
}
