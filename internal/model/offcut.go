package model

import "sort"

// MinOffcutDimension is the default minimum width and height for a leftover
// region to be worth reusing.
const MinOffcutDimension = 10

// MinOffcutArea is the default minimum area for a reusable leftover region.
const MinOffcutArea = 400 // 20 x 20 equivalent

// Offcuts filters leftover free regions down to those large enough to reuse:
// both sides at least minDim and area at least minArea. The result is sorted
// by area, largest first. The input slice is not modified.
func Offcuts(free []FreeRect, minDim, minArea int) []FreeRect {
	var offcuts []FreeRect
	for _, r := range free {
		if r.Width < minDim || r.Height < minDim {
			continue
		}
		if r.Area() < minArea {
			continue
		}
		offcuts = append(offcuts, r)
	}

	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})
	return offcuts
}

// TotalFreeArea returns the summed area of the given regions. Maximal free
// regions may overlap each other, so this is an upper bound on free space.
func TotalFreeArea(free []FreeRect) int {
	total := 0
	for _, r := range free {
		total += r.Area()
	}
	return total
}
