package engine

import "github.com/piwi3910/maxrects/internal/model"

// splitLeftover returns the space of region not taken by it, which sits in
// the region's bottom-left corner: a strip to its right spanning the full
// region height and a strip above it spanning the full region width. The
// two strips overlap; resolveOverlaps and pruneContained sort that out.
func splitLeftover(region model.FreeRect, it model.Item) []model.FreeRect {
	side := model.NewFreeRect(
		region.Width-it.Width,
		region.Height,
		region.X+it.Width,
		region.Y,
		region.ContainerID,
	)
	top := model.NewFreeRect(
		region.Width,
		region.Height-it.Height,
		region.X,
		region.Y,
		region.ContainerID,
	)
	return nonEmpty(side, top)
}

// resolveOverlaps replaces every region overlapping the placed item with the
// parts of it that lie left of, above, right of and below the item. Regions
// that do not overlap keep their order; replacements are appended.
func resolveOverlaps(free []model.FreeRect, placed model.Item) []model.FreeRect {
	kept := make([]model.FreeRect, 0, len(free))
	var pieces []model.FreeRect
	for _, r := range free {
		if !r.Overlaps(placed) {
			kept = append(kept, r)
			continue
		}
		pieces = append(pieces, carve(r, placed.Span())...)
	}
	return append(kept, pieces...)
}

// carve returns the maximal strips of r outside s.
func carve(r model.FreeRect, s model.Span) []model.FreeRect {
	rs := r.Span()
	left := model.NewFreeRect(s.Left-rs.Left, r.Height, r.X, r.Y, r.ContainerID)
	above := model.NewFreeRect(r.Width, s.Top-rs.Top, r.X, r.Y, r.ContainerID)
	right := model.NewFreeRect(rs.Right-s.Right, r.Height, s.Right, r.Y, r.ContainerID)
	below := model.NewFreeRect(r.Width, rs.Bottom-s.Bottom, r.X, s.Bottom, r.ContainerID)
	return nonEmpty(left, above, right, below)
}

// pruneContained keeps only maximal regions: a region is dropped when another
// region contains it. Of identical regions the first is kept.
func pruneContained(free []model.FreeRect) []model.FreeRect {
	if len(free) <= 1 {
		return free
	}
	kept := make([]model.FreeRect, 0, len(free))
	for i, b := range free {
		contained := false
		for j, a := range free {
			if i == j {
				continue
			}
			if a == b {
				if j < i {
					contained = true
					break
				}
				continue
			}
			if a.Contains(b) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, b)
		}
	}
	return kept
}

func nonEmpty(rects ...model.FreeRect) []model.FreeRect {
	out := make([]model.FreeRect, 0, len(rects))
	for _, r := range rects {
		if r.Width > 0 && r.Height > 0 {
			out = append(out, r)
		}
	}
	return out
}
