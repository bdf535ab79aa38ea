package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/maxrects/internal/model"
)

// ImportDXF imports items from a DXF drawing. Every LWPOLYLINE with at least
// three vertices and every CIRCLE becomes one item sized to its bounding box,
// rounded up to whole units. Other entities are skipped.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	skipped := 0
	for _, ent := range entities {
		var w, h float64
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if len(e.Vertices) < 3 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			minX, minY := math.Inf(1), math.Inf(1)
			maxX, maxY := math.Inf(-1), math.Inf(-1)
			for _, v := range e.Vertices {
				minX, maxX = math.Min(minX, v[0]), math.Max(maxX, v[0])
				minY, maxY = math.Min(minY, v[1]), math.Max(maxY, v[1])
			}
			w, h = maxX-minX, maxY-minY
		case *entity.Circle:
			w, h = 2*e.Radius, 2*e.Radius
		default:
			skipped++
			continue
		}

		width, height := int(math.Ceil(w-1e-9)), int(math.Ceil(h-1e-9))
		if width <= 0 || height <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f)", w, h))
			continue
		}

		it := model.NewItem(width, height)
		it.Label = fmt.Sprintf("DXF Item %d", len(result.Items)+1)
		result.Items = append(result.Items, it)
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}
	if len(result.Items) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
	}
	return result
}
