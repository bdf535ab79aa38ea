package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/maxrects/internal/model"
)

// DXF layer names.
const (
	LayerContainers = "CONTAINERS"
	LayerItems      = "ITEMS"
)

// ExportDXF writes the layout as a DXF drawing: container outlines on the
// CONTAINERS layer and placed item outlines on the ITEMS layer. Containers
// are laid side by side as in Render. DXF's Y axis points up, so the layout
// is flipped vertically.
func ExportDXF(path string, result model.Result, containers []model.FreeRect) error {
	if len(containers) == 0 {
		return errNoContainers
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(LayerContainers, color.White, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerContainers, err)
	}
	if _, err := d.AddLayer(LayerItems, color.Cyan, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerItems, err)
	}

	offsets, _, height := layout(containers)

	if err := d.ChangeLayer(LayerContainers); err != nil {
		return err
	}
	for _, c := range containers {
		x := offsets[c.ContainerID]
		if err := outline(d, x, height-c.Height, c.Width, c.Height); err != nil {
			return fmt.Errorf("failed to draw container %d: %w", c.ContainerID, err)
		}
	}

	if err := d.ChangeLayer(LayerItems); err != nil {
		return err
	}
	for _, it := range result.Placed {
		x, y, ok := itemOrigin(it, containers, offsets)
		if !ok {
			continue
		}
		if err := outline(d, x, height-y-it.Height, it.Width, it.Height); err != nil {
			return fmt.Errorf("failed to draw item %s: %w", it.ID, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF %s: %w", path, err)
	}
	return nil
}

// outline draws a rectangle as four lines with (x, y) its lower-left corner.
func outline(d *drawing.Drawing, x, y, w, h int) error {
	x0, y0 := float64(x), float64(y)
	x1, y1 := float64(x+w), float64(y+h)
	edges := [4][4]float64{
		{x0, y0, x1, y0},
		{x1, y0, x1, y1},
		{x1, y1, x0, y1},
		{x0, y1, x0, y0},
	}
	for _, e := range edges {
		if _, err := d.Line(e[0], e[1], 0, e[2], e[3], 0); err != nil {
			return err
		}
	}
	return nil
}
