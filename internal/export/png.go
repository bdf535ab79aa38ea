package export

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"k8s.io/klog/v2"

	"github.com/piwi3910/maxrects/internal/model"
)

// Render draws the containers side by side as light grey blocks and each
// placed item as a coloured rectangle inside its container. Items whose
// container is not in containers are not drawn.
func Render(placed []model.Item, containers []model.FreeRect) image.Image {
	return draw(placed, containers).Image()
}

func draw(placed []model.Item, containers []model.FreeRect) *gg.Context {
	offsets, w, h := layout(containers)
	dc := gg.NewContext(max(w, 1), max(h, 1))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, c := range containers {
		dc.SetRGB255(200, 200, 200)
		dc.DrawRectangle(float64(offsets[c.ContainerID]), 0, float64(c.Width), float64(c.Height))
		dc.Fill()
	}

	for i, it := range placed {
		x, y, ok := itemOrigin(it, containers, offsets)
		if !ok {
			klog.V(3).Infof("render: skipping %s, container not drawn", it)
			continue
		}
		col := colorFor(i)
		dc.SetRGB255(col.R, col.G, col.B)
		dc.DrawRectangle(float64(x), float64(y), float64(it.Width), float64(it.Height))
		dc.Fill()
	}
	return dc
}

// RenderPNG renders the layout and writes it as a PNG file.
func RenderPNG(path string, placed []model.Item, containers []model.FreeRect) error {
	if len(containers) == 0 {
		return errNoContainers
	}
	if err := draw(placed, containers).SavePNG(path); err != nil {
		return fmt.Errorf("failed to write PNG %s: %w", path, err)
	}
	return nil
}

// EncodePNG renders the layout and writes the PNG encoding to w.
func EncodePNG(w io.Writer, placed []model.Item, containers []model.FreeRect) error {
	if len(containers) == 0 {
		return errNoContainers
	}
	return draw(placed, containers).EncodePNG(w)
}
