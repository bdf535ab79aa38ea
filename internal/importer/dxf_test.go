package importer

import (
	"path/filepath"
	"testing"

	"github.com/yofu/dxf"
)

func TestImportDXF_Circles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.dxf")

	d := dxf.NewDrawing()
	if _, err := d.Circle(50, 50, 0, 10); err != nil {
		t.Fatalf("circle: %v", err)
	}
	if _, err := d.Circle(0, 0, 0, 2.4); err != nil {
		t.Fatalf("circle: %v", err)
	}
	if _, err := d.Line(0, 0, 0, 10, 10, 0); err != nil {
		t.Fatalf("line: %v", err)
	}
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	result := ImportDXF(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].Width != 20 || result.Items[0].Height != 20 {
		t.Errorf("expected 20x20, got %dx%d", result.Items[0].Width, result.Items[0].Height)
	}
	if result.Items[1].Width != 5 {
		t.Errorf("expected diameter 4.8 rounded up to 5, got %d", result.Items[1].Width)
	}
	if result.Items[0].Label != "DXF Item 1" {
		t.Errorf("unexpected label %q", result.Items[0].Label)
	}
}

func TestImportDXF_FileNotFound(t *testing.T) {
	result := ImportDXF(filepath.Join(t.TempDir(), "missing.dxf"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}
