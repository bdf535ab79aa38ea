package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/maxrects/internal/model"
)

func TestExportPDF_CreatesFile(t *testing.T) {
	result, containers := buildTestResult()
	path := filepath.Join(t.TempDir(), "report.pdf")

	if err := ExportPDF(path, result, containers); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PDF file is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read PDF: %v", err)
	}
	if string(data[:5]) != "%PDF-" {
		t.Errorf("file does not start with PDF header, got %q", string(data[:5]))
	}
}

func TestExportPDF_NoContainers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportPDF(path, model.Result{}, nil); err == nil {
		t.Error("expected error for no containers")
	}
}

func TestExportPDF_NothingPlaced(t *testing.T) {
	containers := []model.FreeRect{model.NewFreeRect(10, 20, 0, 0, 0)}
	result := model.Result{
		Unplaced: []model.Item{model.NewItem(15, 16)},
		Free:     containers,
	}
	path := filepath.Join(t.TempDir(), "missed.pdf")
	if err := ExportPDF(path, result, containers); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}

func TestExportPDF_ManyItems(t *testing.T) {
	containers := []model.FreeRect{model.NewFreeRect(100, 100, 0, 0, 0)}
	var result model.Result
	for i := 0; i < 100; i++ {
		it := model.NewItem(10, 10)
		result.Placed = append(result.Placed, it.PlacedAt(i%10*10, i/10*10, 0))
	}
	for i := 0; i < 80; i++ {
		result.Unplaced = append(result.Unplaced, model.NewItem(5, 5))
	}

	path := filepath.Join(t.TempDir(), "full.pdf")
	if err := ExportPDF(path, result, containers); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h     float64
		expected float64
	}{
		{100, 100, 8},
		{50, 50, 8},
		{30, 30, 7},
		{15, 15, 6},
		{100, 10, 6},
	}
	for _, tt := range tests {
		if got := labelFontSize(tt.w, tt.h); got != tt.expected {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.expected)
		}
	}
}

func TestItemLabel_FallsBackToID(t *testing.T) {
	it := model.NewItem(1, 1)
	if itemLabel(it) != it.ID {
		t.Errorf("expected id %q, got %q", it.ID, itemLabel(it))
	}
	it.Label = "Shelf"
	if itemLabel(it) != "Shelf" {
		t.Errorf("expected label, got %q", itemLabel(it))
	}
}
