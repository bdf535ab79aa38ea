package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/maxrects/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	result, _ := buildTestResult()
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("labels file not created: %v", err)
	}
	if string(data[:5]) != "%PDF-" {
		t.Errorf("file does not start with PDF header, got %q", string(data[:5]))
	}
}

func TestExportLabels_NothingPlaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	result := model.Result{Unplaced: []model.Item{model.NewItem(5, 5)}}
	if err := ExportLabels(path, result); err == nil {
		t.Error("expected error when nothing was placed")
	}
}

func TestExportLabels_MultiplePages(t *testing.T) {
	var result model.Result
	for i := 0; i < labelsPerPage+5; i++ {
		result.Placed = append(result.Placed, model.NewItem(1, 1).PlacedAt(i, 0, 0))
	}

	path := filepath.Join(t.TempDir(), "labels.pdf")
	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
}

func TestCollectLabelInfos(t *testing.T) {
	result, _ := buildTestResult()
	labels := CollectLabelInfos(result)

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}

	first := labels[0]
	if first.Label != "Shelf" || first.Width != 40 || first.Height != 20 {
		t.Errorf("unexpected first label %+v", first)
	}
	if first.ContainerID != 0 || first.X != 0 || first.Y != 30 {
		t.Errorf("unexpected first position %+v", first)
	}
	if labels[2].ContainerID != 1 {
		t.Errorf("expected third label in container 1, got %d", labels[2].ContainerID)
	}
}

func TestLabelInfo_JSONPayload(t *testing.T) {
	info := LabelInfo{ID: "abcd1234", Label: "Shelf", Width: 4, Height: 2, ContainerID: 1, X: 3, Y: 5}
	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"abcd1234","label":"Shelf","width":4,"height":2,"container":1,"x":3,"y":5}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}
