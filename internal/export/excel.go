package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/maxrects/internal/model"
)

// Workbook sheet names.
const (
	SheetPlaced   = "Placed"
	SheetUnplaced = "Unplaced"
	SheetFree     = "Free"
	SheetSummary  = "Summary"
)

// ExportExcel writes a workbook with one sheet each for placed items,
// unplaced items, remaining free regions and a per-container summary.
func ExportExcel(path string, result model.Result, containers []model.FreeRect) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetPlaced); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetUnplaced, SheetFree, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	placed := [][]interface{}{{"ID", "Label", "Width", "Height", "Container", "X", "Y"}}
	for _, it := range result.Placed {
		p, _ := it.Placed()
		placed = append(placed, []interface{}{it.ID, it.Label, it.Width, it.Height, p.ContainerID, p.X, p.Y})
	}

	unplaced := [][]interface{}{{"ID", "Label", "Width", "Height"}}
	for _, it := range result.Unplaced {
		unplaced = append(unplaced, []interface{}{it.ID, it.Label, it.Width, it.Height})
	}

	free := [][]interface{}{{"Container", "X", "Y", "Width", "Height", "Area"}}
	for _, r := range result.Free {
		free = append(free, []interface{}{r.ContainerID, r.X, r.Y, r.Width, r.Height, r.Area()})
	}

	summary := [][]interface{}{{"Container", "Width", "Height", "Items", "Used Area", "Total Area", "Efficiency %"}}
	for _, u := range model.ContainerUsages(result.Placed, containers) {
		summary = append(summary, []interface{}{
			u.Container.ContainerID, u.Container.Width, u.Container.Height,
			u.Items, u.UsedArea, u.TotalArea(), round2(u.Efficiency()),
		})
	}
	summary = append(summary,
		[]interface{}{},
		[]interface{}{"Placed", len(result.Placed)},
		[]interface{}{"Missed", len(result.Unplaced)},
		[]interface{}{"Remaining regions", len(result.Free)},
		[]interface{}{"Percentage Packed", round2(model.PackedPercentage(result.Placed, containers))},
	)

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{SheetPlaced, placed},
		{SheetUnplaced, unplaced},
		{SheetFree, free},
		{SheetSummary, summary},
	}
	for _, s := range sheets {
		if err := writeRows(f, s.name, s.rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
