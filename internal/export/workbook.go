// Package export renders the daily window as an Excel workbook.
package export

import (
	"bytes"
	"fmt"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the records.
const SheetName = "Daily Records"

// Header is the first row of the sheet.
var Header = []string{
	"Date",
	"HRV (ms)",
	"Resting HR (bpm)",
	"Temperature Delta (°C)",
	"Respiratory Rate",
	"Total Sleep (h)",
	"Deep Sleep (h)",
	"REM Sleep (h)",
	"Core Sleep (h)",
	"Awake (h)",
	"In Bed (h)",
	"Efficiency (%)",
	"Awakenings",
	"Strain",
	"Illness Risk",
	"Unusual",
	"Sleep Score",
	"Recovery Score",
	"Readiness Score",
	"Recovery",
	"Readiness",
}

// Workbook writes one row per record. Missing values are left blank.
func Workbook(records []domain.DailyRecordResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRow(f, 1, toCells(Header)); err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(Header), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "U", 16); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, r := range records {
		if err := writeRow(f, i+2, row(r)); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func row(r domain.DailyRecordResponse) []any {
	cells := []any{
		r.Date.Format("2006-01-02"),
		deref(r.HRV),
		deref(r.RestingHR),
		nil,
		deref(r.RespiratoryRate),
	}
	if r.Temperature != nil {
		cells[3] = r.Temperature.DeltaCelsius
	}

	if s := r.Sleep; s != nil {
		cells = append(cells, s.TotalSleep, s.DeepSleep, s.REMSleep, s.CoreSleep, s.Awake, s.InBed, s.Efficiency, s.Awakenings)
	} else {
		cells = append(cells, nil, nil, nil, nil, nil, nil, nil, nil)
	}

	return append(cells,
		deref(r.Strain),
		r.IllnessRisk,
		r.IsAnomaly,
		r.Scores.SleepScore,
		r.Scores.RecoveryScore,
		r.Scores.ReadinessScore,
		r.Scores.RecoveryCategory.Label(),
		r.Scores.ReadinessCategory.Label(),
	)
}

func writeRow(f *excelize.File, rowNum int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}

func toCells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// deref returns nil for a missing value so the cell stays empty.
func deref(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
