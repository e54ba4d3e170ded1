package report

import (
	"fmt"
	"io"

	"outorga_monitor/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const historySheet = "History"

var historyHeaders = []string{"Month", "Hydrometer", "Hour meter", "Dynamic level (ND)", "Static level (NE)"}

// WriteHistoryXLSX renders the monitoring history as a single-sheet workbook, one row
// per window month. Months without a finalized reading keep empty value cells.
func WriteHistoryXLSX(w io.Writer, h entities.MonitoringHistory) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return err
	}

	for i, title := range historyHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(historySheet, cell, title); err != nil {
			return err
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(historySheet, "A1", "E1", style)
	}
	_ = f.SetColWidth(historySheet, "A", "A", 12)
	_ = f.SetColWidth(historySheet, "B", "E", 20)

	if !h.Started {
		if err := f.SetCellValue(historySheet, "A2", "monitoring not started"); err != nil {
			return err
		}
	}

	for i, m := range h.Months {
		row := i + 2
		if err := f.SetCellValue(historySheet, fmt.Sprintf("A%d", row), m.MonthLabel); err != nil {
			return err
		}
		for col, v := range []decimal.NullDecimal{m.Hydrometer, m.HourMeter, m.DynamicLevel, m.StaticLevel} {
			if !v.Valid {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+2, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(historySheet, cell, v.Decimal.InexactFloat64()); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// HistoryFileName is the download name for a license's export.
func HistoryFileName(licenseID string) string {
	return fmt.Sprintf("monitoring-history-%s.xlsx", licenseID)
}
