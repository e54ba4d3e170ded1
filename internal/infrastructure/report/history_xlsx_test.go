package report

import (
	"bytes"
	"testing"

	"outorga_monitor/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteHistoryXLSX(t *testing.T) {
	h := entities.MonitoringHistory{
		LicenseID: "L1",
		Started:   true,
		Months: []entities.MonthlyReading{
			{
				MonthLabel:   "Aug-2023",
				Month:        8,
				Year:         2023,
				Hydrometer:   decimal.NewNullDecimal(decimal.RequireFromString("1520.5")),
				DynamicLevel: decimal.NewNullDecimal(decimal.RequireFromString("30")),
			},
			{MonthLabel: "Sep-2023", Month: 9, Year: 2023},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHistoryXLSX(&buf, h))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, historyHeaders, rows[0])
	assert.Equal(t, "Aug-2023", rows[1][0])
	assert.Equal(t, "1520.5", rows[1][1])
	assert.Equal(t, "", rows[1][2])
	assert.Equal(t, "30", rows[1][3])
	assert.Equal(t, []string{"Sep-2023"}, rows[2])
}

func TestWriteHistoryXLSX_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHistoryXLSX(&buf, entities.MonitoringHistory{LicenseID: "L1"}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(historySheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "monitoring not started", v)
}

func TestHistoryFileName(t *testing.T) {
	assert.Equal(t, "monitoring-history-L1.xlsx", HistoryFileName("L1"))
}
