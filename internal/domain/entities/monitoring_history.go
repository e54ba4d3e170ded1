package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryWindowMonths is the size of a reconstructed monitoring window.
const HistoryWindowMonths = 12

// YearMonth is a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Before reports whether ym is earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// Label renders the month as e.g. "Aug-2023".
func (ym YearMonth) Label() string {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan-2006")
}

// Valid reports whether the month is inside 1..12.
func (ym YearMonth) Valid() bool {
	return ym.Month >= time.January && ym.Month <= time.December
}

// MonthWindow returns n consecutive calendar months starting at anchor.
func MonthWindow(anchor YearMonth, n int) []YearMonth {
	out := make([]YearMonth, 0, n)
	base := int(anchor.Month) - 1
	for i := 0; i < n; i++ {
		out = append(out, YearMonth{
			Year:  anchor.Year + (base+i)/12,
			Month: time.Month((base+i)%12 + 1),
		})
	}
	return out
}

// MonthlyReading is one derived entry of a monitoring history. Never persisted.
type MonthlyReading struct {
	MonthLabel   string              `json:"month_label"`
	Month        int                 `json:"month"`
	Year         int                 `json:"year"`
	Hydrometer   decimal.NullDecimal `json:"hydrometer"`
	HourMeter    decimal.NullDecimal `json:"hour_meter"`
	DynamicLevel decimal.NullDecimal `json:"dynamic_level"`
	StaticLevel  decimal.NullDecimal `json:"static_level"`
}

// MonitoringHistory is the 12-month window of a license.
//
// Started is false when the license has no finalized reading yet; Months is nil then.
type MonitoringHistory struct {
	LicenseID string           `json:"license_id"`
	Started   bool             `json:"monitoring_started"`
	Months    []MonthlyReading `json:"months"`
}
