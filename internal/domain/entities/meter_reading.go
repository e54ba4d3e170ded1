package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReadingStatus string

const (
	ReadingStatusDraft     ReadingStatus = "draft"
	ReadingStatusFinalized ReadingStatus = "finalized"
)

// MeterReading is the monthly report a license holder files: hydrometer, hour meter
// and water levels for one (month, year).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (license_id-index): license_id
//
// Only finalized readings count for monitoring history.
type MeterReading struct {
	ID              string              `json:"id"`
	LicenseID       string              `json:"license_id"`
	Month           int                 `json:"month"`
	Year            int                 `json:"year"`
	Status          ReadingStatus       `json:"status"`
	HydrometerValue decimal.NullDecimal `json:"hydrometer_value"`
	HourMeterValue  decimal.NullDecimal `json:"hour_meter_value"`
	DynamicLevel    decimal.NullDecimal `json:"dynamic_level"`
	StaticLevel     decimal.NullDecimal `json:"static_level"`
	CreatedAt       time.Time           `json:"created_at"`
}

func (r MeterReading) Period() YearMonth {
	return YearMonth{Year: r.Year, Month: time.Month(r.Month)}
}

// Supersedes reports whether r wins over other when both are filed for the same month:
// latest created_at first, greatest id on ties.
func (r MeterReading) Supersedes(other MeterReading) bool {
	if !r.CreatedAt.Equal(other.CreatedAt) {
		return r.CreatedAt.After(other.CreatedAt)
	}
	return r.ID > other.ID
}
