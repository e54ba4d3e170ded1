package response

import (
	"outorga_monitor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MonthlyReadingResponse carries null for every value the month has no reading for.
type MonthlyReadingResponse struct {
	MonthLabel   string  `json:"month_label" example:"Aug-2023"`
	Month        int     `json:"month" example:"8"`
	Year         int     `json:"year" example:"2023"`
	Hydrometer   *string `json:"hydrometer"`
	HourMeter    *string `json:"hour_meter"`
	DynamicLevel *string `json:"dynamic_level"`
	StaticLevel  *string `json:"static_level"`
}

type HistoryResponse struct {
	LicenseID         string                   `json:"license_id"`
	MonitoringStarted bool                     `json:"monitoring_started"`
	Months            []MonthlyReadingResponse `json:"months"`
}

func FromHistory(h entities.MonitoringHistory) HistoryResponse {
	months := make([]MonthlyReadingResponse, 0, len(h.Months))
	for _, m := range h.Months {
		months = append(months, MonthlyReadingResponse{
			MonthLabel:   m.MonthLabel,
			Month:        m.Month,
			Year:         m.Year,
			Hydrometer:   nullable(m.Hydrometer),
			HourMeter:    nullable(m.HourMeter),
			DynamicLevel: nullable(m.DynamicLevel),
			StaticLevel:  nullable(m.StaticLevel),
		})
	}
	return HistoryResponse{
		LicenseID:         h.LicenseID,
		MonitoringStarted: h.Started,
		Months:            months,
	}
}

func nullable(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
