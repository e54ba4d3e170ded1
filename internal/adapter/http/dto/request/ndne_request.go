package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"outorga_monitor/internal/domain/entities"
	"outorga_monitor/internal/usecase"
)

var (
	ErrInvalidPeriodFilter = errors.New("invalid period filter")
	ErrInvalidOriginFilter = errors.New("invalid origin filter")
	ErrInvalidYearFilter   = errors.New("invalid year filter")
)

// LevelInput accepts a level as a JSON number or string ("12,5" included). The text is
// kept as sent and parsed by the reconciler.
type LevelInput struct {
	Text string
}

func (l *LevelInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &l.Text)
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	l.Text = n.String()
	return nil
}

// NDNERequest is the create/edit/validate form. Absent keys stay nil so an edit only
// touches the fields it carries.
type NDNERequest struct {
	Period          *string     `json:"period" example:"wet"`
	TechnicianID    *string     `json:"technician_id" example:"tech-17"`
	ResponsibleName *string     `json:"responsible_name" example:"Ana Souza"`
	MeasuredOn      *string     `json:"measured_on" example:"2024-01-15"`
	StaticLevel     *LevelInput `json:"static_level" swaggertype:"string" example:"8.25"`
	DynamicLevel    *LevelInput `json:"dynamic_level" swaggertype:"string" example:"10.5"`
}

func (r NDNERequest) ToFields() usecase.NDNEFields {
	f := usecase.NDNEFields{
		TechnicianID:    r.TechnicianID,
		ResponsibleName: r.ResponsibleName,
		MeasuredOn:      r.MeasuredOn,
	}
	if r.Period != nil {
		p := entities.Period(*r.Period)
		f.Period = &p
	}
	if r.StaticLevel != nil {
		f.StaticLevel = &r.StaticLevel.Text
	}
	if r.DynamicLevel != nil {
		f.DynamicLevel = &r.DynamicLevel.Text
	}
	return f
}

// ParseNDNEFilter builds a list filter from query values; empty values mean "any".
func ParseNDNEFilter(period, origin, year string) (entities.NDNEFilter, error) {
	var f entities.NDNEFilter

	if v := strings.ToLower(strings.TrimSpace(period)); v != "" {
		p := entities.Period(v)
		if !p.Valid() {
			return entities.NDNEFilter{}, ErrInvalidPeriodFilter
		}
		f.Period = &p
	}
	if v := strings.ToLower(strings.TrimSpace(origin)); v != "" {
		o := entities.Origin(v)
		if !o.Valid() {
			return entities.NDNEFilter{}, ErrInvalidOriginFilter
		}
		f.Origin = &o
	}
	if v := strings.TrimSpace(year); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 || y > 9999 {
			return entities.NDNEFilter{}, ErrInvalidYearFilter
		}
		f.Year = &y
	}
	return f, nil
}
