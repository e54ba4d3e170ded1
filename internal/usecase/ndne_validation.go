package usecase

import (
	"strings"
	"time"

	"outorga_monitor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Field names reported in ValidationError.Fields.
const (
	FieldPeriod          = "period"
	FieldTechnicianID    = "technician_id"
	FieldResponsibleName = "responsible_name"
	FieldMeasuredOn      = "measured_on"
	FieldStaticLevel     = "static_level"
	FieldDynamicLevel    = "dynamic_level"
)

const (
	MsgRequired        = "required"
	MsgPositiveNumber  = "must be a positive number"
	MsgInvalidPeriod   = "must be wet or dry"
	MsgInvalidDate     = "must be a date in YYYY-MM-DD format"
	MsgDynamicBelowNE  = "dynamic level must be greater than or equal to static level"
	MsgDateOutOfSeason = "date does not correspond to the measurement period"
	MeasuredOnLayout   = "2006-01-02"
)

// NDNEFields is the form/intake field set of a ND/NE record. Nil means "not supplied".
//
// Levels travel as text, the way forms submit them, and are parsed here.
type NDNEFields struct {
	Period          *entities.Period
	TechnicianID    *string
	ResponsibleName *string
	MeasuredOn      *string
	StaticLevel     *string
	DynamicLevel    *string
}

type ndneValues struct {
	period          entities.Period
	technicianID    string
	responsibleName string
	measuredOn      time.Time
	staticLevel     decimal.Decimal
	dynamicLevel    decimal.Decimal
}

// ValidateNDNE checks a ND/NE field set and returns every problem found, or nil.
func ValidateNDNE(f NDNEFields) *ValidationError {
	_, verr := parseNDNE(f)
	return verr
}

func parseNDNE(f NDNEFields) (ndneValues, *ValidationError) {
	var (
		v    ndneValues
		verr = &ValidationError{}
	)

	if f.Period == nil || strings.TrimSpace(string(*f.Period)) == "" {
		verr.add(FieldPeriod, MsgRequired)
	} else {
		v.period = entities.Period(strings.ToLower(strings.TrimSpace(string(*f.Period))))
		if !v.period.Valid() {
			verr.add(FieldPeriod, MsgInvalidPeriod)
		}
	}

	if s := trimmed(f.TechnicianID); s == "" {
		verr.add(FieldTechnicianID, MsgRequired)
	} else {
		v.technicianID = s
	}
	v.responsibleName = trimmed(f.ResponsibleName)

	if s := trimmed(f.MeasuredOn); s == "" {
		verr.add(FieldMeasuredOn, MsgRequired)
	} else if d, err := time.Parse(MeasuredOnLayout, s); err != nil {
		verr.add(FieldMeasuredOn, MsgInvalidDate)
	} else {
		v.measuredOn = d
	}

	var staticOK, dynamicOK bool
	v.staticLevel, staticOK = parseLevel(verr, FieldStaticLevel, f.StaticLevel)
	v.dynamicLevel, dynamicOK = parseLevel(verr, FieldDynamicLevel, f.DynamicLevel)

	if staticOK && dynamicOK && v.dynamicLevel.LessThan(v.staticLevel) {
		verr.add(FieldDynamicLevel, MsgDynamicBelowNE)
	}

	if !verr.has(FieldPeriod) && !verr.has(FieldMeasuredOn) && !v.period.Contains(v.measuredOn.Month()) {
		verr.add(FieldMeasuredOn, MsgDateOutOfSeason)
	}

	if verr.Empty() {
		return v, nil
	}
	return v, verr
}

func parseLevel(verr *ValidationError, field string, raw *string) (decimal.Decimal, bool) {
	s := trimmed(raw)
	if s == "" {
		verr.add(field, MsgRequired)
		return decimal.Zero, false
	}
	// Forms in pt-BR send "12,5".
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil || d.IsNegative() {
		verr.add(field, MsgPositiveNumber)
		return decimal.Zero, false
	}
	return d, true
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// fieldsOf renders a stored record back into a field set, the base of an edit merge.
func fieldsOf(r entities.NDNERecord) NDNEFields {
	period := r.Period
	measuredOn := r.MeasuredOn.Format(MeasuredOnLayout)
	static := r.StaticLevel.String()
	dynamic := r.DynamicLevel.String()
	technician := r.TechnicianID
	responsible := r.ResponsibleName
	return NDNEFields{
		Period:          &period,
		TechnicianID:    &technician,
		ResponsibleName: &responsible,
		MeasuredOn:      &measuredOn,
		StaticLevel:     &static,
		DynamicLevel:    &dynamic,
	}
}

// merge overlays the supplied fields of patch onto base.
func merge(base, patch NDNEFields) NDNEFields {
	if patch.Period != nil {
		base.Period = patch.Period
	}
	if patch.TechnicianID != nil {
		base.TechnicianID = patch.TechnicianID
	}
	if patch.ResponsibleName != nil {
		base.ResponsibleName = patch.ResponsibleName
	}
	if patch.MeasuredOn != nil {
		base.MeasuredOn = patch.MeasuredOn
	}
	if patch.StaticLevel != nil {
		base.StaticLevel = patch.StaticLevel
	}
	if patch.DynamicLevel != nil {
		base.DynamicLevel = patch.DynamicLevel
	}
	return base
}

func (v ndneValues) applyTo(r *entities.NDNERecord) {
	r.Period = v.period
	r.TechnicianID = v.technicianID
	r.ResponsibleName = v.responsibleName
	r.MeasuredOn = v.measuredOn
	r.StaticLevel = v.staticLevel
	r.DynamicLevel = v.dynamicLevel
}
