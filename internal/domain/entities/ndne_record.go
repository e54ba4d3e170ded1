package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is the seasonal window a ND/NE measurement is declared for.
//
// Calendar ranges:
//   - wet: October to March
//   - dry: April to September
type Period string

const (
	PeriodWet Period = "wet"
	PeriodDry Period = "dry"
)

func (p Period) Valid() bool {
	return p == PeriodWet || p == PeriodDry
}

// Contains reports whether month m falls inside the period's calendar range.
func (p Period) Contains(m time.Month) bool {
	switch p {
	case PeriodWet:
		return m >= time.October || m <= time.March
	case PeriodDry:
		return m >= time.April && m <= time.September
	}
	return false
}

// Origin tells who produced a ND/NE record.
type Origin string

const (
	OriginAutomated Origin = "automated"
	OriginManual    Origin = "manual"
)

func (o Origin) Valid() bool {
	return o == OriginAutomated || o == OriginManual
}

// ProvenanceEdited is reported for records whose origin moved away from the original one.
const ProvenanceEdited = "edited"

// NDNERecord is a dynamic level (ND) / static level (NE) measurement for a contract.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (contract_id-index): contract_id, sort key measured_on
//
// Provenance:
//   - OriginalOrigin is nil until the first edit, which captures the pre-edit origin.
//     Later edits never overwrite it.
type NDNERecord struct {
	ID              string          `json:"id"`
	ContractID      string          `json:"contract_id"`
	Period          Period          `json:"period"`
	StaticLevel     decimal.Decimal `json:"static_level"`
	DynamicLevel    decimal.Decimal `json:"dynamic_level"`
	MeasuredOn      time.Time       `json:"measured_on"`
	TechnicianID    string          `json:"technician_id"`
	ResponsibleName string          `json:"responsible_name"`
	Origin          Origin          `json:"origin"`
	OriginalOrigin  *Origin         `json:"original_origin"`
	CreatedAt       time.Time       `json:"created_at"`
	CreatedBy       string          `json:"created_by"`
	EditedAt        *time.Time      `json:"edited_at,omitempty"`
	EditedBy        string          `json:"edited_by,omitempty"`
}

// Provenance returns "edited" when the record's origin differs from its original origin,
// otherwise the origin itself.
func (r NDNERecord) Provenance() string {
	if r.OriginalOrigin != nil && *r.OriginalOrigin != r.Origin {
		return ProvenanceEdited
	}
	return string(r.Origin)
}

// NDNEFilter narrows a contract's ND/NE listing. Nil fields do not filter.
type NDNEFilter struct {
	Period *Period
	Origin *Origin
	Year   *int
}

// YearRange returns the inclusive [Jan 1, Dec 31] date range of the year filter.
func (f NDNEFilter) YearRange() (from, to time.Time, ok bool) {
	if f.Year == nil {
		return time.Time{}, time.Time{}, false
	}
	from = time.Date(*f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(*f.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return from, to, true
}

// Matches applies the filter in memory. Used by stores that cannot push every predicate down.
func (f NDNEFilter) Matches(r NDNERecord) bool {
	if f.Period != nil && r.Period != *f.Period {
		return false
	}
	if f.Origin != nil && r.Origin != *f.Origin {
		return false
	}
	if from, to, ok := f.YearRange(); ok {
		if r.MeasuredOn.Before(from) || r.MeasuredOn.After(to) {
			return false
		}
	}
	return true
}
