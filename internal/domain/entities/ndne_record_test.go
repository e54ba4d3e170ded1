package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Contains(t *testing.T) {
	wet := map[time.Month]bool{
		time.October: true, time.November: true, time.December: true,
		time.January: true, time.February: true, time.March: true,
	}
	for m := time.January; m <= time.December; m++ {
		assert.Equal(t, wet[m], PeriodWet.Contains(m), "wet %s", m)
		assert.Equal(t, !wet[m], PeriodDry.Contains(m), "dry %s", m)
	}
	assert.False(t, Period("rainy").Contains(time.January))
}

func TestPeriodAndOrigin_Valid(t *testing.T) {
	assert.True(t, PeriodWet.Valid())
	assert.True(t, PeriodDry.Valid())
	assert.False(t, Period("").Valid())
	assert.True(t, OriginAutomated.Valid())
	assert.True(t, OriginManual.Valid())
	assert.False(t, Origin("imported").Valid())
}

func TestNDNERecord_Provenance(t *testing.T) {
	automated := OriginAutomated
	manual := OriginManual

	assert.Equal(t, "automated", NDNERecord{Origin: OriginAutomated}.Provenance())
	assert.Equal(t, "manual", NDNERecord{Origin: OriginManual}.Provenance())
	assert.Equal(t, ProvenanceEdited, NDNERecord{Origin: OriginManual, OriginalOrigin: &automated}.Provenance())
	assert.Equal(t, "manual", NDNERecord{Origin: OriginManual, OriginalOrigin: &manual}.Provenance())
}

func TestNDNEFilter_Matches(t *testing.T) {
	wet := PeriodWet
	automated := OriginAutomated
	year := 2024

	rec := NDNERecord{
		Period:     PeriodWet,
		Origin:     OriginAutomated,
		MeasuredOn: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, NDNEFilter{}.Matches(rec))
	assert.True(t, NDNEFilter{Period: &wet, Origin: &automated, Year: &year}.Matches(rec))

	dry := PeriodDry
	assert.False(t, NDNEFilter{Period: &dry}.Matches(rec))

	manual := OriginManual
	assert.False(t, NDNEFilter{Origin: &manual}.Matches(rec))

	other := 2023
	assert.False(t, NDNEFilter{Year: &other}.Matches(rec))

	rec.MeasuredOn = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, NDNEFilter{Year: &year}.Matches(rec))
}
