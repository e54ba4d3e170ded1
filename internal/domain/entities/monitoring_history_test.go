package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWindow(t *testing.T) {
	t.Run("wraps december into next year", func(t *testing.T) {
		w := MonthWindow(YearMonth{Year: 2023, Month: time.August}, HistoryWindowMonths)
		require.Len(t, w, 12)

		labels := make([]string, 0, len(w))
		for _, ym := range w {
			labels = append(labels, ym.Label())
		}
		assert.Equal(t, []string{
			"Aug-2023", "Sep-2023", "Oct-2023", "Nov-2023", "Dec-2023", "Jan-2024",
			"Feb-2024", "Mar-2024", "Apr-2024", "May-2024", "Jun-2024", "Jul-2024",
		}, labels)
	})

	t.Run("january anchor stays in one year", func(t *testing.T) {
		w := MonthWindow(YearMonth{Year: 2022, Month: time.January}, HistoryWindowMonths)
		require.Len(t, w, 12)
		assert.Equal(t, YearMonth{Year: 2022, Month: time.January}, w[0])
		assert.Equal(t, YearMonth{Year: 2022, Month: time.December}, w[11])
	})

	t.Run("december anchor", func(t *testing.T) {
		w := MonthWindow(YearMonth{Year: 2020, Month: time.December}, HistoryWindowMonths)
		assert.Equal(t, YearMonth{Year: 2020, Month: time.December}, w[0])
		assert.Equal(t, YearMonth{Year: 2021, Month: time.January}, w[1])
		assert.Equal(t, YearMonth{Year: 2021, Month: time.November}, w[11])
	})

	t.Run("every window is consecutive", func(t *testing.T) {
		for m := time.January; m <= time.December; m++ {
			w := MonthWindow(YearMonth{Year: 2021, Month: m}, HistoryWindowMonths)
			for i := 1; i < len(w); i++ {
				assert.True(t, w[i-1].Before(w[i]))
				next := time.Date(w[i-1].Year, w[i-1].Month+1, 1, 0, 0, 0, 0, time.UTC)
				assert.Equal(t, YearMonth{Year: next.Year(), Month: next.Month()}, w[i])
			}
		}
	})
}

func TestYearMonth_Before(t *testing.T) {
	assert.True(t, YearMonth{Year: 2023, Month: time.December}.Before(YearMonth{Year: 2024, Month: time.January}))
	assert.True(t, YearMonth{Year: 2024, Month: time.January}.Before(YearMonth{Year: 2024, Month: time.February}))
	assert.False(t, YearMonth{Year: 2024, Month: time.March}.Before(YearMonth{Year: 2024, Month: time.March}))
}

func TestMeterReading_Supersedes(t *testing.T) {
	t0 := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	older := MeterReading{ID: "b", CreatedAt: t0}
	newer := MeterReading{ID: "a", CreatedAt: t0.Add(time.Hour)}

	assert.True(t, newer.Supersedes(older))
	assert.False(t, older.Supersedes(newer))

	tieLow := MeterReading{ID: "r-1", CreatedAt: t0}
	tieHigh := MeterReading{ID: "r-2", CreatedAt: t0}
	assert.True(t, tieHigh.Supersedes(tieLow))
	assert.False(t, tieLow.Supersedes(tieHigh))
}
