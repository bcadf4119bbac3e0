package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScope(t *testing.T) {
	loc := time.UTC

	t.Run("NoDateMeansAllMode", func(t *testing.T) {
		scope, err := resolveScope("", "", "", loc)
		require.NoError(t, err)
		assert.Equal(t, ModeAll, scope.Mode)
	})

	t.Run("UnparseableDateMeansAllMode", func(t *testing.T) {
		scope, err := resolveScope("not-a-date", "2", "2024", loc)
		require.NoError(t, err)
		assert.Equal(t, ModeAll, scope.Mode, "month/year must not rescue an invalid date")
	})

	t.Run("MonthModeNeedsValidDateAndBothParams", func(t *testing.T) {
		scope, err := resolveScope("2024-03-15", "2", "2024", loc)
		require.NoError(t, err)
		assert.Equal(t, ModeMonth, scope.Mode)
		assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, loc), scope.Start, "month is zero-indexed on the wire")
		assert.Equal(t, time.Date(2024, time.March, 31, 23, 59, 59, int(time.Second-time.Microsecond), loc), scope.End)
	})

	t.Run("DayModeWhenMonthMissing", func(t *testing.T) {
		scope, err := resolveScope("2024-03-15T09:30:00Z", "", "2024", loc)
		require.NoError(t, err)
		assert.Equal(t, ModeDay, scope.Mode)
		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, loc), scope.Start)
		assert.Equal(t, time.Date(2024, time.March, 15, 23, 59, 59, int(time.Second-time.Microsecond), loc), scope.End)
	})

	t.Run("NonNumericMonthIsBadScope", func(t *testing.T) {
		_, err := resolveScope("2024-03-15", "march", "2024", loc)
		assert.ErrorIs(t, err, ErrBadScope)
	})

	t.Run("NonNumericYearIsBadScope", func(t *testing.T) {
		_, err := resolveScope("", "2", "twenty", loc)
		assert.ErrorIs(t, err, ErrBadScope, "numeric check applies even when the date is absent")
	})

	t.Run("BoundariesUseConfiguredZone", func(t *testing.T) {
		warsaw, err := time.LoadLocation("Europe/Warsaw")
		require.NoError(t, err)

		// 2024-03-15T00:30+01:00 is still 2024-03-14 in UTC; the day
		// boundaries must both come from the configured zone.
		scope, rerr := resolveScope("2024-03-15T00:30:00+01:00", "", "", warsaw)
		require.NoError(t, rerr)
		assert.Equal(t, ModeDay, scope.Mode)
		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, warsaw), scope.Start)
		assert.Equal(t, warsaw, scope.End.Location())
	})
}

func TestParseDateTime(t *testing.T) {
	loc := time.UTC

	valid := []string{
		"2024-01-01T10:00:00Z",
		"2024-01-01T10:00:00.123Z",
		"2024-01-01T10:00:00+02:00",
		"2024-01-01T10:00:00",
		"2024-01-01 10:00:00",
		"2024-01-01",
	}
	for _, s := range valid {
		_, ok := parseDateTime(s, loc)
		assert.True(t, ok, "expected %q to parse", s)
	}

	invalid := []string{"", "   ", "not-a-date", "2024-13-40", "15/03/2024"}
	for _, s := range invalid {
		_, ok := parseDateTime(s, loc)
		assert.False(t, ok, "expected %q to be rejected", s)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, daysInMonth(2024, time.January))
	assert.Equal(t, 29, daysInMonth(2024, time.February), "2024 is a leap year")
	assert.Equal(t, 28, daysInMonth(2023, time.February))
	assert.Equal(t, 30, daysInMonth(2024, time.April))
	assert.Equal(t, 31, daysInMonth(2024, time.December))
}
