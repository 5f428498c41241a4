package court

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtshare/models"
)

func TestNormalizeConfig(t *testing.T) {
	t.Run("times are canonicalized across all sources", func(t *testing.T) {
		got, err := normalizeConfig(models.AvailabilityConfig{
			AlwaysBlockedTimes: []string{"2:00 PM", "09:00"},
			AlwaysBlockedTimesByDayOfWeek: map[string][]string{
				"0": {"10 AM"},
			},
			BlockedTimesByDate: map[string][]string{
				"2025-07-04": {"12:00 pm"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"14:00", "09:00"}, got.AlwaysBlockedTimes)
		assert.Equal(t, []string{"10:00"}, got.AlwaysBlockedTimesByDayOfWeek["0"])
		assert.Equal(t, []string{"12:00"}, got.BlockedTimesByDate["2025-07-04"])
	})

	t.Run("rejects bad day-of-week keys", func(t *testing.T) {
		for _, key := range []string{"7", "-1", "monday", ""} {
			_, err := normalizeConfig(models.AvailabilityConfig{
				AlwaysBlockedTimesByDayOfWeek: map[string][]string{key: {"09:00"}},
			})
			assert.ErrorIs(t, err, ErrInvalidConfig, "key %q", key)
		}
	})

	t.Run("rejects bad date keys", func(t *testing.T) {
		_, err := normalizeConfig(models.AvailabilityConfig{
			BlockedTimesByDate: map[string][]string{"07/04/2025": {"09:00"}},
		})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects unparseable times", func(t *testing.T) {
		_, err := normalizeConfig(models.AvailabilityConfig{
			AlwaysBlockedTimes: []string{"half past nine"},
		})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects negative advance window", func(t *testing.T) {
		days := -1
		_, err := normalizeConfig(models.AvailabilityConfig{MaxAdvanceBookingDays: &days})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("empty config passes through", func(t *testing.T) {
		got, err := normalizeConfig(models.AvailabilityConfig{})
		require.NoError(t, err)
		assert.Nil(t, got.AlwaysBlockedTimes)
		assert.Nil(t, got.MaxAdvanceBookingDays)
	})
}
