package bookingRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestScheduleQuery(t *testing.T) {
	t.Run("listing-level lookup sees every booking on the date", func(t *testing.T) {
		q := scheduleQuery("c-1", "", "2025-01-03")
		assert.Equal(t, bson.M{
			"court_id": "c-1",
			"date":     "2025-01-03",
		}, q)
	})

	t.Run("sub-court lookup also matches listing-level bookings", func(t *testing.T) {
		q := scheduleQuery("c-1", "sc-1", "2025-01-03")
		assert.Equal(t, "c-1", q["court_id"])
		assert.Equal(t, "2025-01-03", q["date"])

		or, ok := q["$or"].([]bson.M)
		require.True(t, ok, "sub-court filter must be a $or union")
		assert.Contains(t, or, bson.M{"sub_court_id": "sc-1"})
		assert.Contains(t, or, bson.M{"sub_court_id": bson.M{"$exists": false}})
		assert.Contains(t, or, bson.M{"sub_court_id": ""})
	})

	t.Run("sub-court lookup excludes sibling sub-courts", func(t *testing.T) {
		q := scheduleQuery("c-1", "sc-1", "2025-01-03")
		or := q["$or"].([]bson.M)
		assert.NotContains(t, or, bson.M{"sub_court_id": "sc-2"})
	})
}
