package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnitAmount(t *testing.T) {
	tests := []struct {
		name            string
		pricePerHour    float64
		durationMinutes int
		want            int64
	}{
		{"one hour", 30, 60, 3000},
		{"ninety minutes", 30, 90, 4500},
		{"two hours", 25.50, 120, 5100},
		{"half cent rounds up", 19.99, 30, 1000},
		{"forty five minutes", 10, 45, 750},
		{"free court", 0, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinorUnitAmount(tt.pricePerHour, tt.durationMinutes))
		})
	}
}
