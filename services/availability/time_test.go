package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "24-hour passes through", input: "09:00", want: "09:00"},
		{name: "24-hour afternoon passes through", input: "14:00", want: "14:00"},
		{name: "24-hour with minutes passes through", input: "10:30", want: "10:30"},
		{name: "morning 12-hour", input: "9:00 AM", want: "09:00"},
		{name: "padded 12-hour matches 24-hour form", input: "09:00 AM", want: "09:00"},
		{name: "afternoon 12-hour", input: "2:00 PM", want: "14:00"},
		{name: "noon", input: "12:00 PM", want: "12:00"},
		{name: "midnight", input: "12:00 AM", want: "00:00"},
		{name: "lowercase period", input: "9:00 am", want: "09:00"},
		{name: "missing minutes default to zero", input: "9 AM", want: "09:00"},
		{name: "11 PM", input: "11:00 PM", want: "23:00"},
		{name: "non-numeric hour", input: "nine:00 AM", wantErr: true},
		{name: "non-numeric minutes", input: "9:xx AM", wantErr: true},
		{name: "unknown period", input: "9:00 XM", wantErr: true},
		{name: "garbage", input: "soonish", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTimeTwelveHourFormsAgree(t *testing.T) {
	// Casing and zero-padding variants of the same clock time must all
	// normalize to one canonical value.
	variants := []string{"9:00 AM", "09:00 AM", "9:00 am", "09:00 am", "9 AM"}
	for _, v := range variants {
		got, err := NormalizeTime(v)
		require.NoError(t, err, v)
		assert.Equal(t, "09:00", got, v)
	}
}

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"06:00", 360},
		{"10:30", 630},
		{"2:00 PM", 840},
		{"11:00 PM", 1380},
	}
	for _, tt := range tests {
		got, err := minutesOfDay(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := minutesOfDay("not a time")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
