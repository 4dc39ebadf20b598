package timeofday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"01:30", 90},
		{"23:59", 1439},
		{"8:05", 485},
		{"12:00", 720},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToMinutes(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMinutes_Malformed(t *testing.T) {
	for _, in := range []string{"", "1230", "24:00", "12:60", "12:5", "-1:30", "+1:30", "ab:cd", "123:00", "12:00:00"} {
		t.Run(in, func(t *testing.T) {
			_, err := ToMinutes(in)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:00", Format(0))
	assert.Equal(t, "01:30", Format(90))
	assert.Equal(t, "23:59", Format(1439))
	assert.Equal(t, "08:00-10:00", FormatRange(480, 600))
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Sun", WeekdayName(0))
	assert.Equal(t, "Sat", WeekdayName(6))
	assert.Equal(t, "?", WeekdayName(7))
}

func TestToMinutes_DayBoundary(t *testing.T) {
	got, err := ToMinutes("23:59")
	require.NoError(t, err)
	assert.Equal(t, MinutesPerDay-1, got)

	_, err = ToMinutes("24:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
