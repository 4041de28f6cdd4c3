package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2026-03-11", "14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 11, 14, 30, 0, 0, time.Local), got)
}

func TestCombineDateTime_WithSeconds(t *testing.T) {
	got, err := CombineDateTime("2026-03-11", "14:30:45")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 11, 14, 30, 45, 0, time.Local), got)
}

func TestCombineDateTime_Invalid(t *testing.T) {
	cases := []struct {
		name string
		date string
		tm   string
	}{
		{"bad date", "11-03-2026", "14:30"},
		{"bad time", "2026-03-11", "2pm"},
		{"empty date", "", "14:30"},
		{"empty time", "2026-03-11", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CombineDateTime(tc.date, tc.tm)
			assert.Error(t, err)
		})
	}
}
