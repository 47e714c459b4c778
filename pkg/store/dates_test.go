package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeek(t *testing.T) {
	loc := time.UTC
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, loc)

	cases := []struct {
		name string
		in   time.Time
	}{
		{"monday morning", time.Date(2026, 10, 12, 9, 30, 0, 0, loc)},
		{"wednesday", time.Date(2026, 10, 14, 18, 0, 0, 0, loc)},
		{"sunday night", time.Date(2026, 10, 18, 23, 59, 59, 0, loc)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, monday.Equal(StartOfWeek(tc.in)), "got %s", StartOfWeek(tc.in))
		})
	}

	nextMonday := time.Date(2026, 10, 19, 0, 0, 1, 0, loc)
	assert.True(t, nextMonday.Truncate(time.Hour).Equal(StartOfWeek(nextMonday)))
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 3, 4, 15, 16, 17, 18, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), DateOnly(in))
}
