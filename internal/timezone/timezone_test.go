package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "America/Sao_Paulo", Location("America/Sao_Paulo").String())
}

func TestClock_TodayUsesBusinessTimezone(t *testing.T) {
	// 23:30 UTC on the 31st is already the 1st in Lisbon summer time.
	instant := time.Date(2030, 7, 31, 23, 30, 0, 0, time.UTC)
	clock := FixedClock(instant, "Europe/Lisbon")

	assert.Equal(t, time.Date(2030, 8, 1, 0, 0, 0, 0, time.UTC), clock.Today())
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(time.Date(2030, 12, 17, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC), end)
}
