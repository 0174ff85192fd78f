package ramadan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nur-collective/siyam/internal/model"
)

var dhaka = time.FixedZone("BST", 6*60*60)

// two-day schedule the label transition tests run against:
// day 1 Seheri 05:08 / Iftar 17:50
func boundarySchedule() []model.ScheduleEntry {
	return []model.ScheduleEntry{
		{
			Day:       1,
			SeheriRaw: time.Date(2026, 2, 19, 5, 8, 0, 0, dhaka),
			IftarRaw:  time.Date(2026, 2, 19, 17, 50, 0, 0, dhaka),
		},
		{
			Day:       2,
			SeheriRaw: time.Date(2026, 2, 19, 5, 7, 15, 0, dhaka),
			IftarRaw:  time.Date(2026, 2, 19, 17, 50, 45, 0, dhaka),
		},
	}
}

func TestCountdownBeforeSeheri(t *testing.T) {
	start := time.Date(2026, 2, 19, 0, 0, 0, 0, dhaka)
	now := time.Date(2026, 2, 19, 4, 0, 0, 0, dhaka)

	cd, ok := ComputeCountdown(boundarySchedule(), now, start, 0)

	assert.True(t, ok)
	assert.Equal(t, LabelSeheriEnds, cd.Label)
	assert.Equal(t, time.Date(2026, 2, 19, 5, 8, 0, 0, dhaka), cd.Target)
	assert.Equal(t, 1, cd.Hours)
	assert.Equal(t, 8, cd.Minutes)
	assert.Equal(t, 0, cd.Seconds)
}

func TestCountdownBetweenSeheriAndIftar(t *testing.T) {
	start := time.Date(2026, 2, 19, 0, 0, 0, 0, dhaka)
	now := time.Date(2026, 2, 19, 12, 0, 0, 0, dhaka)

	cd, ok := ComputeCountdown(boundarySchedule(), now, start, 0)

	assert.True(t, ok)
	assert.Equal(t, LabelIftarStarts, cd.Label)
	assert.Equal(t, time.Date(2026, 2, 19, 17, 50, 0, 0, dhaka), cd.Target)
	assert.Equal(t, 5, cd.Hours)
	assert.Equal(t, 50, cd.Minutes)
}

func TestCountdownAfterIftarTargetsNextSeheri(t *testing.T) {
	start := time.Date(2026, 2, 19, 0, 0, 0, 0, dhaka)
	now := time.Date(2026, 2, 19, 18, 30, 0, 0, dhaka)

	cd, ok := ComputeCountdown(boundarySchedule(), now, start, 0)

	assert.True(t, ok)
	assert.Equal(t, LabelNextSeheri, cd.Label)
	// tomorrow's date, next entry's time-of-day
	assert.Equal(t, time.Date(2026, 2, 20, 5, 7, 15, 0, dhaka), cd.Target)
}

func TestCountdownNeverNegative(t *testing.T) {
	start := time.Date(2026, 2, 19, 0, 0, 0, 0, dhaka)
	for hour := 0; hour < 24; hour++ {
		now := time.Date(2026, 2, 19, hour, 30, 0, 0, dhaka)
		cd, ok := ComputeCountdown(boundarySchedule(), now, start, 0)
		if !ok {
			continue
		}
		assert.True(t, cd.Target.After(now), "target %s not after now %s", cd.Target, now)
		assert.GreaterOrEqual(t, cd.Hours, 0)
		assert.GreaterOrEqual(t, cd.Minutes, 0)
		assert.GreaterOrEqual(t, cd.Seconds, 0)
	}
}

func TestCountdownAppliesOffset(t *testing.T) {
	start := time.Date(2026, 2, 19, 0, 0, 0, 0, dhaka)
	now := time.Date(2026, 2, 19, 4, 0, 0, 0, dhaka)

	cd, ok := ComputeCountdown(boundarySchedule(), now, start, 10)

	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 2, 19, 5, 18, 0, 0, dhaka), cd.Target)
}

func TestCountdownExhaustedSchedule(t *testing.T) {
	start := time.Date(2026, 2, 19, 0, 0, 0, 0, dhaka)
	// last scheduled day, past Iftar, no successor entry
	schedule := boundarySchedule()[:1]
	now := time.Date(2026, 2, 19, 18, 30, 0, 0, dhaka)

	_, ok := ComputeCountdown(schedule, now, start, 0)
	assert.False(t, ok)
}

func TestCountdownEmptySchedule(t *testing.T) {
	start := time.Date(2026, 2, 19, 0, 0, 0, 0, dhaka)
	_, ok := ComputeCountdown(nil, time.Now(), start, 0)
	assert.False(t, ok)
}

func TestCurrentDayMidnightBoundary(t *testing.T) {
	start := time.Date(2026, 2, 19, 0, 0, 0, 0, dhaka)

	// any instant during the first calendar day is day 1
	assert.Equal(t, 1, CurrentDay(start, start))
	assert.Equal(t, 1, CurrentDay(time.Date(2026, 2, 19, 23, 59, 59, 0, dhaka), start))

	// the flip to day 2 happens exactly at midnight
	assert.Equal(t, 2, CurrentDay(time.Date(2026, 2, 20, 0, 0, 0, 0, dhaka), start))
}

func TestCurrentDayClamped(t *testing.T) {
	start := time.Date(2026, 2, 19, 0, 0, 0, 0, dhaka)

	// before the period starts
	assert.Equal(t, 1, CurrentDay(start.AddDate(0, 0, -3), start))

	// long after it ends
	assert.Equal(t, Days, CurrentDay(start.AddDate(0, 2, 0), start))
}
