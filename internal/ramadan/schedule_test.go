package ramadan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nur-collective/siyam/internal/config"
	"github.com/nur-collective/siyam/internal/model"
)

func testTrackerConfig() config.TrackerConfig {
	return config.TrackerConfig{
		Location:           dhaka,
		StartDate:          time.Date(2026, 2, 19, 0, 0, 0, 0, dhaka),
		SeheriAnchor:       time.Date(2026, 2, 19, 5, 14, 0, 0, dhaka),
		IftarAnchor:        time.Date(2026, 2, 19, 17, 56, 0, 0, dhaka),
		DriftPerDay:        45 * time.Second,
		ReferenceLongitude: 91.78,
	}
}

func TestGenerateScheduleLength(t *testing.T) {
	schedule := GenerateSchedule(testTrackerConfig())
	assert.Len(t, schedule, Days)
	for i, entry := range schedule {
		assert.Equal(t, i+1, entry.Day)
	}
}

func TestGenerateScheduleAnchorsAndDrift(t *testing.T) {
	schedule := GenerateSchedule(testTrackerConfig())

	// day 1 sits exactly on the anchors
	assert.Equal(t, "05:14 AM", schedule[0].Seheri(0))
	assert.Equal(t, "05:56 PM", schedule[0].Iftar(0))
	assert.Equal(t, "19 February", schedule[0].DateLabel)

	// each day Seheri slips 45s earlier, Iftar 45s later
	assert.Equal(t, 45*time.Second, schedule[0].SeheriRaw.Sub(schedule[1].SeheriRaw))
	assert.Equal(t, 45*time.Second, schedule[1].IftarRaw.Sub(schedule[0].IftarRaw))

	// day 30: 29 steps of drift, 21m45s total
	assert.Equal(t, "04:52 AM", schedule[29].Seheri(0))
	assert.Equal(t, "06:17 PM", schedule[29].Iftar(0))
	assert.Equal(t, "20 March", schedule[29].DateLabel)
}

func TestScheduleEntryOffsetRollsOverMidnight(t *testing.T) {
	// 23:50 + 20 minutes reads 00:10; the calendar date is advanced
	// only by the explicit next-day projection, never by the offset
	entry := model.ScheduleEntry{
		Day:       1,
		SeheriRaw: time.Date(2026, 2, 19, 23, 50, 0, 0, dhaka),
	}
	assert.Equal(t, "12:10 AM", entry.Seheri(20))
	assert.Equal(t, "11:50 PM", entry.Seheri(0))
	assert.Equal(t, "11:30 PM", entry.Seheri(-20))
}
