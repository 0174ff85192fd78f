package ramadan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nur-collective/siyam/internal/model"
)

func emptyRecords() []model.DayRecord {
	records := make([]model.DayRecord, 0, Days)
	for day := 1; day <= Days; day++ {
		records = append(records, model.DayRecord{Day: day})
	}
	return records
}

func perfectDay(day int) model.DayRecord {
	return model.DayRecord{
		Day:     day,
		Fasting: true,
		Salah: model.SalahRecord{
			Fajr: true, Dhuhr: true, Asr: true, Maghrib: true, Isha: true,
		},
		QuranPages: 20,
	}
}

func TestComputeStatsEmptyInput(t *testing.T) {
	stats := ComputeStats(nil, 1)
	assert.Equal(t, Stats{}, stats)
}

func TestComputeStatsAllUnfilled(t *testing.T) {
	stats := ComputeStats(emptyRecords(), 10)
	assert.Equal(t, 0, stats.TotalFastings)
	assert.Equal(t, 0, stats.TotalPrayers)
	assert.Equal(t, 0, stats.TotalPages)
	assert.Equal(t, 0, stats.OverallProgress)
}

func TestComputeStatsPerfectPrefixIs100(t *testing.T) {
	records := emptyRecords()
	for day := 1; day <= 5; day++ {
		records[day-1] = perfectDay(day)
	}
	stats := ComputeStats(records, 5)
	assert.Equal(t, 100, stats.OverallProgress)
	assert.Equal(t, 5, stats.TotalFastings)
	assert.Equal(t, 25, stats.TotalPrayers)
	assert.Equal(t, 100, stats.TotalPages)
}

func TestComputeStatsPageCap(t *testing.T) {
	records := emptyRecords()
	records[0].QuranPages = 200
	stats := ComputeStats(records, 1)

	// the cap limits the score contribution, not the reported total
	assert.Equal(t, 20, stats.OverallProgress)
	assert.Equal(t, 200, stats.TotalPages)
}

func TestComputeStatsWeights(t *testing.T) {
	records := emptyRecords()
	records[0].Fasting = true
	records[0].Salah = model.SalahRecord{Fajr: true, Dhuhr: true, Asr: true}
	records[0].QuranPages = 10
	stats := ComputeStats(records, 1)

	// 40 fasting + 3*8 salah + 10 pages
	assert.Equal(t, 74, stats.OverallProgress)
}

func TestComputeStatsBackfillExtendsActivePeriod(t *testing.T) {
	records := emptyRecords()
	records[9] = perfectDay(10)
	stats := ComputeStats(records, 2)

	// activity on day 10 stretches the denominator to 10 days
	assert.Equal(t, 10, stats.OverallProgress)
}

func TestComputeStatsUntouchedFutureDaysIgnored(t *testing.T) {
	records := emptyRecords()
	records[0] = perfectDay(1)
	stats := ComputeStats(records, 1)

	// days 2..30 are all untouched and must not dilute the average
	assert.Equal(t, 100, stats.OverallProgress)
}

func TestComputeStatsRounding(t *testing.T) {
	records := emptyRecords()
	records[0].Fasting = true
	stats := ComputeStats(records, 3)

	// 40 / 3 = 13.33 rounds down
	assert.Equal(t, 13, stats.OverallProgress)

	records[1].Fasting = true
	stats = ComputeStats(records, 3)

	// 80 / 3 = 26.67 rounds up
	assert.Equal(t, 27, stats.OverallProgress)
}

func TestComputeStatsTotalsMonotonic(t *testing.T) {
	records := emptyRecords()
	prev := ComputeStats(records, 15)
	for day := 1; day <= 15; day++ {
		records[day-1] = perfectDay(day)
		next := ComputeStats(records, 15)
		assert.GreaterOrEqual(t, next.TotalFastings, prev.TotalFastings)
		assert.GreaterOrEqual(t, next.TotalPrayers, prev.TotalPrayers)
		assert.GreaterOrEqual(t, next.TotalPages, prev.TotalPages)
		prev = next
	}
}

func TestComputeStatsDoesNotDropOnCatchUp(t *testing.T) {
	// a user who logged day 10 while still on day 2 must not score
	// lower after filling the gap days in
	records := emptyRecords()
	records[9] = perfectDay(10)
	before := ComputeStats(records, 2)

	for day := 1; day <= 9; day++ {
		records[day-1] = perfectDay(day)
	}
	after := ComputeStats(records, 2)
	assert.Greater(t, after.OverallProgress, before.OverallProgress)
	assert.Equal(t, 100, after.OverallProgress)
}
