package ramadan

import (
	"math"

	"github.com/nur-collective/siyam/internal/model"
)

// Per-day weighting: fasting and the five prayers carry 40 points
// each, Quran recitation the remaining 20 with a per-day page cap so a
// single heavy reading day cannot swamp the average.
const (
	fastingPoints  = 40
	perSalahPoints = 8
	pageCap        = 20
)

// Stats is the scoring engine output for one user.
type Stats struct {
	TotalFastings   int `json:"totalFastings"`
	TotalPrayers    int `json:"totalPrayers"`
	TotalPages      int `json:"totalPages"`
	OverallProgress int `json:"overallProgress"`
}

// ComputeStats folds a user's day-by-day log into totals and a weighted
// completion percentage.
//
// The percentage averages per-day scores over the "active period": the
// later of currentDay and the highest day with any logged activity.
// Backfilled future days therefore count toward the denominator (the
// score cannot inflate by ignoring them) while untouched future days do
// not dilute it. currentDay is expected pre-clamped to [1, Days].
func ComputeStats(records []model.DayRecord, currentDay int) Stats {
	var s Stats

	activePeriod := currentDay
	for _, r := range records {
		s.TotalPages += r.QuranPages
		s.TotalPrayers += r.Salah.Count()
		if r.Fasting {
			s.TotalFastings++
		}
		if r.HasActivity() && r.Day > activePeriod {
			activePeriod = r.Day
		}
	}

	sum := 0
	considered := 0
	for _, r := range records {
		if r.Day > activePeriod {
			continue
		}
		considered++
		score := perSalahPoints * r.Salah.Count()
		if r.Fasting {
			score += fastingPoints
		}
		score += min(r.QuranPages, pageCap)
		sum += score
	}
	if considered == 0 {
		considered = 1
	}
	s.OverallProgress = int(math.Round(float64(sum) / float64(considered)))
	return s
}
