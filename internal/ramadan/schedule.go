// Package ramadan holds the tracker's computational core: timetable
// generation, progress scoring, leaderboard ranking and the countdown
// to the next Seheri/Iftar boundary. Everything here is a pure function
// of its inputs; persistence, tickers and transport live in the callers.
package ramadan

import (
	"time"

	"github.com/nur-collective/siyam/internal/config"
	"github.com/nur-collective/siyam/internal/model"
)

// Days is the length of the observance period.
const Days = 30

// GenerateSchedule builds the immutable reference timetable from the
// configured anchors. Seheri creeps 45 seconds earlier per day and
// Iftar 45 seconds later (the configured drift), modeling the slow
// seasonal shift of prayer times at the reference location.
func GenerateSchedule(cfg config.TrackerConfig) []model.ScheduleEntry {
	entries := make([]model.ScheduleEntry, 0, Days)
	for day := 1; day <= Days; day++ {
		drift := time.Duration(day-1) * cfg.DriftPerDay
		entries = append(entries, model.ScheduleEntry{
			Day:       day,
			DateLabel: cfg.StartDate.AddDate(0, 0, day-1).Format("2 January"),
			SeheriRaw: cfg.SeheriAnchor.Add(-drift),
			IftarRaw:  cfg.IftarAnchor.Add(drift),
		})
	}
	return entries
}

// CurrentDay derives the 1-based Ramadan day from the wall clock,
// clamped to [1, Days]. The index is floor(elapsed days) + 1: any
// instant during the first calendar day is day 1, flipping to day 2
// exactly at the first midnight. (The ceiling variant would report
// day 0 at the opening instant.)
func CurrentDay(now, start time.Time) int {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		return 1
	}
	day := int(elapsed/(24*time.Hour)) + 1
	if day > Days {
		return Days
	}
	return day
}
