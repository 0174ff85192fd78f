package ramadan

import (
	"time"

	"github.com/nur-collective/siyam/internal/model"
)

// Countdown labels, in the order the day moves through them.
const (
	LabelSeheriEnds  = "Seheri Ends In"
	LabelIftarStarts = "Iftar Starts In"
	LabelNextSeheri  = "Next Seheri In"
)

// Countdown describes the upcoming fasting boundary and the time left
// until it.
type Countdown struct {
	Label   string
	Hours   int
	Minutes int
	Seconds int
	Target  time.Time
	// today's boundaries, offset-adjusted, for display
	Seheri time.Time
	Iftar  time.Time
}

// ComputeCountdown picks the next boundary relative to now and returns
// the remaining time. The schedule's raw timestamps carry an arbitrary
// anchor date, so only their offset-adjusted time-of-day is used: each
// boundary is projected onto today's calendar date before comparison.
// After today's Iftar the target is tomorrow's Seheri from the next
// schedule entry. Returns ok=false when no entry covers the current or
// next day, which callers treat as "no countdown available".
func ComputeCountdown(schedule []model.ScheduleEntry, now, start time.Time, offsetMinutes int) (Countdown, bool) {
	day := CurrentDay(now, start)
	if day > len(schedule) {
		return Countdown{}, false
	}
	offset := time.Duration(offsetMinutes) * time.Minute

	entry := schedule[day-1]
	seheri := projectOnto(now, entry.SeheriRaw.Add(offset))
	iftar := projectOnto(now, entry.IftarRaw.Add(offset))

	cd := Countdown{Seheri: seheri, Iftar: iftar}
	switch {
	case now.Before(seheri):
		cd.Label = LabelSeheriEnds
		cd.Target = seheri
	case now.Before(iftar):
		cd.Label = LabelIftarStarts
		cd.Target = iftar
	default:
		// past today's Iftar; day 30 has no successor
		if day >= len(schedule) {
			return Countdown{}, false
		}
		next := schedule[day]
		cd.Label = LabelNextSeheri
		cd.Target = projectOnto(now.AddDate(0, 0, 1), next.SeheriRaw.Add(offset))
	}

	remaining := cd.Target.Sub(now)
	cd.Hours = int(remaining / time.Hour)
	cd.Minutes = int(remaining/time.Minute) % 60
	cd.Seconds = int(remaining/time.Second) % 60
	return cd, true
}

// projectOnto keeps clock's time-of-day but moves it to date's calendar
// day. Minute offsets that roll past midnight wrap within the day; the
// calendar date only advances through the explicit next-day projection
// in the caller.
func projectOnto(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, date.Location())
}
