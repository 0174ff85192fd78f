package model

import "time"

// ScheduleEntry is one day of the reference timetable. Entries are
// immutable once generated; only the time-of-day of the raw timestamps
// is meaningful to consumers, the anchor date is arbitrary.
type ScheduleEntry struct {
	Day       int       `json:"day"`
	DateLabel string    `json:"date"`
	SeheriRaw time.Time `json:"-"`
	IftarRaw  time.Time `json:"-"`
}

// Seheri renders the Seheri cutoff as a clock string, shifted by the
// caller's longitude offset.
func (e ScheduleEntry) Seheri(offsetMinutes int) string {
	return e.SeheriRaw.Add(time.Duration(offsetMinutes) * time.Minute).Format("03:04 PM")
}

// Iftar renders the Iftar start as a clock string, shifted by the
// caller's longitude offset.
func (e ScheduleEntry) Iftar(offsetMinutes int) string {
	return e.IftarRaw.Add(time.Duration(offsetMinutes) * time.Minute).Format("03:04 PM")
}
