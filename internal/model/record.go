package model

import "time"

// SalahRecord tracks the five daily prayers. The flags are independent,
// there is no ordering dependency between them.
type SalahRecord struct {
	Fajr    bool `db:"fajr" json:"fajr"`
	Dhuhr   bool `db:"dhuhr" json:"dhuhr"`
	Asr     bool `db:"asr" json:"asr"`
	Maghrib bool `db:"maghrib" json:"maghrib"`
	Isha    bool `db:"isha" json:"isha"`
}

// Count returns how many of the five prayers are marked done.
func (s SalahRecord) Count() int {
	n := 0
	for _, done := range [5]bool{s.Fajr, s.Dhuhr, s.Asr, s.Maghrib, s.Isha} {
		if done {
			n++
		}
	}
	return n
}

// DayRecord is one day of a user's log. Every user owns exactly 30 of
// these, days 1..30, created zeroed at signup and replaced in place as
// the user logs activity.
type DayRecord struct {
	UserID     int         `db:"user_id" json:"-"`
	Day        int         `db:"day" json:"day"`
	Fasting    bool        `db:"fasting" json:"fasting"`
	Salah      SalahRecord `json:"salah"`
	QuranPages int         `db:"quran_pages" json:"quranPages"`
	DateLabel  string      `db:"date_label" json:"date"`
	UpdatedAt  time.Time   `db:"updated_at" json:"-"`
}

// HasActivity reports whether anything at all was logged for the day.
func (r DayRecord) HasActivity() bool {
	return r.Fasting || r.QuranPages > 0 || r.Salah.Count() > 0
}

// InitialRecords builds the zeroed 30-day record set a new user starts
// with. Date labels run from the configured start date.
func InitialRecords(start time.Time) []DayRecord {
	records := make([]DayRecord, 0, 30)
	for day := 1; day <= 30; day++ {
		records = append(records, DayRecord{
			Day:       day,
			DateLabel: start.AddDate(0, 0, day-1).Format("2 January"),
		})
	}
	return records
}
