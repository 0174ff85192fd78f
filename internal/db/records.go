package db

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nur-collective/siyam/internal/model"
)

// flat row shape for sqlx scanning; converted to the nested model type
type dayRecordRow struct {
	UserID     int       `db:"user_id"`
	Day        int       `db:"day"`
	Fasting    bool      `db:"fasting"`
	Fajr       bool      `db:"fajr"`
	Dhuhr      bool      `db:"dhuhr"`
	Asr        bool      `db:"asr"`
	Maghrib    bool      `db:"maghrib"`
	Isha       bool      `db:"isha"`
	QuranPages int       `db:"quran_pages"`
	DateLabel  string    `db:"date_label"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r dayRecordRow) toModel() model.DayRecord {
	return model.DayRecord{
		UserID:  r.UserID,
		Day:     r.Day,
		Fasting: r.Fasting,
		Salah: model.SalahRecord{
			Fajr:    r.Fajr,
			Dhuhr:   r.Dhuhr,
			Asr:     r.Asr,
			Maghrib: r.Maghrib,
			Isha:    r.Isha,
		},
		QuranPages: r.QuranPages,
		DateLabel:  r.DateLabel,
		UpdatedAt:  r.UpdatedAt,
	}
}

// GetRecords returns a user's full record set ordered by day.
func (s *pgStore) GetRecords(userID int) ([]model.DayRecord, error) {
	var rows []dayRecordRow
	const q = `
	SELECT user_id, day, fasting, fajr, dhuhr, asr, maghrib, isha, quran_pages, date_label, updated_at
	FROM day_records
	WHERE user_id = $1
	ORDER BY day;
	`
	if err := s.db.Select(&rows, q, userID); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("failed to get day records")
		return nil, err
	}
	records := make([]model.DayRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.toModel())
	}
	return records, nil
}

// UpdateRecord replaces the record whose day matches, the only write
// the record set supports after signup. Returns an error if the
// (user, day) row does not exist.
func (s *pgStore) UpdateRecord(userID int, record model.DayRecord) error {
	const q = `
	UPDATE day_records
	SET fasting = $3,
	fajr = $4,
	dhuhr = $5,
	asr = $6,
	maghrib = $7,
	isha = $8,
	quran_pages = $9,
	updated_at = now()
	WHERE user_id = $1 AND day = $2;
	`
	res, err := s.db.Exec(q, userID, record.Day, record.Fasting,
		record.Salah.Fajr, record.Salah.Dhuhr, record.Salah.Asr,
		record.Salah.Maghrib, record.Salah.Isha, record.QuranPages)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Int("day", record.Day).Msg("failed to update day record")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no such record")
	}
	return nil
}

// ListProfiles loads every user with their records. Collections are
// tens of users, so one query per user is fine here.
func (s *pgStore) ListProfiles() ([]model.Profile, error) {
	users, err := s.ListUsers()
	if err != nil {
		return nil, err
	}
	profiles := make([]model.Profile, 0, len(users))
	for _, u := range users {
		records, err := s.GetRecords(u.ID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, model.Profile{User: u, Records: records})
	}
	return profiles, nil
}
