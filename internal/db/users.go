package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/nur-collective/siyam/internal/model"
)

// CreateUser inserts a new user together with their zeroed 30-day
// record set in one transaction and returns the new user ID. The
// record set never grows or shrinks after this point, days are only
// replaced in place.
func (s *pgStore) CreateUser(name, hashedPassword string, records []model.DayRecord) (int, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin create user tx")
		return 0, err
	}
	defer tx.Rollback()

	const userQ = `
	INSERT INTO users (name, hashed_password, created_at, updated_at)
	VALUES ($1, $2, now(), now())
	RETURNING id;
	`
	var newID int
	if err := tx.QueryRow(userQ, name, hashedPassword).Scan(&newID); err != nil {
		log.Error().Err(err).Msg("failed to create user")
		return 0, err
	}

	const recordQ = `
	INSERT INTO day_records (user_id, day, fasting, fajr, dhuhr, asr, maghrib, isha, quran_pages, date_label, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now());
	`
	for _, r := range records {
		if _, err := tx.Exec(recordQ, newID, r.Day, r.Fasting,
			r.Salah.Fajr, r.Salah.Dhuhr, r.Salah.Asr, r.Salah.Maghrib, r.Salah.Isha,
			r.QuranPages, r.DateLabel); err != nil {
			log.Error().Err(err).Int("day", r.Day).Msg("failed to seed day record")
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit create user tx")
		return 0, err
	}
	return newID, nil
}

// GetUserByName fetches a user by display name, case-insensitively.
// Returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByName(name string) (*model.User, error) {
	var u model.User
	const q = `
	SELECT id, name, hashed_password, created_at, updated_at
	FROM users
	WHERE lower(name) = lower($1);
	`
	if err := s.db.Get(&u, q, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by name")
		return nil, err
	}
	return &u, nil
}

// GetUserByID fetches a user by ID. Returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	const q = `
	SELECT id, name, hashed_password, created_at, updated_at
	FROM users
	WHERE id = $1;
	`
	if err := s.db.Get(&u, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by id")
		return nil, err
	}
	return &u, nil
}

// UpdateUserName renames a user and bumps updated_at. Returns an error
// if no rows were affected (user ID does not exist).
func (s *pgStore) UpdateUserName(id int, name string) error {
	const q = `
	UPDATE users
	SET name = $2,
	updated_at = now()
	WHERE id = $1;
	`
	res, err := s.db.Exec(q, id, name)
	if err != nil {
		log.Error().Err(err).Msg("failed to update user name")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no such user")
	}
	return nil
}

// ListUsers returns all registered users in creation order.
func (s *pgStore) ListUsers() ([]model.User, error) {
	var users []model.User
	const q = `
	SELECT id, name, hashed_password, created_at, updated_at
	FROM users
	ORDER BY id;
	`
	if err := s.db.Select(&users, q); err != nil {
		log.Error().Err(err).Msg("failed to list users")
		return nil, err
	}
	return users, nil
}
