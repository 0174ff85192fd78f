// exposes a Store interface that is passed to API calls
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/nur-collective/siyam/internal/model"
)

type Store interface {
	// user functions
	CreateUser(name, hashedPassword string, records []model.DayRecord) (int, error)
	GetUserByName(name string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserName(id int, name string) error
	ListUsers() ([]model.User, error)

	// record functions
	GetRecords(userID int) ([]model.DayRecord, error)
	UpdateRecord(userID int, record model.DayRecord) error

	// ListProfiles returns every user with their full record set, the
	// snapshot the leaderboard ranks.
	ListProfiles() ([]model.Profile, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	return &pgStore{db: database}
}
