package model

import "time"

type User struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Profile is a user together with their full 30-day record set,
// the unit the scoring and ranking functions operate on.
type Profile struct {
	User    User
	Records []DayRecord
}
