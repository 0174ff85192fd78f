package db

import (
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nur-collective/siyam/internal/model"
)

// memStore is an in-memory Store used by handler tests, standing in
// for the Postgres store the way TEST_DATABASE_URL seams do elsewhere.
type memStore struct {
	mu     sync.RWMutex
	nextID int
	users  map[int]model.User
	// records[userID][day-1]
	records map[int][]model.DayRecord
}

var _ Store = (*memStore)(nil)

func NewMemStore() Store {
	return &memStore{
		nextID:  1,
		users:   make(map[int]model.User),
		records: make(map[int][]model.DayRecord),
	}
}

func (m *memStore) CreateUser(name, hashedPassword string, records []model.DayRecord) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	now := time.Now()
	m.users[id] = model.User{
		ID:             id,
		Name:           name,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	owned := make([]model.DayRecord, len(records))
	copy(owned, records)
	for i := range owned {
		owned[i].UserID = id
	}
	m.records[id] = owned
	return id, nil
}

func (m *memStore) GetUserByName(name string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Name, name) {
			found := u
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) GetUserByID(id int) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (m *memStore) UpdateUserName(id int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return errors.New("no such user")
	}
	u.Name = name
	u.UpdatedAt = time.Now()
	m.users[id] = u
	return nil
}

func (m *memStore) ListUsers() ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memStore) GetRecords(userID int) ([]model.DayRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	owned, ok := m.records[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	records := make([]model.DayRecord, len(owned))
	copy(records, owned)
	return records, nil
}

func (m *memStore) UpdateRecord(userID int, record model.DayRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	owned, ok := m.records[userID]
	if !ok {
		return errors.New("no such record")
	}
	for i := range owned {
		if owned[i].Day == record.Day {
			record.UserID = userID
			record.DateLabel = owned[i].DateLabel
			record.UpdatedAt = time.Now()
			owned[i] = record
			return nil
		}
	}
	return errors.New("no such record")
}

func (m *memStore) ListProfiles() ([]model.Profile, error) {
	users, err := m.ListUsers()
	if err != nil {
		return nil, err
	}
	profiles := make([]model.Profile, 0, len(users))
	for _, u := range users {
		records, _ := m.GetRecords(u.ID)
		profiles = append(profiles, model.Profile{User: u, Records: records})
	}
	return profiles, nil
}
