package packets

import (
	"github.com/nur-collective/siyam/internal/model"
	"github.com/nur-collective/siyam/internal/ramadan"
)

type RecordsResponse struct {
	CurrentDay int               `json:"currentDay"`
	Records    []model.DayRecord `json:"records"`
	Stats      ramadan.Stats     `json:"stats"`
}

type UpdateRecordResponse struct {
	Record model.DayRecord `json:"record"`
	Stats  ramadan.Stats   `json:"stats"`
}

type LeaderboardRow struct {
	Rank  int           `json:"rank"`
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Stats ramadan.Stats `json:"stats"`
	IsYou bool          `json:"isYou"`
}

type GroupResponse struct {
	CurrentDay int              `json:"currentDay"`
	Members    []LeaderboardRow `json:"members"`
}

type MemberReportResponse struct {
	ID      int               `json:"id"`
	Name    string            `json:"name"`
	Records []model.DayRecord `json:"records"`
	Stats   ramadan.Stats     `json:"stats"`
}

type ScheduleRow struct {
	Day    int    `json:"day"`
	Date   string `json:"date"`
	Seheri string `json:"seheri"`
	Iftar  string `json:"iftar"`
}

type ScheduleResponse struct {
	OffsetMinutes int           `json:"offsetMinutes"`
	Rows          []ScheduleRow `json:"schedule"`
}

// CountdownResponse with Available=false means the observance period
// has elapsed; every other field is then zero.
type CountdownResponse struct {
	Available     bool   `json:"available"`
	Label         string `json:"label,omitempty"`
	Hours         int    `json:"hours"`
	Minutes       int    `json:"minutes"`
	Seconds       int    `json:"seconds"`
	Target        string `json:"target,omitempty"`
	Seheri        string `json:"seheri,omitempty"`
	Iftar         string `json:"iftar,omitempty"`
	Day           int    `json:"day,omitempty"`
	OffsetMinutes int    `json:"offsetMinutes"`
}
