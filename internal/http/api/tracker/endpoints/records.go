package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nur-collective/siyam/internal/config"
	"github.com/nur-collective/siyam/internal/db"
	"github.com/nur-collective/siyam/internal/http/api"
	"github.com/nur-collective/siyam/internal/http/api/tracker/packets"
	"github.com/nur-collective/siyam/internal/model"
	"github.com/nur-collective/siyam/internal/ramadan"
	"github.com/nur-collective/siyam/internal/realtime"
)

type RecordController struct {
	store   db.Store
	tracker config.TrackerConfig
	feed    *realtime.Feed
}

func NewRecordController(store db.Store, tracker config.TrackerConfig, feed *realtime.Feed) *RecordController {
	return &RecordController{store: store, tracker: tracker, feed: feed}
}

func RecordModule(store db.Store, tracker config.TrackerConfig, feed *realtime.Feed) api.Module {
	ctl := NewRecordController(store, tracker, feed)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/records", ctl.getMyRecords)
		c.PUT("/records/:day", ctl.updateRecord)
	})
}

func (r *RecordController) currentDay() int {
	now := time.Now().In(r.tracker.Location)
	return ramadan.CurrentDay(now, r.tracker.StartDate)
}

// GET /api/tracker/records
func (r *RecordController) getMyRecords(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	records, err := r.store.GetRecords(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load records"}
	}

	day := r.currentDay()
	return packets.RecordsResponse{
		CurrentDay: day,
		Records:    records,
		Stats:      ramadan.ComputeStats(records, day),
	}, nil
}

// PUT /api/tracker/records/:day
//
// Write-through: the store update is synchronous, the realtime publish
// that follows is best-effort and never rolls the write back.
func (r *RecordController) updateRecord(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil || day < 1 || day > ramadan.Days {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "day must be between 1 and 30"}
	}

	var request packets.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	record := model.DayRecord{
		UserID:     user.ID,
		Day:        day,
		Fasting:    request.Fasting,
		Salah:      request.Salah,
		QuranPages: request.QuranPages,
	}
	if err := r.store.UpdateRecord(user.ID, record); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update record"}
	}

	records, err := r.store.GetRecords(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load records"}
	}
	stats := ramadan.ComputeStats(records, r.currentDay())

	r.feed.Publish(realtime.Event{
		Type:   realtime.EventRecordUpdated,
		UserID: user.ID,
		Name:   user.Name,
		Day:    day,
		Stats:  &stats,
	})

	var updated model.DayRecord
	for _, rec := range records {
		if rec.Day == day {
			updated = rec
			break
		}
	}
	return packets.UpdateRecordResponse{Record: updated, Stats: stats}, nil
}
