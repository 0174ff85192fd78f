package endpoints

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nur-collective/siyam/internal/config"
	"github.com/nur-collective/siyam/internal/http/api"
	"github.com/nur-collective/siyam/internal/http/api/tracker/packets"
	"github.com/nur-collective/siyam/internal/model"
	"github.com/nur-collective/siyam/internal/ramadan"
)

type ScheduleController struct {
	tracker  config.TrackerConfig
	schedule []model.ScheduleEntry
}

func NewScheduleController(tracker config.TrackerConfig, schedule []model.ScheduleEntry) *ScheduleController {
	return &ScheduleController{tracker: tracker, schedule: schedule}
}

// ScheduleModule mounts the public timetable and countdown endpoints.
// Both take an optional lng query parameter with the caller's
// longitude; without one the reference timings apply verbatim.
func ScheduleModule(tracker config.TrackerConfig, schedule []model.ScheduleEntry) api.Module {
	ctl := NewScheduleController(tracker, schedule)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/schedule", ctl.getSchedule)
		c.PUBLIC_GET("/schedule/countdown", ctl.getCountdown)
	})
}

// offsetFromQuery resolves the longitude query parameter to a minute
// offset. A missing or unparsable reading falls back to offset 0; a
// denied geolocation is an expected condition, not an error.
func (s *ScheduleController) offsetFromQuery(ctx *gin.Context) int {
	raw := ctx.Query("lng")
	if raw == "" {
		return 0
	}
	lng, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return ramadan.OffsetMinutes(lng, s.tracker.ReferenceLongitude)
}

// GET /api/tracker/schedule
func (s *ScheduleController) getSchedule(ctx *gin.Context) (any, *api.APIError) {
	offset := s.offsetFromQuery(ctx)

	rows := make([]packets.ScheduleRow, 0, len(s.schedule))
	for _, entry := range s.schedule {
		rows = append(rows, packets.ScheduleRow{
			Day:    entry.Day,
			Date:   entry.DateLabel,
			Seheri: entry.Seheri(offset),
			Iftar:  entry.Iftar(offset),
		})
	}
	return packets.ScheduleResponse{OffsetMinutes: offset, Rows: rows}, nil
}

// GET /api/tracker/schedule/countdown
//
// Pure function of now and the offset; clients poll it on a tick to
// animate the countdown. Available=false once the period has elapsed.
func (s *ScheduleController) getCountdown(ctx *gin.Context) (any, *api.APIError) {
	offset := s.offsetFromQuery(ctx)
	now := time.Now().In(s.tracker.Location)

	cd, ok := ramadan.ComputeCountdown(s.schedule, now, s.tracker.StartDate, offset)
	if !ok {
		return packets.CountdownResponse{Available: false, OffsetMinutes: offset}, nil
	}

	return packets.CountdownResponse{
		Available:     true,
		Label:         cd.Label,
		Hours:         cd.Hours,
		Minutes:       cd.Minutes,
		Seconds:       cd.Seconds,
		Target:        cd.Target.Format(time.RFC3339),
		Seheri:        cd.Seheri.Format("03:04 PM"),
		Iftar:         cd.Iftar.Format("03:04 PM"),
		Day:           ramadan.CurrentDay(now, s.tracker.StartDate),
		OffsetMinutes: offset,
	}, nil
}
