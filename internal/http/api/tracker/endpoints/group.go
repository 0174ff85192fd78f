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
)

type GroupController struct {
	store   db.Store
	tracker config.TrackerConfig
}

func NewGroupController(store db.Store, tracker config.TrackerConfig) *GroupController {
	return &GroupController{store: store, tracker: tracker}
}

func GroupModule(store db.Store, tracker config.TrackerConfig) api.Module {
	ctl := NewGroupController(store, tracker)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/group", ctl.getLeaderboard)
		c.GET("/group/:id/records", ctl.getMemberReport)
	})
}

// GET /api/tracker/group
//
// The accountability wall: everyone ranked by overall progress. Always
// recomputed from a fresh snapshot; ties keep registration order.
func (g *GroupController) getLeaderboard(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	profiles, err := g.store.ListProfiles()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load group"}
	}

	day := ramadan.CurrentDay(time.Now().In(g.tracker.Location), g.tracker.StartDate)
	ranked := ramadan.Rank(profiles, day)

	members := make([]packets.LeaderboardRow, 0, len(ranked))
	for i, rp := range ranked {
		members = append(members, packets.LeaderboardRow{
			Rank:  i + 1,
			ID:    rp.Profile.User.ID,
			Name:  rp.Profile.User.Name,
			Stats: rp.Stats,
			IsYou: rp.Profile.User.ID == user.ID,
		})
	}
	return packets.GroupResponse{CurrentDay: day, Members: members}, nil
}

// GET /api/tracker/group/:id/records
//
// Read-only detail view of another member's report. Members can only
// edit their own records, so there is no write counterpart here.
func (g *GroupController) getMemberReport(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	member, err := g.store.GetUserByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "member not found"}
	}

	records, err := g.store.GetRecords(member.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load records"}
	}

	day := ramadan.CurrentDay(time.Now().In(g.tracker.Location), g.tracker.StartDate)
	return packets.MemberReportResponse{
		ID:      member.ID,
		Name:    member.Name,
		Records: records,
		Stats:   ramadan.ComputeStats(records, day),
	}, nil
}
