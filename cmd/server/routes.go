package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nur-collective/siyam/internal/config"
	"github.com/nur-collective/siyam/internal/db"
	"github.com/nur-collective/siyam/internal/http/api"
	authapi "github.com/nur-collective/siyam/internal/http/api/tracker/auth/endpoints"
	trackerapi "github.com/nur-collective/siyam/internal/http/api/tracker/endpoints"
	"github.com/nur-collective/siyam/internal/model"
	"github.com/nur-collective/siyam/internal/realtime"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, store db.Store, schedule []model.ScheduleEntry, hub *realtime.Hub, feed *realtime.Feed) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/tracker",
		Auth:   false,
	},
		authapi.AuthPublicModule(cfg.JWTSecret, store, cfg.Tracker, feed),
		// timetable and countdown are public knowledge
		trackerapi.ScheduleModule(cfg.Tracker, schedule),
		trackerapi.VerseModule(),
		// websocket feed authenticates inside the handler
		trackerapi.LiveModule(cfg.JWTSecret, hub),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/tracker",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
		Store:     store,
	},
		authapi.AuthSessionModule(cfg.JWTSecret, store, cfg.Tracker, feed),
		trackerapi.RecordModule(store, cfg.Tracker, feed),
		trackerapi.GroupModule(store, cfg.Tracker),
	)
}
