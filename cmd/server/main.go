package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/nur-collective/siyam/internal/announce"
	"github.com/nur-collective/siyam/internal/config"
	"github.com/nur-collective/siyam/internal/db"
	"github.com/nur-collective/siyam/internal/ramadan"
	"github.com/nur-collective/siyam/internal/realtime"
	"github.com/nur-collective/siyam/internal/reminder"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// initialize PostgreSQL
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(db.DB)

	// the reference timetable is generated once and never mutated
	schedule := ramadan.GenerateSchedule(cfg.Tracker)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub()
	go hub.Run(ctx)

	var bus *realtime.Bus
	if cfg.RedisAddress != "" {
		bus = realtime.NewBus(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
		go bus.Forward(ctx, hub)
		log.Info().Str("address", cfg.RedisAddress).Msg("realtime feed bridged over redis")
	}
	feed := realtime.NewFeed(hub, bus)

	var announcer *announce.Announcer
	if cfg.MQTTBrokerURL != "" {
		announcer, err = announce.NewAnnouncer(cfg.MQTTBrokerURL, "siyam-server")
		if err != nil {
			// announcements are an optional surface, keep serving without them
			log.Error().Err(err).Msg("failed to connect boundary announcer")
			announcer = nil
		} else {
			defer announcer.Close()
		}
	}

	watcher := reminder.NewWatcher(cfg.Tracker, schedule, feed, announcer)
	go watcher.Run(ctx)

	r := gin.Default()
	RegisterRoutes(r, cfg, store, schedule, hub, feed)

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: r}
	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
