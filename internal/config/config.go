package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds environment-based settings.
type Config struct {
	DatabaseURL    string
	MigrationsPath string
	JWTSecret      string
	ServerAddress  string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	// empty disables the MQTT boundary announcer
	MQTTBrokerURL string

	Tracker TrackerConfig
}

// TrackerConfig carries the Ramadan timetable constants. The drift and
// longitude factors are the source's documented approximations, kept
// configurable rather than replaced with a solar model.
type TrackerConfig struct {
	Location           *time.Location
	StartDate          time.Time
	SeheriAnchor       time.Time
	IftarAnchor        time.Time
	DriftPerDay        time.Duration
	ReferenceLongitude float64
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	jwt := os.Getenv("JWT_SECRET")
	if jwt == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = ":8080"
	}
	migrations := os.Getenv("MIGRATIONS_PATH")
	if migrations == "" {
		migrations = "./migrations"
	}

	tracker, err := loadTracker()
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabaseURL:    dbURL,
		MigrationsPath: migrations,
		JWTSecret:      jwt,
		ServerAddress:  addr,
		RedisAddress:   os.Getenv("REDIS_ADDRESS"),
		RedisUsername:  os.Getenv("REDIS_USERNAME"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		MQTTBrokerURL:  os.Getenv("MQTT_BROKER_URL"),
		Tracker:        tracker,
	}, nil
}

func loadTracker() (TrackerConfig, error) {
	loc, err := time.LoadLocation(getenv("TRACKER_TIMEZONE", "Asia/Dhaka"))
	if err != nil {
		return TrackerConfig{}, fmt.Errorf("invalid TRACKER_TIMEZONE: %w", err)
	}

	start, err := time.ParseInLocation("2006-01-02", getenv("RAMADAN_START", "2026-02-19"), loc)
	if err != nil {
		return TrackerConfig{}, fmt.Errorf("invalid RAMADAN_START: %w", err)
	}

	seheri, err := anchor(start, getenv("SEHERI_ANCHOR", "05:14"), loc)
	if err != nil {
		return TrackerConfig{}, fmt.Errorf("invalid SEHERI_ANCHOR: %w", err)
	}
	iftar, err := anchor(start, getenv("IFTAR_ANCHOR", "17:56"), loc)
	if err != nil {
		return TrackerConfig{}, fmt.Errorf("invalid IFTAR_ANCHOR: %w", err)
	}

	driftSeconds, err := strconv.Atoi(getenv("DRIFT_SECONDS_PER_DAY", "45"))
	if err != nil {
		return TrackerConfig{}, fmt.Errorf("invalid DRIFT_SECONDS_PER_DAY: %w", err)
	}

	refLng, err := strconv.ParseFloat(getenv("REFERENCE_LONGITUDE", "91.78"), 64)
	if err != nil {
		return TrackerConfig{}, fmt.Errorf("invalid REFERENCE_LONGITUDE: %w", err)
	}

	return TrackerConfig{
		Location:           loc,
		StartDate:          start,
		SeheriAnchor:       seheri,
		IftarAnchor:        iftar,
		DriftPerDay:        time.Duration(driftSeconds) * time.Second,
		ReferenceLongitude: refLng,
	}, nil
}

// anchor places an HH:MM clock time on the start date; only the
// time-of-day is meaningful downstream.
func anchor(start time.Time, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", clock, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(start.Year(), start.Month(), start.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
