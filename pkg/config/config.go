package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/ramadanuz/taqvo/pkg/dateutil"
)

// Config is built once at startup and passed by reference into every
// component. No component reads ambient environment state directly.
// Missing or invalid required configuration is fatal at boot, not at
// first use.
type Config struct {
	PostgresAddress  string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	APIAddress string
	JWTSecret  string

	BotToken    string
	WebhookPath string

	RamadanStart dateutil.DateKey
	TimezoneName string
	Location     *time.Location

	// TimetableShiftDays corrects for source-data lag in the upstream
	// prayer-times timetable.
	TimetableShiftDays int
	PrayerCity         string
	PrayerCountry      string

	FajrCron    string
	MaghribCron string
	MissedCron  string
}

func Load() (*Config, error) {
	_ = godotenv.Load("./configs/.env")

	cfg := &Config{
		PostgresAddress:  os.Getenv("POSTGRES_DB_ADDRESS"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		APIAddress:       getDefault("API_ADDRESS", ":8080"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		BotToken:         os.Getenv("BOT_TOKEN"),
		WebhookPath:      getDefault("WEBHOOK_PATH", "/telegram/webhook"),
		TimezoneName:     getDefault("APP_TIMEZONE", "Asia/Tashkent"),
		PrayerCity:       getDefault("PRAYER_CITY", "Tashkent"),
		PrayerCountry:    getDefault("PRAYER_COUNTRY", "Uzbekistan"),
		FajrCron:         getDefault("FAJR_CRON", "45 4 * * *"),
		MaghribCron:      getDefault("MAGHRIB_CRON", "30 18 * * *"),
		MissedCron:       getDefault("MISSED_CHECK_CRON", "5 0 * * *"),
	}

	for key, value := range map[string]string{
		"POSTGRES_DB_ADDRESS": cfg.PostgresAddress,
		"POSTGRES_USER":       cfg.PostgresUser,
		"POSTGRES_PASSWORD":   cfg.PostgresPassword,
		"POSTGRES_DB":         cfg.PostgresDB,
		"JWT_SECRET":          cfg.JWTSecret,
		"BOT_TOKEN":           cfg.BotToken,
		"RAMADAN_START":       os.Getenv("RAMADAN_START"),
	} {
		if value == "" {
			return nil, errors.New("environment variable is required: " + key)
		}
	}

	start, err := dateutil.ParseDateKey(os.Getenv("RAMADAN_START"))
	if err != nil {
		return nil, errors.New("invalid RAMADAN_START: " + err.Error())
	}
	cfg.RamadanStart = start

	loc, err := dateutil.LoadZone(cfg.TimezoneName)
	if err != nil {
		return nil, errors.New("invalid APP_TIMEZONE: " + err.Error())
	}
	cfg.Location = loc

	if shiftText := os.Getenv("RAMADAN_TIMETABLE_SHIFT_DAYS"); shiftText != "" {
		shift, err := strconv.Atoi(shiftText)
		if err != nil {
			return nil, errors.New("invalid RAMADAN_TIMETABLE_SHIFT_DAYS: " + err.Error())
		}
		cfg.TimetableShiftDays = shift
	}

	for name, spec := range map[string]string{
		"FAJR_CRON":         cfg.FajrCron,
		"MAGHRIB_CRON":      cfg.MaghribCron,
		"MISSED_CHECK_CRON": cfg.MissedCron,
	} {
		if _, err := cron.ParseStandard(spec); err != nil {
			return nil, errors.New("invalid " + name + " schedule: " + err.Error())
		}
	}

	return cfg, nil
}

func getDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
