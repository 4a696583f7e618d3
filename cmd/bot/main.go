// @title Ramadan tracker API
// @description Dashboard API and telegram webhook for the Ramadan tracker bot "Taqvo"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/ramadanuz/taqvo/internal/api"
	"github.com/ramadanuz/taqvo/internal/prayertimes"
	"github.com/ramadanuz/taqvo/internal/repository"
	"github.com/ramadanuz/taqvo/internal/scheduler"
	"github.com/ramadanuz/taqvo/internal/service"
	"github.com/ramadanuz/taqvo/internal/telegram"
	"github.com/ramadanuz/taqvo/pkg/cleanup"
	"github.com/ramadanuz/taqvo/pkg/config"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	jwtservice "github.com/ramadanuz/taqvo/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: " + err.Error())
	}
	dbCfg := repository.PGCfg{
		Address:  cfg.PostgresAddress,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
	}

	clock := dateutil.NewClock(cfg.Location)
	timings := prayertimes.NewClient(prayertimes.ClientOpts{
		City:         cfg.PrayerCity,
		Country:      cfg.PrayerCountry,
		Timezone:     cfg.TimezoneName,
		ShiftDays:    cfg.TimetableShiftDays,
		RamadanStart: cfg.RamadanStart,
	})

	usersRepo := repository.NewUsersRepo(&dbCfg)
	userService := service.NewUserService(usersRepo)
	webUserService := service.NewWebUserService(repository.NewWebUsersRepo(&dbCfg), usersRepo)
	logsRepo := repository.NewPrayerLogsRepo(&dbCfg)
	ramadanService := service.NewRamadanService(repository.NewRamadanDaysRepo(&dbCfg), logsRepo, timings, clock, cfg.RamadanStart)
	prayerService := service.NewPrayerService(logsRepo, timings, clock, cfg.RamadanStart)

	bot := telegram.NewBot(cfg.BotToken)
	webhook := telegram.NewHandler(bot, userService, prayerService, ramadanService, timings, clock)

	jobs := scheduler.New(bot, userService, ramadanService, timings, clock, scheduler.CronSpecs{
		Fajr:    cfg.FajrCron,
		Maghrib: cfg.MaghribCron,
		Missed:  cfg.MissedCron,
	})
	cronRunner, err := jobs.Start()
	if err != nil {
		log.Fatal("Scheduler error: " + err.Error())
	}
	defer cronRunner.Stop()

	serv := api.New(&api.ServicesList{
		WebUserService: webUserService,
		UserService:    userService,
		RamadanService: ramadanService,
		PrayerService:  prayerService,
		JwtService:     jwtservice.New(cfg.JWTSecret),
		Timings:        timings,
		Clock:          clock,
		WebhookPath:    cfg.WebhookPath,
		Webhook:        webhook,
	})
	err = serv.Run(cfg.APIAddress)
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
