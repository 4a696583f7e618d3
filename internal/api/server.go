package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramadanuz/taqvo/internal/prayertimes"
	"github.com/ramadanuz/taqvo/internal/service"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
)

// Server is the dashboard REST surface plus the telegram webhook mount.
type Server struct {
	mx             *chi.Mux
	webUserService service.WebUserServiceI
	userService    service.UserServiceI
	ramadanService service.RamadanServiceI
	prayerService  service.PrayerServiceI
	jwtService     JWTServiceI
	timings        prayertimes.ProviderI
	clock          *dateutil.Clock
	webhookPath    string
	webhook        http.Handler
}

type ServicesList struct {
	WebUserService service.WebUserServiceI
	UserService    service.UserServiceI
	RamadanService service.RamadanServiceI
	PrayerService  service.PrayerServiceI
	JwtService     JWTServiceI
	Timings        prayertimes.ProviderI
	Clock          *dateutil.Clock
	WebhookPath    string
	Webhook        http.Handler
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:             chi.NewMux(),
		webUserService: servicesOptions.WebUserService,
		userService:    servicesOptions.UserService,
		ramadanService: servicesOptions.RamadanService,
		prayerService:  servicesOptions.PrayerService,
		jwtService:     servicesOptions.JwtService,
		timings:        servicesOptions.Timings,
		clock:          servicesOptions.Clock,
		webhookPath:    servicesOptions.WebhookPath,
		webhook:        servicesOptions.Webhook,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	if s.webhook != nil {
		s.mx.Method(http.MethodPost, s.webhookPath, s.webhook)
	}

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/today", s.GetToday)
			r.Get("/calendar", s.GetCalendar)
			r.Get("/stats", s.GetStats)
		})
	})

	return http.ListenAndServe(address, s.mx)
}
