package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/internal/service"
	"github.com/ramadanuz/taqvo/pkg/entity"
	"github.com/ramadanuz/taqvo/pkg/httputil"
)

type RegisterRequest struct {
	Name       string `json:"name"`
	Password   string `json:"password"`
	TelegramID int64  `json:"telegram_id"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type TodayResponse struct {
	Date          string            `json:"date"`
	DayNumber     int               `json:"day_number"`
	IsActive      bool              `json:"is_active"`
	FastingStatus string            `json:"fasting_status"`
	Prayers       map[string]bool   `json:"prayers"`
	IsClosed      bool              `json:"is_closed"`
	Timings       map[string]string `json:"timings"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.webUserService.Register(ctx, &service.RegisterRequest{
		Name:       req.Name,
		Password:   req.Password,
		TelegramID: req.TelegramID,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWebUserExists):
			logger.Error("registering error: existed account")
			httputil.WriteErrorResponse(w, http.StatusConflict, "account with such name already exists", nil)
			return
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("registering error: unknown telegram user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "start the bot first, then link the account", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.webUserService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWebUserNotFound):
			logger.Error("login error: unexist account")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "account with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// botUser resolves the authorized dashboard account to its linked bot user.
func (s *Server) botUser(ctx context.Context, r *http.Request) (*entity.User, error) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		return nil, errorvalues.ErrInvalidToken
	}
	account, err := s.webUserService.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.userService.GetByTelegramID(ctx, account.TelegramID)
}

func (s *Server) GetToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	user, err := s.botUser(ctx, r)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			logger.Error("get today error: unauthorized")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		logger.Error("get today error: resolving bot user", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "linked bot user not found", nil)
		return
	}

	today := s.clock.Today()
	state := s.ramadanService.TodayState()
	resp := TodayResponse{
		Date:          string(today),
		DayNumber:     state.DayNumber,
		IsActive:      state.IsActive,
		FastingStatus: string(entity.StatusPending),
	}

	day, err := s.ramadanService.EnsureDay(ctx, user.ID, today)
	if err != nil {
		logger.Error("get today error: provisioning day", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while loading today", nil)
		return
	}
	if day != nil {
		resp.FastingStatus = string(day.Status)
	}

	plog, err := s.prayerService.TodayLog(ctx, user.ID)
	if err != nil {
		logger.Error("get today error: loading prayer log", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while loading today", nil)
		return
	}
	resp.IsClosed = plog.IsClosed
	resp.Prayers = make(map[string]bool, len(entity.PrayerKeys))
	for _, key := range entity.PrayerKeys {
		resp.Prayers[key] = plog.Done(key)
	}

	timings := s.timings.FetchTimings(ctx, today)
	resp.Timings = make(map[string]string, len(entity.PrayerKeys))
	for _, key := range entity.PrayerKeys {
		resp.Timings[key] = timings.ForPrayer(key)
	}

	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("today provided")
}

func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	user, err := s.botUser(ctx, r)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			logger.Error("get calendar error: unauthorized")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		logger.Error("get calendar error: resolving bot user", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "linked bot user not found", nil)
		return
	}
	view, err := s.ramadanService.Calendar(ctx, user.ID)
	if err != nil {
		logger.Error("getting calendar error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting calendar", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("calendar provided")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	user, err := s.botUser(ctx, r)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			logger.Error("get stats error: unauthorized")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		logger.Error("get stats error: resolving bot user", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "linked bot user not found", nil)
		return
	}
	stats, err := s.ramadanService.Stats(ctx, user.ID)
	if err != nil {
		logger.Error("getting stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}
