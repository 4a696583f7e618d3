package telegram

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/ramadanuz/taqvo/internal/error_values"
	"github.com/ramadanuz/taqvo/internal/prayertimes"
	"github.com/ramadanuz/taqvo/internal/repository"
	"github.com/ramadanuz/taqvo/internal/service"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

const handlerTimeout = 15 * time.Second

// Handler receives webhook updates and routes them into the services. It is
// glue only: every permission decision lives in the service layer.
type Handler struct {
	bot     *Bot
	users   service.UserServiceI
	prayers service.PrayerServiceI
	ramadan service.RamadanServiceI
	timings prayertimes.ProviderI
	clock   *dateutil.Clock
	logger  *slog.Logger
}

func NewHandler(bot *Bot, users service.UserServiceI, prayers service.PrayerServiceI, ramadanService service.RamadanServiceI, timings prayertimes.ProviderI, clock *dateutil.Clock) *Handler {
	return &Handler{
		bot:     bot,
		users:   users,
		prayers: prayers,
		ramadan: ramadanService,
		timings: timings,
		clock:   clock,
		logger:  slog.Default().With(slog.String("component", "telegram")),
	}
}

// ServeHTTP always answers 200: Telegram retries on anything else and the
// retry storm is worse than a dropped update.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var update Update
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Error("decoding update error", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	switch {
	case update.Message != nil && update.Message.From != nil:
		h.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil && update.CallbackQuery.From != nil:
		h.handleCallback(ctx, update.CallbackQuery)
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) upsertUser(ctx context.Context, account *Account) (*entity.User, error) {
	return h.users.UpsertTelegram(ctx, &repository.TelegramIdentity{
		TelegramID: account.ID,
		Username:   account.Username,
	})
}

func (h *Handler) handleMessage(ctx context.Context, msg *Message) {
	user, err := h.upsertUser(ctx, msg.From)
	if err != nil {
		h.logger.Error("upserting user error", slog.String("error", err.Error()))
		return
	}
	chatID := msg.Chat.ID

	command := strings.TrimSpace(msg.Text)
	if idx := strings.Index(command, " "); idx > 0 {
		command = command[:idx]
	}
	switch command {
	case "/start":
		err = h.bot.SendMessage(ctx, chatID, "Assalomu alaykum! Ramazon kunlarini shu yerda belgilab boring.", StartKeyboard())
	case "/namoz":
		err = h.sendPrayerView(ctx, user, chatID)
	case "/ruza":
		err = h.sendFastingView(ctx, user, chatID)
	case "/taqvim":
		err = h.sendCalendarView(ctx, user, chatID)
	case "/stats":
		err = h.sendStatsView(ctx, user, chatID)
	default:
		err = h.bot.SendMessage(ctx, chatID, "Buyruqlar: /namoz, /ruza, /taqvim, /stats", nil)
	}
	if err != nil {
		h.logger.Error("sending reply error", slog.Int64("telegram_id", user.TelegramID), slog.String("error", err.Error()))
	}
}

func (h *Handler) sendPrayerView(ctx context.Context, user *entity.User, chatID int64) error {
	plog, err := h.prayers.TodayLog(ctx, user.ID)
	if err != nil {
		return err
	}
	text, keyboard := h.prayerView(ctx, plog, PrayerViewOpts{})
	return h.bot.SendMessage(ctx, chatID, text, keyboard)
}

func (h *Handler) prayerView(ctx context.Context, plog *entity.PrayerLog, opts PrayerViewOpts) (string, *InlineKeyboardMarkup) {
	timings := h.timings.FetchTimings(ctx, plog.Date)
	text := BuildPrayerText(plog, timings, h.clock.NowMinutes(), opts)
	if plog.IsClosed {
		return text, nil
	}
	return text, PrayerKeyboard(plog.Date, PrayerKeyboardOpts{
		ToggleConfirmPrayer: opts.ToggleConfirmPrayer,
		ShowCloseActions:    plog.AllCompleted(),
	})
}

func (h *Handler) sendFastingView(ctx context.Context, user *entity.User, chatID int64) error {
	state := h.ramadan.TodayState()
	day, err := h.ramadan.EnsureDay(ctx, user.ID, h.clock.Today())
	if err != nil {
		return err
	}
	timings := h.timings.FetchTimings(ctx, h.clock.Today())
	text := BuildFastingText(day, state, timings)
	var keyboard *InlineKeyboardMarkup
	if day != nil && day.Status == entity.StatusPending {
		keyboard = FastingResultKeyboard(h.clock.Today())
	}
	return h.bot.SendMessage(ctx, chatID, text, keyboard)
}

func (h *Handler) sendCalendarView(ctx context.Context, user *entity.User, chatID int64) error {
	view, err := h.ramadan.Calendar(ctx, user.ID)
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, chatID, BuildCalendarText(h.ramadan.TodayState()), CalendarKeyboard(view))
}

func (h *Handler) sendStatsView(ctx context.Context, user *entity.User, chatID int64) error {
	stats, err := h.ramadan.Stats(ctx, user.ID)
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, chatID, BuildStatsText(stats), nil)
}

func (h *Handler) handleCallback(ctx context.Context, cb *CallbackQuery) {
	user, err := h.upsertUser(ctx, cb.From)
	if err != nil {
		h.logger.Error("upserting user error", slog.String("error", err.Error()))
		return
	}

	parts := strings.Split(cb.Data, ":")
	switch {
	case len(parts) >= 4 && parts[0] == "prayer" && parts[1] == "set":
		h.handlePrayerCallback(ctx, user, cb, parts[2:])
	case len(parts) == 4 && parts[0] == "fast" && parts[1] == "intent":
		h.handleFastingIntent(ctx, user, cb, dateutil.DateKey(parts[2]), parts[3])
	case len(parts) == 4 && parts[0] == "fast" && parts[1] == "result":
		h.handleFastingResult(ctx, user, cb, dateutil.DateKey(parts[2]), parts[3])
	case parts[0] == "menu":
		h.handleMenu(ctx, user, cb, parts)
	case cb.Data == "locked" || strings.HasPrefix(cb.Data, "calendar:"):
		h.answer(ctx, cb, "", false)
	default:
		h.answer(ctx, cb, "Noma’lum amal", false)
	}
}

func (h *Handler) handleMenu(ctx context.Context, user *entity.User, cb *CallbackQuery, parts []string) {
	if cb.Message == nil || len(parts) != 2 {
		h.answer(ctx, cb, "", false)
		return
	}
	chatID := cb.Message.Chat.ID
	var err error
	switch parts[1] {
	case "prayer":
		err = h.sendPrayerView(ctx, user, chatID)
	case "fasting":
		err = h.sendFastingView(ctx, user, chatID)
	case "calendar":
		err = h.sendCalendarView(ctx, user, chatID)
	case "stats":
		err = h.sendStatsView(ctx, user, chatID)
	}
	if err != nil {
		h.logger.Error("menu reply error", slog.String("error", err.Error()))
	}
	h.answer(ctx, cb, "", false)
}

// handlePrayerCallback covers mark, unmark confirmation and close-day flows.
// parts is [date, action, args...].
func (h *Handler) handlePrayerCallback(ctx context.Context, user *entity.User, cb *CallbackQuery, parts []string) {
	date := dateutil.DateKey(parts[0])
	action := parts[1]

	switch action {
	case "mark":
		if len(parts) != 3 {
			h.answer(ctx, cb, "Noma’lum amal", false)
			return
		}
		key := parts[2]
		plog, err := h.prayers.MarkPrayer(ctx, user.ID, date, key)
		if err != nil {
			if errors.Is(err, errorvalues.ErrAlreadyMarked) {
				// Ask the toggle-back confirmation instead of rejecting.
				current, logErr := h.prayers.TodayLog(ctx, user.ID)
				if logErr == nil {
					h.answer(ctx, cb, "Tasdiqlash kerak", false)
					h.editWithView(ctx, cb, current, PrayerViewOpts{ToggleConfirmPrayer: key})
					return
				}
			}
			h.reject(ctx, cb, err)
			return
		}
		h.answer(ctx, cb, "Belgilandi ✅", false)
		h.editWithView(ctx, cb, plog, PrayerViewOpts{})
	case "toggle":
		if len(parts) != 4 {
			h.answer(ctx, cb, "Noma’lum amal", false)
			return
		}
		key, decision := parts[2], parts[3]
		if decision != "yes" {
			h.answer(ctx, cb, "Bekor qilindi", false)
			if plog, err := h.prayers.TodayLog(ctx, user.ID); err == nil {
				h.editWithView(ctx, cb, plog, PrayerViewOpts{})
			}
			return
		}
		plog, err := h.prayers.UnmarkPrayer(ctx, user.ID, date, key)
		if err != nil {
			h.reject(ctx, cb, err)
			return
		}
		h.answer(ctx, cb, "Belgi qaytarildi", false)
		h.editWithView(ctx, cb, plog, PrayerViewOpts{})
	case "close":
		if len(parts) != 3 {
			h.answer(ctx, cb, "Noma’lum amal", false)
			return
		}
		if parts[2] != "yes" {
			h.answer(ctx, cb, "Kun ochiq qoldi.", false)
			return
		}
		plog, err := h.prayers.CloseDay(ctx, user.ID, date)
		if err != nil {
			h.reject(ctx, cb, err)
			return
		}
		h.answer(ctx, cb, "✅ Kun yopildi.", false)
		h.editWithView(ctx, cb, plog, PrayerViewOpts{})
	default:
		h.answer(ctx, cb, "Noma’lum amal", false)
	}
}

func (h *Handler) handleFastingIntent(ctx context.Context, user *entity.User, cb *CallbackQuery, date dateutil.DateKey, answer string) {
	if !service.CanEditDate(date, h.clock.Today(), h.ramadan.TodayState()) {
		h.answer(ctx, cb, "Oldingi yoki kelgusi kunni tahrirlab bo‘lmaydi.", true)
		return
	}
	if _, err := h.ramadan.EnsureDay(ctx, user.ID, date); err != nil {
		h.reject(ctx, cb, err)
		return
	}
	text := "Qabul qilindi.\nBugun niyat qilinmadi deb belgilandi."
	if answer == "yes" {
		text = "Qabul qilindi ✅\nNiyat qilganingiz uchun rahmat."
	}
	h.answer(ctx, cb, "Javob qabul qilindi", false)
	h.edit(ctx, cb, text, nil)
}

func (h *Handler) handleFastingResult(ctx context.Context, user *entity.User, cb *CallbackQuery, date dateutil.DateKey, answer string) {
	if !service.CanEditDate(date, h.clock.Today(), h.ramadan.TodayState()) {
		h.answer(ctx, cb, "Faqat bugungi kunni tahrirlash mumkin.", true)
		return
	}
	status := entity.StatusMissed
	if answer == "yes" {
		status = entity.StatusCompleted
	}
	day, err := h.ramadan.UpdateTodayStatus(ctx, user.ID, status)
	if err != nil {
		h.reject(ctx, cb, err)
		return
	}
	text := "Qabul qilindi. Bugungi ro‘za: ❌ Qoldirildi"
	if day.Status == entity.StatusCompleted {
		text = "Ajoyib! Bugungi ro‘za: ✅ Tutildi"
	}
	h.answer(ctx, cb, "Holat yangilandi", false)
	h.edit(ctx, cb, text, nil)
}

// rejectionText maps policy sentinels to user-facing messages. Anything else
// is a system fault and gets a generic reply.
func rejectionText(err error) (string, bool) {
	switch {
	case errors.Is(err, errorvalues.ErrPrayerTimeNotReached):
		return "Hali namoz vaqti kelmadi.", true
	case errors.Is(err, errorvalues.ErrOutsideFastWindow):
		return "Ro‘zani faqat saharlikdan iftorgacha tasdiqlash mumkin.", true
	case errors.Is(err, errorvalues.ErrDayClosed):
		return "Bugungi kun yakunlangan. Tahrirlab bo‘lmaydi.", true
	case errors.Is(err, errorvalues.ErrDayNotComplete):
		return "Avval 5 ta namozni yakunlang.", true
	case errors.Is(err, errorvalues.ErrNotToday):
		return "Faqat bugungi kunni tahrirlash mumkin.", true
	case errors.Is(err, errorvalues.ErrRamadanInactive):
		return "Ramazon faol emas.", true
	case errors.Is(err, errorvalues.ErrStatusFinal):
		return "Bugungi holat allaqachon belgilangan.", true
	case errors.Is(err, errorvalues.ErrInvalidPrayerKey):
		return "Noto‘g‘ri namoz turi.", false
	case errors.Is(err, errorvalues.ErrNotMarked):
		return "Bu namoz hali belgilanmagan.", false
	}
	return "Xatolik yuz berdi. Keyinroq urinib ko‘ring.", false
}

func (h *Handler) reject(ctx context.Context, cb *CallbackQuery, err error) {
	text, alert := rejectionText(err)
	if !alert {
		h.logger.Error("callback error", slog.String("data", cb.Data), slog.String("error", err.Error()))
	}
	h.answer(ctx, cb, text, alert)
}

func (h *Handler) answer(ctx context.Context, cb *CallbackQuery, text string, showAlert bool) {
	if err := h.bot.AnswerCallbackQuery(ctx, cb.ID, text, showAlert); err != nil {
		h.logger.Error("answering callback error", slog.String("error", err.Error()))
	}
}

func (h *Handler) edit(ctx context.Context, cb *CallbackQuery, text string, keyboard *InlineKeyboardMarkup) {
	if cb.Message == nil {
		return
	}
	if err := h.bot.EditMessageText(ctx, cb.Message.Chat.ID, cb.Message.MessageID, text, keyboard); err != nil {
		h.logger.Error("editing message error", slog.String("error", err.Error()))
	}
}

func (h *Handler) editWithView(ctx context.Context, cb *CallbackQuery, plog *entity.PrayerLog, opts PrayerViewOpts) {
	text, keyboard := h.prayerView(ctx, plog, opts)
	h.edit(ctx, cb, text, keyboard)
}
