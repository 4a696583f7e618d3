package telegram

import (
	"fmt"

	"github.com/ramadanuz/taqvo/internal/service"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

// prayerLabel is the display name shown on buttons and in views.
var prayerLabels = map[string]string{
	entity.PrayerFajr:    "Bomdod",
	entity.PrayerDhuhr:   "Peshin",
	entity.PrayerAsr:     "Asr",
	entity.PrayerMaghrib: "Shom",
	entity.PrayerIsha:    "Xufton",
}

func StartKeyboard() *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{InlineKeyboard: [][]InlineKeyboardButton{
		{
			{Text: "📿 Namozlar", CallbackData: "menu:prayer"},
			{Text: "🌙 Ro‘za", CallbackData: "menu:fasting"},
		},
		{
			{Text: "🗓 Taqvim", CallbackData: "menu:calendar"},
			{Text: "📊 Statistika", CallbackData: "menu:stats"},
		},
	}}
}

type PrayerKeyboardOpts struct {
	// ToggleConfirmPrayer carries the key awaiting an unmark confirmation.
	ToggleConfirmPrayer string
	ShowCloseActions    bool
}

func PrayerKeyboard(date dateutil.DateKey, opts PrayerKeyboardOpts) *InlineKeyboardMarkup {
	rows := make([][]InlineKeyboardButton, 0, 4)

	if opts.ToggleConfirmPrayer != "" {
		rows = append(rows, []InlineKeyboardButton{
			{Text: "Ha, qaytarish", CallbackData: fmt.Sprintf("prayer:set:%s:toggle:%s:yes", date, opts.ToggleConfirmPrayer)},
			{Text: "Yo‘q", CallbackData: fmt.Sprintf("prayer:set:%s:toggle:%s:no", date, opts.ToggleConfirmPrayer)},
		})
		return &InlineKeyboardMarkup{InlineKeyboard: rows}
	}

	row := make([]InlineKeyboardButton, 0, 3)
	for _, key := range entity.PrayerKeys {
		row = append(row, InlineKeyboardButton{
			Text:         prayerLabels[key],
			CallbackData: fmt.Sprintf("prayer:set:%s:mark:%s", date, key),
		})
		if len(row) == 3 {
			rows = append(rows, row)
			row = make([]InlineKeyboardButton, 0, 3)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if opts.ShowCloseActions {
		rows = append(rows, []InlineKeyboardButton{
			{Text: "🌙 Kunni yopish", CallbackData: fmt.Sprintf("prayer:set:%s:close:yes", date)},
			{Text: "Ochiq qoldirish", CallbackData: fmt.Sprintf("prayer:set:%s:close:no", date)},
		})
	}
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

func FastingIntentKeyboard(date dateutil.DateKey) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{InlineKeyboard: [][]InlineKeyboardButton{{
		{Text: "Ha ✅", CallbackData: fmt.Sprintf("fast:intent:%s:yes", date)},
		{Text: "Yo‘q ❌", CallbackData: fmt.Sprintf("fast:intent:%s:no", date)},
	}}}
}

func FastingResultKeyboard(date dateutil.DateKey) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{InlineKeyboard: [][]InlineKeyboardButton{{
		{Text: "Tutdim ✅", CallbackData: fmt.Sprintf("fast:result:%s:yes", date)},
		{Text: "Qoldirdim ❌", CallbackData: fmt.Sprintf("fast:result:%s:no", date)},
	}}}
}

// CalendarKeyboard renders the 30-day grid six buttons per row.
func CalendarKeyboard(view *service.CalendarView) *InlineKeyboardMarkup {
	rows := make([][]InlineKeyboardButton, 0, 5)
	row := make([]InlineKeyboardButton, 0, 6)
	for _, day := range view.Days {
		row = append(row, InlineKeyboardButton{
			Text:         fmt.Sprintf("%s %d", day.Emoji, day.DayNumber),
			CallbackData: day.Callback,
		})
		if len(row) == 6 {
			rows = append(rows, row)
			row = make([]InlineKeyboardButton, 0, 6)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}
