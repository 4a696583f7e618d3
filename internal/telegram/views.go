package telegram

import (
	"fmt"
	"strings"

	"github.com/ramadanuz/taqvo/internal/prayertimes"
	"github.com/ramadanuz/taqvo/internal/ramadan"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

// timeState classifies every prayer as active (its window holds now) or
// passed, so the view can cue the user. Unknown timings fall into neither.
type timeState struct {
	active map[string]bool
	passed map[string]bool
}

func buildTimeState(timings prayertimes.Timings, nowMinutes int) timeState {
	state := timeState{
		active: make(map[string]bool, len(entity.PrayerKeys)),
		passed: make(map[string]bool, len(entity.PrayerKeys)),
	}

	minutes := make([]int, len(entity.PrayerKeys))
	known := make([]bool, len(entity.PrayerKeys))
	for i, key := range entity.PrayerKeys {
		minutes[i], known[i] = dateutil.ParseClock(timings.ForPrayer(key))
	}

	activeIndex := -1
	for i := range entity.PrayerKeys {
		if !known[i] {
			continue
		}
		next := dateutil.MinutesPerDay + 1
		if i+1 < len(entity.PrayerKeys) && known[i+1] {
			next = minutes[i+1]
		}
		if nowMinutes >= minutes[i] && nowMinutes < next {
			activeIndex = i
			break
		}
	}

	for i, key := range entity.PrayerKeys {
		if !known[i] {
			continue
		}
		state.active[key] = i == activeIndex
		state.passed[key] = nowMinutes >= minutes[i] && i != activeIndex
	}
	return state
}

func prayerLineIcon(key string, plog *entity.PrayerLog, state timeState) string {
	switch {
	case plog.Done(key):
		return "🟢"
	case state.active[key]:
		return "🟡"
	case state.passed[key]:
		return "⚪"
	}
	return ""
}

type PrayerViewOpts struct {
	ToggleConfirmPrayer string
}

// BuildPrayerText renders the daily prayer checklist with per-prayer times
// and progress.
func BuildPrayerText(plog *entity.PrayerLog, timings prayertimes.Timings, nowMinutes int, opts PrayerViewOpts) string {
	if plog.IsClosed {
		return "🔒 Bugungi kun yopilgan.\nNamozlarni o‘zgartirib bo‘lmaydi."
	}

	state := buildTimeState(timings, nowMinutes)
	lines := []string{"📿 Bugungi namozlar", ""}
	for _, key := range entity.PrayerKeys {
		icon := prayerLineIcon(key, plog, state)
		line := fmt.Sprintf("%s — %s", prayerLabels[key], timings.ForPrayer(key))
		if icon != "" {
			line = icon + " " + line
		}
		lines = append(lines, line)
	}

	completed := plog.CompletedCount()
	lines = append(lines, "", fmt.Sprintf("(%d/5 bajarildi)", completed))

	if opts.ToggleConfirmPrayer != "" {
		lines = append(lines, "", "⚠️ Bu namoz allaqachon belgilangan.", "Ortga qaytarmoqchimisiz?")
	}
	if completed == len(entity.PrayerKeys) {
		lines = append(lines, "", "🌙 Kunni yakunlamoqchimisiz?")
	}
	return strings.Join(lines, "\n")
}

// BuildFastingText renders today's fasting state with sahar/iftar times.
func BuildFastingText(day *entity.RamadanDay, state ramadan.State, timings prayertimes.Timings) string {
	if day == nil || !state.IsActive {
		if state.IsNotStarted {
			return "🌙 Ramazon hali boshlanmadi."
		}
		return "🌙 Ramazon yakunlandi."
	}

	lines := []string{
		fmt.Sprintf("🌙 Ramazon %d-kun", state.DayNumber),
		"",
		fmt.Sprintf("Saharlik: %s", timings.Sahar()),
		fmt.Sprintf("Iftorlik: %s", timings.Iftar()),
		"",
	}
	switch day.Status {
	case entity.StatusCompleted:
		lines = append(lines, "Bugungi ro‘za: ✅ Tutildi")
	case entity.StatusMissed:
		lines = append(lines, "Bugungi ro‘za: ❌ Qoldirildi")
	default:
		lines = append(lines, "Bugungi ro‘za: ⏳ Belgilanmagan")
	}
	return strings.Join(lines, "\n")
}

func BuildStatsText(stats *entity.FastingStats) string {
	return strings.Join([]string{
		"📊 Statistika",
		"",
		fmt.Sprintf("✅ Tutilgan ro‘zalar: %d", stats.Completed),
		fmt.Sprintf("❌ Qoldirilgan ro‘zalar: %d", stats.Missed),
		fmt.Sprintf("⏳ Belgilanmagan: %d", stats.Pending),
		fmt.Sprintf("🔒 Yopilgan kunlar: %d", stats.ClosedPrayerDays),
	}, "\n")
}

func BuildCalendarText(state ramadan.State) string {
	if state.IsNotStarted {
		return "🗓 Ramazon taqvimi\n\nRamazon hali boshlanmadi."
	}
	if state.IsFinished {
		return "🗓 Ramazon taqvimi\n\nRamazon yakunlandi."
	}
	return fmt.Sprintf("🗓 Ramazon taqvimi\n\nBugun %d-kun.", state.DayNumber)
}
