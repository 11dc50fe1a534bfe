package i18n

import "fmt"

// Locale identifies a display language.
type Locale string

const (
	LocaleVI Locale = "vi"
	LocaleEN Locale = "en"
)

// Valid reports whether the locale is supported.
func (l Locale) Valid() bool {
	return l == LocaleVI || l == LocaleEN
}

// Normalize falls back to Vietnamese for unknown locales.
func Normalize(raw string) Locale {
	l := Locale(raw)
	if !l.Valid() {
		return LocaleVI
	}
	return l
}

var statusLabels = map[Locale]map[string]string{
	LocaleVI: {
		"on time": "Đúng giờ",
		"late":    "Đi muộn",
		"absent":  "Vắng mặt",
		"unknown": "Không xác định",
	},
	LocaleEN: {
		"on time": "On time",
		"late":    "Late",
		"absent":  "Absent",
		"unknown": "Unknown",
	},
}

// Weekday codes arrive from the backend as "2".."7" (Monday..Saturday).
var weekdayLabels = map[Locale]map[string]string{
	LocaleVI: {
		"2": "Thứ 2",
		"3": "Thứ 3",
		"4": "Thứ 4",
		"5": "Thứ 5",
		"6": "Thứ 6",
		"7": "Thứ 7",
	},
	LocaleEN: {
		"2": "Monday",
		"3": "Tuesday",
		"4": "Wednesday",
		"5": "Thursday",
		"6": "Friday",
		"7": "Saturday",
	},
}

// StatusLabel returns the human-readable label for a lowercased remark key.
// Unknown keys map to the "unknown" label rather than erroring.
func StatusLabel(locale Locale, key string) string {
	labels, ok := statusLabels[locale]
	if !ok {
		labels = statusLabels[LocaleVI]
	}
	if label, ok := labels[key]; ok {
		return label
	}
	return labels["unknown"]
}

// WeekdayLabel maps a backend weekday code to its display label. Codes
// outside 2..7 fall back to the literal "Thứ {code}" placeholder.
func WeekdayLabel(locale Locale, code string) string {
	labels, ok := weekdayLabels[locale]
	if !ok {
		labels = weekdayLabels[LocaleVI]
	}
	if label, ok := labels[code]; ok {
		return label
	}
	return fmt.Sprintf("Thứ %s", code)
}

// WeekLabel renders the week selector text with its DD/MM range.
func WeekLabel(locale Locale, week int, from, to string) string {
	if locale == LocaleEN {
		return fmt.Sprintf("Week %d - From %s to %s", week, from, to)
	}
	return fmt.Sprintf("Tuần %d - Từ %s đến %s", week, from, to)
}
