package timetable

import "strings"

// Weekdays lists the canonical lowercase weekday names in Monday-first
// order. Grid columns and block sorting follow this order.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var dayLetters = map[string]string{
	"M":  "monday",
	"T":  "tuesday",
	"W":  "wednesday",
	"TH": "thursday",
	"F":  "friday",
	"S":  "saturday",
	"SU": "sunday",
}

// Compound literals used by the scheduling service without separators.
var compoundDays = map[string][]string{
	"MWF": {"monday", "wednesday", "friday"},
	"MW":  {"monday", "wednesday"},
	"TTH": {"tuesday", "thursday"},
}

// ExpandDayCode resolves a compact day notation into canonical weekday
// names: full names, the single/double letter table, slash-separated
// lists, and the known compound literals. Anything unrecognized comes
// back lowercased as a best-effort single token; it will simply never
// match a canonical weekday downstream.
func ExpandDayCode(code string) []string {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	if strings.Contains(code, "/") {
		var days []string
		for _, token := range strings.Split(code, "/") {
			days = append(days, expandDayToken(token)...)
		}
		return days
	}
	return expandDayToken(code)
}

func expandDayToken(token string) []string {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	lower := strings.ToLower(token)
	if DayIndex(lower) < len(Weekdays) {
		return []string{lower}
	}
	upper := strings.ToUpper(token)
	if day, ok := dayLetters[upper]; ok {
		return []string{day}
	}
	if days, ok := compoundDays[upper]; ok {
		out := make([]string, len(days))
		copy(out, days)
		return out
	}
	return []string{lower}
}

// DayIndex returns the Monday-first position of a canonical weekday, or
// len(Weekdays) for anything else so unknown days sort last.
func DayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return len(Weekdays)
}
