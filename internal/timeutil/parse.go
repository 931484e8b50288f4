package timeutil

import (
	"regexp"
	"strconv"

	"telegram-time-tracker/internal/models"
)

var (
	clockRx = regexp.MustCompile(`[0-2]\d:[0-5]\d`)
	rangeRx = regexp.MustCompile(`[0-2]\d:[0-5]\d( | - |-)[0-2]\d:[0-5]\d`)
)

// ParseClock finds the first HH:MM token in free text.
func ParseClock(text string) (*models.DayTime, bool) {
	m := clockRx.FindString(text)
	if m == "" {
		return nil, false
	}
	return parseToken(m)
}

// ParseClockRange finds a "HH:MM - HH:MM" pattern (space, hyphen or both as
// the separator) in free text.
func ParseClockRange(text string) (from, to *models.DayTime, ok bool) {
	m := rangeRx.FindString(text)
	if m == "" {
		return nil, nil, false
	}
	from, ok = parseToken(m[:5])
	if !ok {
		return nil, nil, false
	}
	to, ok = parseToken(m[len(m)-5:])
	if !ok {
		return nil, nil, false
	}
	return from, to, true
}

func parseToken(s string) (*models.DayTime, bool) {
	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[3:])
	if hour > 23 { // регулярка пропускает 24..29
		return nil, false
	}
	return &models.DayTime{Hour: hour, Minute: minute}, true
}
