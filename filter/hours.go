package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"mendel-server/models/restaurant"
)

// clockPattern matches 12-hour times like "9am", "9:30am", "11:05 pm".
var clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)

// OpenNow reports whether the given weekly hours cover the instant now.
// Any missing day or unparsable time yields closed: the evaluator never
// claims open on ambiguous input.
func OpenNow(hours restaurant.WeekHours, now time.Time) bool {
	if len(hours) == 0 {
		return false
	}

	today := strings.ToLower(now.Weekday().String())
	currentMinutes := now.Hour()*60 + now.Minute()

	for _, entry := range hours {
		if !strings.EqualFold(entry.Day, today) {
			continue
		}

		openMinutes, ok := parseClockMinutes(entry.Open)
		if !ok {
			return false
		}
		closeMinutes, ok := parseClockMinutes(entry.Close)
		if !ok {
			return false
		}

		if closeMinutes < openMinutes {
			// Window crosses midnight, e.g. 6pm-2am.
			return currentMinutes >= openMinutes || currentMinutes <= closeMinutes
		}
		return openMinutes <= currentMinutes && currentMinutes <= closeMinutes
	}

	return false
}

// parseClockMinutes converts "H[:MM]am|pm" to minutes since midnight.
func parseClockMinutes(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return 0, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}

	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return 0, false
		}
	}

	if hour == 12 {
		hour = 0
	}
	if m[3] == "pm" {
		hour += 12
	}

	return hour*60 + minute, true
}
