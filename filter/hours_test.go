package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mendel-server/models/restaurant"
)

// 2026-08-24 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2026, time.August, 24, hour, min, 0, 0, time.UTC)
}

func thursday(hour, min int) time.Time {
	return time.Date(2026, time.August, 27, hour, min, 0, 0, time.UTC)
}

func TestOpenNow_InsideWindow(t *testing.T) {
	hours := restaurant.WeekHours{{Day: "monday", Open: "9am", Close: "5pm"}}

	assert.True(t, OpenNow(hours, monday(15, 0)))
	assert.True(t, OpenNow(hours, monday(9, 0)))
	assert.True(t, OpenNow(hours, monday(17, 0)))
}

func TestOpenNow_OutsideWindow(t *testing.T) {
	hours := restaurant.WeekHours{{Day: "monday", Open: "9am", Close: "5pm"}}

	assert.False(t, OpenNow(hours, monday(18, 0)))
	assert.False(t, OpenNow(hours, monday(8, 59)))
}

func TestOpenNow_DayNotListedIsClosed(t *testing.T) {
	hours := restaurant.WeekHours{{Day: "tuesday", Open: "9am", Close: "5pm"}}
	assert.False(t, OpenNow(hours, monday(12, 0)))
}

func TestOpenNow_CaseInsensitiveDay(t *testing.T) {
	hours := restaurant.WeekHours{{Day: "Monday", Open: "9am", Close: "5pm"}}
	assert.True(t, OpenNow(hours, monday(12, 0)))
}

func TestOpenNow_OvernightWindow(t *testing.T) {
	hours := restaurant.WeekHours{{Day: "thursday", Open: "6pm", Close: "2am"}}

	assert.True(t, OpenNow(hours, thursday(23, 0)))
	assert.True(t, OpenNow(hours, thursday(1, 30)))
	assert.False(t, OpenNow(hours, thursday(12, 0)))
}

func TestOpenNow_UnparsableTimesFailClosed(t *testing.T) {
	for _, hours := range []restaurant.WeekHours{
		{{Day: "monday", Open: "25:99pm", Close: "5pm"}},
		{{Day: "monday", Open: "9am", Close: "25:99pm"}},
		{{Day: "monday", Open: "", Close: ""}},
		{{Day: "monday", Open: "soon", Close: "late"}},
	} {
		assert.False(t, OpenNow(hours, monday(12, 0)), "hours %v must evaluate closed", hours)
	}
}

func TestOpenNow_EmptyHoursClosed(t *testing.T) {
	assert.False(t, OpenNow(nil, monday(12, 0)))
	assert.False(t, OpenNow(restaurant.WeekHours{}, monday(12, 0)))
}

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"9am", 540, true},
		{"9:30am", 570, true},
		{"12am", 0, true},
		{"12pm", 720, true},
		{"12:01am", 1, true},
		{"11:59pm", 1439, true},
		{"5 pm", 1020, true},
		{" 5PM ", 1020, true},
		{"13pm", 0, false},
		{"0am", 0, false},
		{"9:60am", 0, false},
		{"25:99pm", 0, false},
		{"9", 0, false},
		{"", 0, false},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			minutes, ok := parseClockMinutes(test.in)
			assert.Equal(t, test.ok, ok)
			if test.ok {
				assert.Equal(t, test.minutes, minutes)
			}
		})
	}
}
