package attendance

import (
	"github.com/lazyhr/hrportal/internal/messages"
	"github.com/lazyhr/hrportal/internal/timeutil"
)

// Event is a clock-in/clock-out pair for a user-day. A zero ClockOutTime
// means the day is still in progress.
type Event struct {
	ID             int64   `json:"id"`
	AttendanceDate int64   `json:"attendanceDate"`
	ClockInTime    int64   `json:"clockInTime"`
	ClockOutTime   int64   `json:"clockOutTime"`
	TotalHours     float64 `json:"totalHours"`
	Status         string  `json:"status"`
}

// InProgress reports whether the user clocked in but has not clocked out.
func (e Event) InProgress() bool {
	return e.ClockInTime != 0 && e.ClockOutTime == 0
}

// TimeRange renders the display value for an attendance row:
// "09:02 - 17:31" for a complete day, "In: 09:02" while in progress, and
// "No record" when no clock-in exists.
func TimeRange(clockInMs, clockOutMs int64) string {
	if clockInMs == 0 {
		return messages.NoRecord
	}
	if clockOutMs != 0 {
		return timeutil.FormatTime(clockInMs) + messages.TimeSeparator + timeutil.FormatTime(clockOutMs)
	}
	return messages.InPrefix + timeutil.FormatTime(clockInMs)
}
