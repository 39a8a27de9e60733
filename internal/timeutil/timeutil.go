// Package timeutil holds the timestamp conversions the HR pages rely on.
// All conversions are anchored at UTC so that a date picked in the browser
// survives the round trip through epoch milliseconds unchanged.
package timeutil

import (
	"strconv"
	"time"

	"github.com/lazyhr/hrportal/internal/messages"
)

const (
	layoutPaddedDate = "Jan 02, 2006"
	layoutDate       = "Jan 2, 2006"
	layoutWeekday    = "Monday"
	layoutSeconds    = "15:04:05"
	layoutMinutes    = "15:04"
	layoutInput      = "2006-01-02"
	layoutShortDate  = "Jan 2"
	layoutNumeric    = "1/2/2006"
)

// FormatTimestamp renders an epoch-millisecond value using one of the
// format tags from the messages package. Zero renders as the empty string.
func FormatTimestamp(ms int64, format string) string {
	if ms == 0 {
		return ""
	}
	t := time.UnixMilli(ms).UTC()
	switch format {
	case messages.FormatMonthDayYear:
		return t.Format(layoutPaddedDate)
	case messages.FormatWeekday:
		return t.Format(layoutWeekday)
	case messages.FormatTimeSeconds:
		return t.Format(layoutSeconds)
	case messages.FormatTimeMinutes:
		return t.Format(layoutMinutes)
	}
	return t.Format(layoutNumeric)
}

// FormatDate renders an epoch-millisecond value as a display date with an
// unpadded day, e.g. "Aug 5, 2026".
func FormatDate(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(layoutDate)
}

// FormatDateShort renders month and day only, e.g. "Aug 5".
func FormatDateShort(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(layoutShortDate)
}

// FormatTime renders an epoch-millisecond value as HH:MM, or the
// "Not recorded" sentinel when the value is absent.
func FormatTime(ms int64) string {
	if ms == 0 {
		return messages.NotRecorded
	}
	return time.UnixMilli(ms).UTC().Format(layoutMinutes)
}

// FormatDateForInput renders an epoch-millisecond value as YYYY-MM-DD for
// populating date-input controls.
func FormatDateForInput(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(layoutInput)
}

// DateToTimestamp converts a YYYY-MM-DD string to epoch milliseconds
// anchored at UTC midnight. Anchoring at UTC avoids the day-shift that a
// local-midnight anchor produces for viewers in other timezones.
func DateToTimestamp(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	t, err := time.ParseInLocation(layoutInput, s, time.UTC)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// FormatAttr formats a raw timestamp attribute as carried in the rendered
// markup. Sentinel "not available" values and non-numeric strings pass
// through unchanged, matching the page-load scan of the original UI.
func FormatAttr(raw, format string) string {
	if raw == "" || raw == messages.NotAvailable ||
		raw == messages.TimeNotAvailable || raw == messages.DateNotAvailable {
		return raw
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	return FormatTimestamp(ms, format)
}

// Today returns the current calendar day as YYYY-MM-DD in UTC, used as the
// minimum selectable date on leave forms.
func Today() string {
	return time.Now().UTC().Format(layoutInput)
}
