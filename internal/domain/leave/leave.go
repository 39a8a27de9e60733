package leave

import (
	"errors"
	"math"

	"github.com/lazyhr/hrportal/internal/messages"
)

var ErrNotFound = errors.New("leave request not found")

const millisPerDay = 24 * 60 * 60 * 1000

// Request mirrors the backend leave record. Dates are epoch milliseconds.
type Request struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	LeaveCategory string  `json:"leaveCategory"`
	LeavePeriod   string  `json:"leavePeriod"`
	StartDate     int64   `json:"startDate"`
	EndDate       int64   `json:"endDate"`
	TotalDays     float64 `json:"totalDays"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	AppliedDate   int64   `json:"appliedDate"`
}

// Pending reports whether the request still exposes edit/cancel actions.
// Every other status renders read-only with a view action.
func (r Request) Pending() bool {
	return r.Status == messages.LeaveStatusPending
}

// DisplayReason truncates the reason for table display.
func (r Request) DisplayReason() string {
	return TruncateReason(r.Reason)
}

// TotalDays computes the inclusive day count between two epoch-millisecond
// dates, halved for AM/PM half-day periods. End before start yields 0.
func TotalDays(startMs, endMs int64, period string) float64 {
	if endMs < startMs {
		return 0
	}
	days := math.Ceil(float64(endMs-startMs)/millisPerDay) + 1
	if period == messages.LeavePeriodAM || period == messages.LeavePeriodPM {
		days *= 0.5
	}
	return days
}

// TruncateReason cuts a reason to the display limit and appends "..." when
// anything was cut. The limit counts characters, not bytes, so a multibyte
// reason is never split mid-rune.
func TruncateReason(reason string) string {
	runes := []rune(reason)
	if len(runes) > messages.ReasonTruncateLength {
		return string(runes[:messages.ReasonTruncateLength]) + messages.ReasonTruncateSuffix
	}
	return reason
}

// Submission is the apply/update payload sent to the backend. TotalDays is
// computed portal-side before submission, matching the original client.
type Submission struct {
	UserID        int64   `json:"userId" validate:"required"`
	LeaveCategory string  `json:"leaveCategory" validate:"required"`
	LeavePeriod   string  `json:"leavePeriod" validate:"required,oneof=FULL_DAY AM PM"`
	StartDate     int64   `json:"startDate" validate:"required"`
	EndDate       int64   `json:"endDate" validate:"required"`
	TotalDays     float64 `json:"totalDays"`
	Reason        string  `json:"reason" validate:"required"`
}
