package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lazyhr/hrportal/internal/domain/attendance"
	"github.com/lazyhr/hrportal/internal/messages"
)

// ClockIn records a clock-in for the user. The result is the raw envelope;
// the caller applies HandleResponse.
func (c *Client) ClockIn(ctx context.Context, userID int64) (Envelope, error) {
	return c.envelope(ctx, http.MethodPost, fmt.Sprintf(messages.EndpointClockIn, userID), nil)
}

// ClockOut records a clock-out for the user.
func (c *Client) ClockOut(ctx context.Context, userID int64) (Envelope, error) {
	return c.envelope(ctx, http.MethodPost, fmt.Sprintf(messages.EndpointClockOut, userID), nil)
}

// TodayAttendance returns today's record for the user. The second return
// is false when no record exists yet, which the backend reports as a
// success envelope with null data.
func (c *Client) TodayAttendance(ctx context.Context, userID int64) (attendance.Event, bool, error) {
	env, err := c.envelope(ctx, http.MethodGet, fmt.Sprintf(messages.EndpointAttendanceToday, userID), nil)
	if err != nil {
		return attendance.Event{}, false, err
	}
	if env.Status != messages.StatusSuccess {
		msg := env.Message
		if msg == "" {
			msg = messages.UnknownErrorOccurred
		}
		return attendance.Event{}, false, fmt.Errorf("today attendance: %s", msg)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return attendance.Event{}, false, nil
	}
	var ev attendance.Event
	if err := env.Decode(&ev); err != nil {
		return attendance.Event{}, false, fmt.Errorf("decode attendance: %w", err)
	}
	return ev, true, nil
}

// AttendanceHistory returns the user's attendance records, newest first.
func (c *Client) AttendanceHistory(ctx context.Context, userID int64) ([]attendance.Event, error) {
	env, err := c.envelope(ctx, http.MethodGet, fmt.Sprintf(messages.EndpointAttendanceHistory, userID), nil)
	if err != nil {
		return nil, err
	}
	if env.Status != messages.StatusSuccess {
		msg := env.Message
		if msg == "" {
			msg = messages.UnknownErrorOccurred
		}
		return nil, fmt.Errorf("attendance history: %s", msg)
	}
	var events []attendance.Event
	if err := env.Decode(&events); err != nil {
		return nil, fmt.Errorf("decode attendance history: %w", err)
	}
	return events, nil
}
