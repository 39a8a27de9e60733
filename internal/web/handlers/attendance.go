package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lazyhr/hrportal/internal/domain/attendance"
	"github.com/lazyhr/hrportal/internal/messages"
	"github.com/lazyhr/hrportal/internal/timeutil"
	"github.com/lazyhr/hrportal/internal/upstream"
)

type AttendanceAPI interface {
	ClockIn(ctx context.Context, userID int64) (upstream.Envelope, error)
	ClockOut(ctx context.Context, userID int64) (upstream.Envelope, error)
	TodayAttendance(ctx context.Context, userID int64) (attendance.Event, bool, error)
	AttendanceHistory(ctx context.Context, userID int64) ([]attendance.Event, error)
}

type AttendanceHandler struct {
	api    AttendanceAPI
	clock  *timeutil.Clock
	userID int64
}

func NewAttendanceHandler(api AttendanceAPI, clock *timeutil.Clock, userID int64) *AttendanceHandler {
	return &AttendanceHandler{api: api, clock: clock, userID: userID}
}

type attendancePage struct {
	Page
	Today    attendance.Event
	HasToday bool
	History  []attendance.Event
}

func (h *AttendanceHandler) ShowPage(ctx *gin.Context) {
	vm := attendancePage{
		Page: NewPage(ctx, "Attendance", "attendance", h.clock.Current()),
	}

	today, ok, err := h.api.TodayAttendance(ctx.Request.Context(), h.userID)
	if err == nil {
		vm.Today, vm.HasToday = today, ok
	}

	history, err := h.api.AttendanceHistory(ctx.Request.Context(), h.userID)
	if err == nil {
		vm.History = history
	}

	ctx.HTML(http.StatusOK, "attendance.html", vm)
}

// ClockIn posts the clock-in and bounces back with a cache-busting query
// so the page re-renders fresh data.
func (h *AttendanceHandler) ClockIn(ctx *gin.Context) {
	h.clockAction(ctx, h.api.ClockIn, messages.ClockedInSuccessfully, messages.ErrorClockingIn)
}

func (h *AttendanceHandler) ClockOut(ctx *gin.Context) {
	h.clockAction(ctx, h.api.ClockOut, messages.ClockedOutSuccessfully, messages.ErrorClockingOut)
}

func (h *AttendanceHandler) clockAction(ctx *gin.Context, call func(context.Context, int64) (upstream.Envelope, error), okMsg, failMsg string) {
	if h.userID == 0 {
		redirectWithError(ctx, "/attendance", messages.UserLoginRequired)
		return
	}

	env, err := call(ctx.Request.Context(), h.userID)
	if err != nil {
		redirectWithError(ctx, "/attendance", failMsg)
		return
	}

	upstream.HandleResponse(env,
		func(upstream.Envelope) {
			target := fmt.Sprintf("/attendance?t=%d", time.Now().UnixMilli())
			redirectWithSuccess(ctx, target, okMsg)
		},
		func(msg string) {
			redirectWithError(ctx, "/attendance", msg)
		},
	)
}
