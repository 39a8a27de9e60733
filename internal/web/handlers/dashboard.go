package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lazyhr/hrportal/internal/domain/attendance"
	"github.com/lazyhr/hrportal/internal/domain/leave"
	"github.com/lazyhr/hrportal/internal/timeutil"
)

const recentLeaveLimit = 5

type DashboardAPI interface {
	TodayAttendance(ctx context.Context, userID int64) (attendance.Event, bool, error)
	ListUserLeaves(ctx context.Context, userID int64) ([]leave.Request, error)
}

type DashboardHandler struct {
	api    DashboardAPI
	clock  *timeutil.Clock
	userID int64
}

func NewDashboardHandler(api DashboardAPI, clock *timeutil.Clock, userID int64) *DashboardHandler {
	return &DashboardHandler{api: api, clock: clock, userID: userID}
}

type dashboardPage struct {
	Page
	Today        attendance.Event
	HasToday     bool
	RecentLeaves []leave.Request
}

func (h *DashboardHandler) page(ctx *gin.Context) dashboardPage {
	vm := dashboardPage{
		Page: NewPage(ctx, "Dashboard", "dashboard", h.clock.Current()),
	}

	today, ok, err := h.api.TodayAttendance(ctx.Request.Context(), h.userID)
	if err == nil {
		vm.Today, vm.HasToday = today, ok
	}

	if requests, err := h.api.ListUserLeaves(ctx.Request.Context(), h.userID); err == nil {
		if len(requests) > recentLeaveLimit {
			requests = requests[:recentLeaveLimit]
		}
		vm.RecentLeaves = requests
	}
	return vm
}

func (h *DashboardHandler) ShowPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "dashboard.html", h.page(ctx))
}

// ShowApplyModal re-renders the dashboard with the leave-apply form open;
// the form posts to the leave submit route.
func (h *DashboardHandler) ShowApplyModal(ctx *gin.Context) {
	vm := h.page(ctx)
	vm.ActiveModal = "leave-form"
	ctx.HTML(http.StatusOK, "dashboard.html", vm)
}
