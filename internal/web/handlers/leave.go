package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lazyhr/hrportal/internal/domain/leave"
	"github.com/lazyhr/hrportal/internal/forms"
	"github.com/lazyhr/hrportal/internal/messages"
	"github.com/lazyhr/hrportal/internal/timeutil"
	"github.com/lazyhr/hrportal/internal/upstream"
)

type LeaveAPI interface {
	ApplyLeave(ctx context.Context, sub leave.Submission) (upstream.Envelope, error)
	UpdateLeave(ctx context.Context, leaveID int64, sub leave.Submission) (upstream.Envelope, error)
	GetLeave(ctx context.Context, leaveID int64) (leave.Request, error)
	ListUserLeaves(ctx context.Context, userID int64) ([]leave.Request, error)
	CancelLeave(ctx context.Context, leaveID, userID int64) error
}

type LeaveHandler struct {
	api    LeaveAPI
	clock  *timeutil.Clock
	userID int64
}

func NewLeaveHandler(api LeaveAPI, clock *timeutil.Clock, userID int64) *LeaveHandler {
	return &LeaveHandler{api: api, clock: clock, userID: userID}
}

type leavePage struct {
	Page
	Requests   []leave.Request
	ListError  string
	ModalTitle string
	Editing    leave.Request
	IsEdit     bool
}

func (h *LeaveHandler) page(ctx *gin.Context) leavePage {
	vm := leavePage{
		Page:       NewPage(ctx, "Leave Management", "leave", h.clock.Current()),
		ModalTitle: messages.ApplyForLeaveTitle,
	}

	requests, err := h.api.ListUserLeaves(ctx.Request.Context(), h.userID)
	switch {
	case err == nil:
		vm.Requests = requests
	case errors.Is(err, upstream.ErrUnexpectedShape):
		vm.ListError = messages.UnknownErrorOccurred
	default:
		vm.ListError = messages.ErrorPrefix + err.Error()
	}
	return vm
}

func (h *LeaveHandler) ShowPage(ctx *gin.Context) {
	vm := h.page(ctx)
	if ctx.Query("modal") == "apply" {
		vm.ActiveModal = "leave-form"
	}
	ctx.HTML(http.StatusOK, "leave.html", vm)
}

// ShowEditModal re-renders the page with the leave form open and
// pre-populated from the stored request.
func (h *LeaveHandler) ShowEditModal(ctx *gin.Context) {
	leaveID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/leave", messages.LeaveRequestNotFound)
		return
	}

	req, err := h.api.GetLeave(ctx.Request.Context(), leaveID)
	if err != nil {
		redirectWithError(ctx, "/leave", messages.FailedToLoadLeaveDetails)
		return
	}

	vm := h.page(ctx)
	vm.ActiveModal = "leave-form"
	vm.ModalTitle = messages.EditLeaveRequestTitle
	vm.Editing = req
	vm.IsEdit = true
	ctx.HTML(http.StatusOK, "leave.html", vm)
}

// Submit handles both apply and update; an edit carries a leaveId field.
func (h *LeaveHandler) Submit(ctx *gin.Context) {
	values := forms.Values(ctx)
	if err := forms.Required(values, "leaveType", "leavePeriod", "startDate", "endDate", "reason"); err != nil {
		redirectWithError(ctx, "/leave", err.Error())
		return
	}

	startMs, err := timeutil.DateToTimestamp(values["startDate"])
	if err != nil {
		redirectWithError(ctx, "/leave", messages.PleaseFillRequiredFields)
		return
	}
	endMs, err := timeutil.DateToTimestamp(values["endDate"])
	if err != nil {
		redirectWithError(ctx, "/leave", messages.PleaseFillRequiredFields)
		return
	}

	sub := leave.Submission{
		UserID:        h.userID,
		LeaveCategory: values["leaveType"],
		LeavePeriod:   values["leavePeriod"],
		StartDate:     startMs,
		EndDate:       endMs,
		TotalDays:     leave.TotalDays(startMs, endMs, values["leavePeriod"]),
		Reason:        values["reason"],
	}
	if err := forms.Validate(sub); err != nil {
		redirectWithError(ctx, "/leave", err.Error())
		return
	}

	var env upstream.Envelope
	if id := values["leaveId"]; id != "" {
		leaveID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			redirectWithError(ctx, "/leave", messages.LeaveRequestNotFound)
			return
		}
		env, err = h.api.UpdateLeave(ctx.Request.Context(), leaveID, sub)
		if err != nil {
			redirectWithError(ctx, "/leave", messages.FailedToSubmitLeave)
			return
		}
	} else {
		env, err = h.api.ApplyLeave(ctx.Request.Context(), sub)
		if err != nil {
			redirectWithError(ctx, "/leave", messages.FailedToSubmitLeave)
			return
		}
	}

	upstream.HandleResponse(env,
		func(upstream.Envelope) {
			redirectWithSuccess(ctx, "/leave", messages.LeaveRequestSubmitted)
		},
		func(msg string) {
			redirectWithError(ctx, "/leave", msg)
		},
	)
}

func (h *LeaveHandler) Cancel(ctx *gin.Context) {
	leaveID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/leave", messages.LeaveRequestNotFound)
		return
	}

	if err := h.api.CancelLeave(ctx.Request.Context(), leaveID, h.userID); err != nil {
		redirectWithError(ctx, "/leave", messages.ErrorPrefix+err.Error())
		return
	}
	redirectWithSuccess(ctx, "/leave", messages.LeaveRequestCancelled)
}
