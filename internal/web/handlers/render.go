package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lazyhr/hrportal/internal/notify"
	"github.com/lazyhr/hrportal/internal/timeutil"
)

// Page is the chrome shared by every rendered view: navigation state, the
// live clock readout, and at most one pending notification.
type Page struct {
	Title       string
	Active      string
	Clock       timeutil.Readout
	Flash       notify.Flash
	HasFlash    bool
	ActiveModal string
}

// NewPage pops the pending flash, if any, into the chrome.
func NewPage(ctx *gin.Context, title, active string, clock timeutil.Readout) Page {
	p := Page{Title: title, Active: active, Clock: clock}
	if f, ok := notify.Pop(ctx); ok {
		p.Flash = f
		p.HasFlash = true
	}
	return p
}

// redirectWithSuccess is the POST -> redirect -> GET happy path.
func redirectWithSuccess(ctx *gin.Context, target, message string) {
	notify.Success(ctx, message)
	ctx.Redirect(http.StatusSeeOther, target)
}

func redirectWithError(ctx *gin.Context, target, message string) {
	notify.Error(ctx, message)
	ctx.Redirect(http.StatusSeeOther, target)
}
