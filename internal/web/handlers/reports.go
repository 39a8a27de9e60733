package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lazyhr/hrportal/internal/messages"
	"github.com/lazyhr/hrportal/internal/reports"
	"github.com/lazyhr/hrportal/internal/timeutil"
)

type ReportsHandler struct {
	clock *timeutil.Clock
}

func NewReportsHandler(clock *timeutil.Clock) *ReportsHandler {
	return &ReportsHandler{clock: clock}
}

type reportsPage struct {
	Page
	Filter   reports.Filter
	Snapshot reports.Snapshot
}

func filterFromQuery(ctx *gin.Context) reports.Filter {
	return reports.Filter{
		ReportType: ctx.Query("type"),
		DateRange:  ctx.Query("range"),
		Department: ctx.Query("department"),
		Employee:   ctx.Query("employee"),
		StartDate:  ctx.Query("startDate"),
		EndDate:    ctx.Query("endDate"),
	}
}

func (h *ReportsHandler) ShowPage(ctx *gin.Context) {
	f := filterFromQuery(ctx)
	vm := reportsPage{
		Page:     NewPage(ctx, "Reports", "reports", h.clock.Current()),
		Filter:   f,
		Snapshot: reports.Build(f),
	}
	ctx.HTML(http.StatusOK, "reports.html", vm)
}

// Export streams the current report as an XLSX workbook.
func (h *ReportsHandler) Export(ctx *gin.Context) {
	f := filterFromQuery(ctx)
	if format := ctx.Query("format"); format != "" && format != "xlsx" {
		redirectWithError(ctx, "/reports", messages.UnknownErrorOccurred)
		return
	}
	snap := reports.Build(f)

	ctx.Header("Content-Disposition", `attachment; filename="`+reports.ExportFilename(f)+`"`)
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := reports.WriteXLSX(ctx.Writer, snap, f); err != nil {
		ctx.Status(http.StatusInternalServerError)
	}
}
