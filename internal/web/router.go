package web

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lazyhr/hrportal/internal/config"
	"github.com/lazyhr/hrportal/internal/observability"
	"github.com/lazyhr/hrportal/internal/timeutil"
	"github.com/lazyhr/hrportal/internal/upstream"
	"github.com/lazyhr/hrportal/internal/web/handlers"
)

func NewRouter(cfg config.Config, log *slog.Logger, api *upstream.Client, prom *observability.Prom, reg *prometheus.Registry, clock *timeutil.Clock) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(SecurityHeaders())
	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	r.SetHTMLTemplate(loadTemplates())

	staticDir, err := fs.Sub(staticFS, "static")
	if err == nil {
		r.StaticFS("/static", http.FS(staticDir))
	}

	// health
	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return api.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if reg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	// Wire up the page handlers
	dashboardHandler := handlers.NewDashboardHandler(api, clock, cfg.CurrentUserID)
	attendanceHandler := handlers.NewAttendanceHandler(api, clock, cfg.CurrentUserID)
	leaveHandler := handlers.NewLeaveHandler(api, clock, cfg.CurrentUserID)
	usersHandler := handlers.NewUsersHandler(api, clock)
	reportsHandler := handlers.NewReportsHandler(clock)

	r.GET("/", dashboardHandler.ShowPage)
	r.GET("/dashboard/apply-leave", dashboardHandler.ShowApplyModal)

	r.GET("/attendance", attendanceHandler.ShowPage)
	r.POST("/attendance/clock-in", attendanceHandler.ClockIn)
	r.POST("/attendance/clock-out", attendanceHandler.ClockOut)

	r.GET("/leave", leaveHandler.ShowPage)
	r.GET("/leave/:id/edit", leaveHandler.ShowEditModal)
	r.POST("/leave/submit", leaveHandler.Submit)
	r.POST("/leave/:id/cancel", leaveHandler.Cancel)

	r.GET("/users", usersHandler.ShowPage)
	r.GET("/users/new", usersHandler.ShowAddModal)
	r.GET("/users/:id", usersHandler.ShowViewModal)
	r.GET("/users/:id/edit", usersHandler.ShowEditModal)
	r.POST("/users", usersHandler.Create)
	r.POST("/users/:id", usersHandler.Update)
	r.POST("/users/:id/delete", usersHandler.Delete)
	r.POST("/users/:id/toggle", usersHandler.ToggleActive)
	r.POST("/users/:id/reset-password", usersHandler.ResetPassword)

	r.GET("/reports", reportsHandler.ShowPage)
	r.GET("/reports/export", reportsHandler.Export)

	return r
}
