package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lazyhr/hrportal/internal/domain/attendance"
	"github.com/lazyhr/hrportal/internal/timeutil"
	"github.com/lazyhr/hrportal/internal/upstream"
)

type fakeAttendanceAPI struct {
	clockIn  func(ctx context.Context, userID int64) (upstream.Envelope, error)
	clockOut func(ctx context.Context, userID int64) (upstream.Envelope, error)
	today    func(ctx context.Context, userID int64) (attendance.Event, bool, error)
	history  func(ctx context.Context, userID int64) ([]attendance.Event, error)
}

func (f *fakeAttendanceAPI) ClockIn(ctx context.Context, userID int64) (upstream.Envelope, error) {
	return f.clockIn(ctx, userID)
}
func (f *fakeAttendanceAPI) ClockOut(ctx context.Context, userID int64) (upstream.Envelope, error) {
	return f.clockOut(ctx, userID)
}
func (f *fakeAttendanceAPI) TodayAttendance(ctx context.Context, userID int64) (attendance.Event, bool, error) {
	return f.today(ctx, userID)
}
func (f *fakeAttendanceAPI) AttendanceHistory(ctx context.Context, userID int64) ([]attendance.Event, error) {
	return f.history(ctx, userID)
}

func postTo(t *testing.T, register func(*gin.Engine), target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func flashCookie(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "hrportal_flash" && c.MaxAge >= 0 {
			return c.Value
		}
	}
	return ""
}

func TestClockInSuccessRedirectsWithCacheBuster(t *testing.T) {
	api := &fakeAttendanceAPI{
		clockIn: func(ctx context.Context, userID int64) (upstream.Envelope, error) {
			if userID != 7 {
				t.Errorf("userID = %d", userID)
			}
			return upstream.Envelope{Status: "success"}, nil
		},
	}
	h := NewAttendanceHandler(api, timeutil.NewClock(), 7)

	w := postTo(t, func(r *gin.Engine) { r.POST("/attendance/clock-in", h.ClockIn) }, "/attendance/clock-in")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("code = %d", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "/attendance?t=") {
		t.Errorf("Location = %q, want cache-busting redirect", loc)
	}
	if flashCookie(t, w) == "" {
		t.Error("expected a success flash")
	}
}

func TestClockInErrorEnvelope(t *testing.T) {
	api := &fakeAttendanceAPI{
		clockIn: func(ctx context.Context, userID int64) (upstream.Envelope, error) {
			return upstream.Envelope{Status: "error", Message: "Already clocked in"}, nil
		},
	}
	h := NewAttendanceHandler(api, timeutil.NewClock(), 7)

	w := postTo(t, func(r *gin.Engine) { r.POST("/attendance/clock-in", h.ClockIn) }, "/attendance/clock-in")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("code = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/attendance" {
		t.Errorf("Location = %q, error path must not cache-bust", loc)
	}
}

func TestClockOutTransportFailure(t *testing.T) {
	api := &fakeAttendanceAPI{
		clockOut: func(ctx context.Context, userID int64) (upstream.Envelope, error) {
			return upstream.Envelope{}, errors.New("connection refused")
		},
	}
	h := NewAttendanceHandler(api, timeutil.NewClock(), 7)

	w := postTo(t, func(r *gin.Engine) { r.POST("/attendance/clock-out", h.ClockOut) }, "/attendance/clock-out")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("code = %d", w.Code)
	}
	if flashCookie(t, w) == "" {
		t.Error("expected an error flash")
	}
}

func TestClockInWithoutUser(t *testing.T) {
	called := false
	api := &fakeAttendanceAPI{
		clockIn: func(ctx context.Context, userID int64) (upstream.Envelope, error) {
			called = true
			return upstream.Envelope{Status: "success"}, nil
		},
	}
	h := NewAttendanceHandler(api, timeutil.NewClock(), 0)

	postTo(t, func(r *gin.Engine) { r.POST("/attendance/clock-in", h.ClockIn) }, "/attendance/clock-in")

	if called {
		t.Error("clock-in must not reach the backend without a user")
	}
}
