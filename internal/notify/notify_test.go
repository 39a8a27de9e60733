package notify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFlashRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// First request queues the flash.
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	Success(ctx, "Leave request submitted successfully!")

	res := w.Result()
	cookies := res.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	// Second request reads it back.
	w2 := httptest.NewRecorder()
	ctx2, _ := gin.CreateTestContext(w2)
	ctx2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx2.Request.AddCookie(cookies[0])

	f, ok := Pop(ctx2)
	if !ok {
		t.Fatal("expected a pending flash")
	}
	if f.Kind != KindSuccess {
		t.Errorf("kind = %q, want %q", f.Kind, KindSuccess)
	}
	if f.Message != "Leave request submitted successfully!" {
		t.Errorf("message = %q", f.Message)
	}

	// Pop must clear the cookie.
	cleared := false
	for _, c := range w2.Result().Cookies() {
		if c.Name == "hrportal_flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie was not cleared")
	}
}

func TestPopWithoutFlash(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := Pop(ctx); ok {
		t.Fatal("expected no flash")
	}
}

func TestPopGarbageCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.AddCookie(&http.Cookie{Name: "hrportal_flash", Value: "%%%not-base64"})

	if _, ok := Pop(ctx); ok {
		t.Fatal("expected garbage cookie to be ignored")
	}
}
