package forms

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func postContext(t *testing.T, form url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	ctx.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return ctx
}

func TestValuesTrimsWhitespace(t *testing.T) {
	ctx := postContext(t, url.Values{
		"firstName": {"  Jane "},
		"reason":    {"vacation"},
	})

	got := Values(ctx)
	if got["firstName"] != "Jane" {
		t.Errorf("firstName = %q, want %q", got["firstName"], "Jane")
	}
	if got["reason"] != "vacation" {
		t.Errorf("reason = %q", got["reason"])
	}
}

func TestRequired(t *testing.T) {
	values := map[string]string{
		"leaveType": "ANNUAL",
		"startDate": "2024-03-01",
		"reason":    "",
	}

	if err := Required(values, "leaveType", "startDate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Required(values, "leaveType", "reason")
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if err.Error() != "Please fill in all required fields" {
		t.Errorf("message = %q", err.Error())
	}

	if err := Required(values, "endDate"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("absent field should fail, got %v", err)
	}
}

func TestRequiredBlankAfterTrim(t *testing.T) {
	ctx := postContext(t, url.Values{"reason": {"   "}})

	values := Values(ctx)
	if err := Required(values, "reason"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("whitespace-only field should fail, got %v", err)
	}
}
