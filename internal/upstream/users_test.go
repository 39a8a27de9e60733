package upstream

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/lazyhr/hrportal/internal/domain/user"
)

func TestListUsers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","data":[{"id":1,"firstName":"Jane"},{"id":2}]}`))
		})
		dir, err := c.ListUsers(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if len(dir) != 2 || dir[0].FirstName != "Jane" {
			t.Errorf("dir = %+v", dir)
		}
	})

	t.Run("error envelope", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"error","message":"db down"}`))
		})
		_, err := c.ListUsers(t.Context())
		if err == nil || err.Error() != "list users: db down" {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("error without message", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"error"}`))
		})
		_, err := c.ListUsers(t.Context())
		if err == nil || err.Error() != "list users: Unknown error occurred" {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestResetPasswordPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"status":"success"}`))
	})

	if _, err := c.ResetPassword(t.Context(), 3, "s3cret"); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/users/3/password" {
		t.Errorf("call = %s %s, want POST /api/users/3/password", gotMethod, gotPath)
	}
	if gotBody["newPassword"] != "s3cret" {
		t.Errorf("body = %v", gotBody)
	}
}

func TestSetUserActiveRoutes(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":"success"}`))
	})

	if _, err := c.SetUserActive(t.Context(), 4, true); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/users/4/activate" {
		t.Errorf("activate path = %q", gotPath)
	}

	if _, err := c.SetUserActive(t.Context(), 4, false); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/users/4/deactivate" {
		t.Errorf("deactivate path = %q", gotPath)
	}
}

func TestUpdateUserStripsServerManagedFields(t *testing.T) {
	var gotBody map[string]interface{}
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"status":"success"}`))
	})

	upd := user.Update{FirstName: "Jane", LastName: "Doe", Email: "j@d.io"}
	if _, err := c.UpdateUser(t.Context(), 1, upd); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"id", "username", "employeeId"} {
		if _, ok := gotBody[field]; ok {
			t.Errorf("payload must not carry %q", field)
		}
	}
}
