package upstream

import (
	"errors"
	"net/http"
	"testing"
)

func TestDecodeLeaveList(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{"bare array", `[{"id":1},{"id":2}]`, 2, false},
		{"envelope with data", `{"status":"success","data":[{"id":1}]}`, 1, false},
		{"paged content", `{"content":[{"id":1},{"id":2},{"id":3}]}`, 3, false},
		{"empty bare array", `[]`, 0, false},
		{"object with neither field", `{"status":"success"}`, 0, true},
		{"data is not an array", `{"data":{"id":1}}`, 0, true},
		{"not json at all", `oops`, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeLeaveList([]byte(tc.raw))
			if tc.wantErr {
				if !errors.Is(err, ErrUnexpectedShape) {
					t.Fatalf("want ErrUnexpectedShape, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tc.wantLen {
				t.Errorf("len = %d, want %d", len(got), tc.wantLen)
			}
		})
	}
}

func TestCancelLeave(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"envelope success", 200, `{"status":"success"}`, ""},
		{"cancelled message", 200, `{"message":"Cancelled"}`, ""},
		{"cancelled flag", 200, `{"cancelled":true}`, ""},
		{"empty body", 200, ``, "Unknown error occurred"},
		{"error with message", 200, `{"status":"error","message":"not yours"}`, "not yours"},
		{"error without message", 200, `{"status":"error"}`, "Unknown error occurred"},
		{"http error", 500, `{}`, "server returned status: 500"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("method = %s", r.Method)
				}
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			err := c.CancelLeave(t.Context(), 42, 1)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestGetLeave(t *testing.T) {
	t.Run("wrapped in envelope", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","data":{"id":9,"reason":"trip"}}`))
		})
		req, err := c.GetLeave(t.Context(), 9)
		if err != nil {
			t.Fatal(err)
		}
		if req.ID != 9 || req.Reason != "trip" {
			t.Errorf("req = %+v", req)
		}
	})

	t.Run("bare object", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":9,"reason":"trip"}`))
		})
		req, err := c.GetLeave(t.Context(), 9)
		if err != nil {
			t.Fatal(err)
		}
		if req.ID != 9 {
			t.Errorf("req = %+v", req)
		}
	})

	t.Run("missing", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"error","message":"Leave request not found"}`))
		})
		if _, err := c.GetLeave(t.Context(), 9); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestListUserLeavesPath(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	})
	if _, err := c.ListUserLeaves(t.Context(), 5); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/leave/user/5" {
		t.Errorf("path = %q", gotPath)
	}
}
