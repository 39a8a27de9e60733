// Package tableview filters the user directory for the users table.
package tableview

import (
	"strconv"
	"strings"

	"github.com/lazyhr/hrportal/internal/domain/user"
)

// Filter is the users-table filter bar state. Zero values mean "no
// restriction" for that field.
type Filter struct {
	Search string
	Role   string
	Status string
}

// Empty reports whether every filter field is unset.
func (f Filter) Empty() bool {
	return f.Search == "" && f.Role == "" && f.Status == ""
}

// Apply narrows the directory to rows matching every set filter field.
// The search term matches case-insensitively against full name, employee
// id and email. The role filter is a case-insensitive substring match and
// the status filter compares exactly against the active flag ("true" or
// "false").
func Apply(dir user.Directory, f Filter) user.Directory {
	if f.Empty() {
		return dir
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	role := strings.ToLower(f.Role)

	out := make(user.Directory, 0, len(dir))
	for _, u := range dir {
		if search != "" && !matchesSearch(u, search) {
			continue
		}
		if role != "" && !strings.Contains(strings.ToLower(u.Role), role) {
			continue
		}
		if f.Status != "" && strconv.FormatBool(u.IsActive) != f.Status {
			continue
		}
		out = append(out, u)
	}
	return out
}

func matchesSearch(u user.User, search string) bool {
	return strings.Contains(strings.ToLower(u.FullName()), search) ||
		strings.Contains(strings.ToLower(u.EmployeeID), search) ||
		strings.Contains(strings.ToLower(u.Email), search)
}
