package user

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/lazyhr/hrportal/internal/messages"
)

var ErrNotFound = errors.New("user not found")

// User mirrors the backend user record. Timestamps are epoch milliseconds;
// a zero LastLogin means the user has never signed in.
type User struct {
	ID         int64   `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Role       string  `json:"role"`
	IsActive   bool    `json:"isActive"`
	HireDate   int64   `json:"hireDate"`
	Salary     float64 `json:"salary"`
	LastLogin  int64   `json:"lastLogin,omitempty"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Initials returns the avatar initials, or "??" when both names are empty.
// The first character of each name is taken as a rune so accented and
// non-Latin names keep their letter intact.
func (u User) Initials() string {
	var b strings.Builder
	if r, _ := utf8.DecodeRuneInString(u.FirstName); r != utf8.RuneError {
		b.WriteString(strings.ToUpper(string(r)))
	}
	if r, _ := utf8.DecodeRuneInString(u.LastName); r != utf8.RuneError {
		b.WriteString(strings.ToUpper(string(r)))
	}
	if b.Len() == 0 {
		return messages.QuestionMarks
	}
	return b.String()
}

// StatusText returns the "Active"/"Inactive" badge text.
func (u User) StatusText() string {
	if u.IsActive {
		return messages.Active
	}
	return messages.Inactive
}

// Directory is the in-page slice of users a users-page render works
// against. View and delete lookups resolve from it without re-fetching.
type Directory []User

// FindByID resolves a user from the directory. A missing id is an
// expected condition reported to the viewer, not a programming error.
func (d Directory) FindByID(id int64) (User, error) {
	for _, u := range d {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// Update is the edit-form payload sent to the backend. Server-managed
// fields (id, username, employeeId) are deliberately absent: the edit form
// shows them read-only and the portal strips them before submission.
type Update struct {
	FirstName  string  `json:"firstName" validate:"required"`
	LastName   string  `json:"lastName" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Department string  `json:"department,omitempty"`
	Position   string  `json:"position,omitempty"`
	Role       string  `json:"role,omitempty"`
	IsActive   bool    `json:"isActive"`
	HireDate   int64   `json:"hireDate,omitempty"`
	Salary     float64 `json:"salary,omitempty"`
}

// Create is the add-user payload.
type Create struct {
	Username   string  `json:"username" validate:"required"`
	Password   string  `json:"password" validate:"required,min=6"`
	Email      string  `json:"email" validate:"required,email"`
	FirstName  string  `json:"firstName" validate:"required"`
	LastName   string  `json:"lastName" validate:"required"`
	EmployeeID string  `json:"employeeId" validate:"required"`
	Department string  `json:"department,omitempty"`
	Position   string  `json:"position,omitempty"`
	Role       string  `json:"role,omitempty"`
	HireDate   int64   `json:"hireDate,omitempty"`
	Salary     float64 `json:"salary,omitempty"`
}
