package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lazyhr/hrportal/internal/domain/user"
	"github.com/lazyhr/hrportal/internal/forms"
	"github.com/lazyhr/hrportal/internal/messages"
	"github.com/lazyhr/hrportal/internal/tableview"
	"github.com/lazyhr/hrportal/internal/timeutil"
	"github.com/lazyhr/hrportal/internal/upstream"
)

type UsersAPI interface {
	ListUsers(ctx context.Context) (user.Directory, error)
	CreateUser(ctx context.Context, cr user.Create) (upstream.Envelope, error)
	UpdateUser(ctx context.Context, userID int64, upd user.Update) (upstream.Envelope, error)
	DeleteUser(ctx context.Context, userID int64) (upstream.Envelope, error)
	SetUserActive(ctx context.Context, userID int64, active bool) (upstream.Envelope, error)
	ResetPassword(ctx context.Context, userID int64, newPassword string) (upstream.Envelope, error)
}

type UsersHandler struct {
	api   UsersAPI
	clock *timeutil.Clock
}

func NewUsersHandler(api UsersAPI, clock *timeutil.Clock) *UsersHandler {
	return &UsersHandler{api: api, clock: clock}
}

type usersPage struct {
	Page
	Users     user.Directory
	Filter    tableview.Filter
	ListError string
	Editing   user.User
	Viewing   user.User
}

func (h *UsersHandler) page(ctx *gin.Context) usersPage {
	vm := usersPage{
		Page: NewPage(ctx, "User Management", "users", h.clock.Current()),
		Filter: tableview.Filter{
			Search: ctx.Query("search"),
			Role:   ctx.Query("role"),
			Status: ctx.Query("status"),
		},
	}

	dir, err := h.api.ListUsers(ctx.Request.Context())
	if err != nil {
		vm.ListError = messages.UsersDataNotAvailable
		return vm
	}
	vm.Users = tableview.Apply(dir, vm.Filter)
	return vm
}

func (h *UsersHandler) ShowPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "users.html", h.page(ctx))
}

// ShowViewModal opens the read-only detail modal for one user, resolved
// from the freshly fetched directory.
func (h *UsersHandler) ShowViewModal(ctx *gin.Context) {
	h.showModal(ctx, "view-user", func(vm *usersPage, u user.User) { vm.Viewing = u })
}

func (h *UsersHandler) ShowEditModal(ctx *gin.Context) {
	h.showModal(ctx, "edit-user", func(vm *usersPage, u user.User) { vm.Editing = u })
}

func (h *UsersHandler) ShowAddModal(ctx *gin.Context) {
	vm := h.page(ctx)
	vm.ActiveModal = "add-user"
	ctx.HTML(http.StatusOK, "users.html", vm)
}

func (h *UsersHandler) showModal(ctx *gin.Context, modal string, assign func(*usersPage, user.User)) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/users", messages.UserNotFound)
		return
	}

	vm := h.page(ctx)
	u, err := vm.Users.FindByID(userID)
	if err != nil {
		redirectWithError(ctx, "/users", messages.UserNotFound)
		return
	}
	assign(&vm, u)
	vm.ActiveModal = modal
	ctx.HTML(http.StatusOK, "users.html", vm)
}

func (h *UsersHandler) Create(ctx *gin.Context) {
	values := forms.Values(ctx)
	if err := forms.Required(values, "username", "password", "email", "firstName", "lastName", "employeeId"); err != nil {
		redirectWithError(ctx, "/users", err.Error())
		return
	}

	cr := user.Create{
		Username:   values["username"],
		Password:   values["password"],
		Email:      values["email"],
		FirstName:  values["firstName"],
		LastName:   values["lastName"],
		EmployeeID: values["employeeId"],
		Department: values["department"],
		Position:   values["position"],
		Role:       values["role"],
		Salary:     parseSalary(values["salary"]),
	}
	if values["hireDate"] != "" {
		if ms, err := timeutil.DateToTimestamp(values["hireDate"]); err == nil {
			cr.HireDate = ms
		}
	}
	if err := forms.Validate(cr); err != nil {
		redirectWithError(ctx, "/users", err.Error())
		return
	}

	env, err := h.api.CreateUser(ctx.Request.Context(), cr)
	if err != nil {
		redirectWithError(ctx, "/users", messages.ErrorPrefix+err.Error())
		return
	}
	upstream.HandleResponse(env,
		func(upstream.Envelope) { redirectWithSuccess(ctx, "/users", messages.UserAddedSuccessfully) },
		func(msg string) { redirectWithError(ctx, "/users", msg) },
	)
}

func (h *UsersHandler) Update(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/users", messages.UserNotFound)
		return
	}

	values := forms.Values(ctx)
	if err := forms.Required(values, "firstName", "lastName", "email"); err != nil {
		redirectWithError(ctx, "/users", err.Error())
		return
	}

	upd := user.Update{
		FirstName:  values["firstName"],
		LastName:   values["lastName"],
		Email:      values["email"],
		Department: values["department"],
		Position:   values["position"],
		Role:       values["role"],
		IsActive:   values["isActive"] == "true",
		Salary:     parseSalary(values["salary"]),
	}
	if values["hireDate"] != "" {
		if ms, err := timeutil.DateToTimestamp(values["hireDate"]); err == nil {
			upd.HireDate = ms
		}
	}
	if err := forms.Validate(upd); err != nil {
		redirectWithError(ctx, "/users", err.Error())
		return
	}

	env, err := h.api.UpdateUser(ctx.Request.Context(), userID, upd)
	if err != nil {
		redirectWithError(ctx, "/users", messages.FailedToUpdateUser)
		return
	}
	upstream.HandleResponse(env,
		func(upstream.Envelope) { redirectWithSuccess(ctx, "/users", messages.UserUpdatedSuccessfully) },
		func(msg string) { redirectWithError(ctx, "/users", msg) },
	)
}

func (h *UsersHandler) Delete(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/users", messages.NoUserSelectedForDelete)
		return
	}

	env, err := h.api.DeleteUser(ctx.Request.Context(), userID)
	if err != nil {
		redirectWithError(ctx, "/users", messages.ErrorPrefix+err.Error())
		return
	}
	upstream.HandleResponse(env,
		func(upstream.Envelope) { redirectWithSuccess(ctx, "/users", messages.UserDeletedSuccessfully) },
		func(msg string) { redirectWithError(ctx, "/users", msg) },
	)
}

// ToggleActive activates or deactivates a user based on the posted target
// state.
func (h *UsersHandler) ToggleActive(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/users", messages.UserNotFound)
		return
	}

	active := ctx.PostForm("active") == "true"
	okMsg := messages.UserDeactivated
	if active {
		okMsg = messages.UserActivated
	}

	env, err := h.api.SetUserActive(ctx.Request.Context(), userID, active)
	if err != nil {
		redirectWithError(ctx, "/users", messages.ErrorPrefix+err.Error())
		return
	}
	upstream.HandleResponse(env,
		func(upstream.Envelope) { redirectWithSuccess(ctx, "/users", okMsg) },
		func(msg string) { redirectWithError(ctx, "/users", msg) },
	)
}

func (h *UsersHandler) ResetPassword(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/users", messages.UserNotFound)
		return
	}

	values := forms.Values(ctx)
	if err := forms.Required(values, "newPassword"); err != nil {
		redirectWithError(ctx, "/users", err.Error())
		return
	}

	env, err := h.api.ResetPassword(ctx.Request.Context(), userID, values["newPassword"])
	if err != nil {
		redirectWithError(ctx, "/users", messages.ErrorPrefix+err.Error())
		return
	}
	upstream.HandleResponse(env,
		func(upstream.Envelope) { redirectWithSuccess(ctx, "/users", messages.PasswordResetEmailSent) },
		func(msg string) { redirectWithError(ctx, "/users", msg) },
	)
}

func parseSalary(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
