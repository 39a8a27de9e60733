package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lazyhr/hrportal/internal/domain/user"
	"github.com/lazyhr/hrportal/internal/messages"
)

// Ping reports whether the backend answers at all; readiness checks use it.
func (c *Client) Ping(ctx context.Context) error {
	_, _, err := c.request(ctx, http.MethodGet, messages.EndpointUsers, nil)
	return err
}

// ListUsers fetches the full user directory rendered into the users page.
func (c *Client) ListUsers(ctx context.Context) (user.Directory, error) {
	env, err := c.envelope(ctx, http.MethodGet, messages.EndpointUsers, nil)
	if err != nil {
		return nil, err
	}
	if env.Status != messages.StatusSuccess {
		if env.Message != "" {
			return nil, fmt.Errorf("list users: %s", env.Message)
		}
		return nil, fmt.Errorf("list users: %s", messages.UnknownErrorOccurred)
	}
	var dir user.Directory
	if err := env.Decode(&dir); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return dir, nil
}

// UpdateUser persists an edit-form submission.
func (c *Client) UpdateUser(ctx context.Context, userID int64, upd user.Update) (Envelope, error) {
	return c.envelope(ctx, http.MethodPut, fmt.Sprintf(messages.EndpointUserByID, userID), upd)
}

// CreateUser adds a new user.
func (c *Client) CreateUser(ctx context.Context, cr user.Create) (Envelope, error) {
	return c.envelope(ctx, http.MethodPost, messages.EndpointUsers, cr)
}

// DeleteUser deactivates a user; the backend soft-deletes rather than
// removing the row.
func (c *Client) DeleteUser(ctx context.Context, userID int64) (Envelope, error) {
	return c.envelope(ctx, http.MethodPost, fmt.Sprintf(messages.EndpointUserDisable, userID), nil)
}

// SetUserActive flips the active flag through the activate/deactivate
// endpoints.
func (c *Client) SetUserActive(ctx context.Context, userID int64, active bool) (Envelope, error) {
	path := messages.EndpointUserDisable
	if active {
		path = messages.EndpointUserEnable
	}
	return c.envelope(ctx, http.MethodPost, fmt.Sprintf(path, userID), nil)
}

type passwordUpdate struct {
	NewPassword string `json:"newPassword"`
}

// ResetPassword sets a new password for the user. The backend maps this
// endpoint as POST, not PUT.
func (c *Client) ResetPassword(ctx context.Context, userID int64, newPassword string) (Envelope, error) {
	return c.envelope(ctx, http.MethodPost,
		fmt.Sprintf(messages.EndpointUserPasswd, userID), passwordUpdate{NewPassword: newPassword})
}
