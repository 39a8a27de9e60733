package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lazyhr/hrportal/internal/domain/leave"
	"github.com/lazyhr/hrportal/internal/messages"
)

// ErrUnexpectedShape marks a leave-list response that matched none of the
// known backend shapes. Callers fall back to a full page re-render.
var ErrUnexpectedShape = errors.New("unexpected leave list response shape")

// ApplyLeave submits a new leave request.
func (c *Client) ApplyLeave(ctx context.Context, sub leave.Submission) (Envelope, error) {
	return c.envelope(ctx, http.MethodPost, messages.EndpointLeaveApply, sub)
}

// UpdateLeave edits an existing (still pending) leave request.
func (c *Client) UpdateLeave(ctx context.Context, leaveID int64, sub leave.Submission) (Envelope, error) {
	return c.envelope(ctx, http.MethodPut, fmt.Sprintf(messages.EndpointLeaveUpdate, leaveID), sub)
}

// GetLeave fetches a single leave request; the backend wraps it in the
// envelope's data field, but a bare object is tolerated too.
func (c *Client) GetLeave(ctx context.Context, leaveID int64) (leave.Request, error) {
	_, raw, err := c.request(ctx, http.MethodGet, fmt.Sprintf(messages.EndpointLeaveByID, leaveID), nil)
	if err != nil {
		return leave.Request{}, err
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		var req leave.Request
		if err := json.Unmarshal(env.Data, &req); err == nil && req.ID != 0 {
			return req, nil
		}
	}

	var req leave.Request
	if err := json.Unmarshal(raw, &req); err != nil || req.ID == 0 {
		return leave.Request{}, leave.ErrNotFound
	}
	return req, nil
}

// leaveListBody covers the three list shapes the backend has been observed
// to produce: an envelope with a data array, a bare array, and a paged
// {content: [...]} wrapper. Each variant is handled explicitly; anything
// else is ErrUnexpectedShape.
type leaveListBody struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Content json.RawMessage `json:"content"`
}

// ListUserLeaves fetches all leave requests for a user.
func (c *Client) ListUserLeaves(ctx context.Context, userID int64) ([]leave.Request, error) {
	_, raw, err := c.request(ctx, http.MethodGet, fmt.Sprintf(messages.EndpointLeaveUser, userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeLeaveList(raw)
}

func decodeLeaveList(raw []byte) ([]leave.Request, error) {
	var bare []leave.Request
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	var body leaveListBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	var out []leave.Request
	if len(body.Data) > 0 && json.Unmarshal(body.Data, &out) == nil {
		return out, nil
	}
	if len(body.Content) > 0 && json.Unmarshal(body.Content, &out) == nil {
		return out, nil
	}
	return nil, ErrUnexpectedShape
}

// cancelBody captures the inconsistent success signals the cancel endpoint
// answers with across backend versions: a normal envelope, a bare
// {message: "Cancelled"}, or {cancelled: true}. All three mean success and
// the check is preserved verbatim.
type cancelBody struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Cancelled bool   `json:"cancelled"`
}

// CancelLeave soft-deletes a pending leave request.
func (c *Client) CancelLeave(ctx context.Context, leaveID, userID int64) error {
	resp, raw, err := c.request(ctx, http.MethodDelete,
		fmt.Sprintf(messages.EndpointLeaveCancel, leaveID, userID), nil)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned status: %d", resp.StatusCode)
	}

	var body cancelBody
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return fmt.Errorf("decode cancel response: %w", err)
		}
	}
	if body.Status == messages.StatusSuccess || body.Message == messages.CancelledStatus || body.Cancelled {
		return nil
	}
	if body.Message != "" {
		return errors.New(body.Message)
	}
	return errors.New(messages.UnknownErrorOccurred)
}
