// Package upstream is the typed client for the LazyHR backend REST API.
// Every call is a single best-effort attempt: no retries, no client-side
// timeout, no deduplication. Callers branch on the response envelope's
// status field, never on the HTTP status code alone, because the backend
// can answer 200 with an error-shaped body.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lazyhr/hrportal/internal/messages"
	"github.com/lazyhr/hrportal/internal/observability"
)

// Envelope is the backend's uniform response contract.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Decode unmarshals the envelope's data payload into out.
func (e Envelope) Decode(out interface{}) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("envelope has no data")
	}
	return json.Unmarshal(e.Data, out)
}

// HandleResponse applies the success/error branching policy. The success
// callback fires exactly once when status is "success"; otherwise the
// error callback receives the envelope message, or the generic fallback
// when the backend sent none.
func HandleResponse(env Envelope, onSuccess func(Envelope), onError func(string)) {
	if env.Status == messages.StatusSuccess {
		if onSuccess != nil {
			onSuccess(env)
		}
		return
	}
	msg := env.Message
	if msg == "" {
		msg = messages.UnknownErrorOccurred
	}
	if onError != nil {
		onError(msg)
	}
}

type Client struct {
	baseURL string
	httpc   *http.Client
	log     *slog.Logger
	tracer  trace.Tracer
	metrics *observability.UpstreamMetrics
}

// New builds a client for the given API base URL. The underlying
// http.Client carries no timeout: each call is one attempt that lives as
// long as the caller's context.
func New(baseURL string, log *slog.Logger, metrics *observability.UpstreamMetrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		log:     log,
		tracer:  otel.Tracer("hrportal/upstream"),
		metrics: metrics,
	}
}

// request performs one HTTP call and returns the raw body. Transport
// failures and unreadable bodies surface as errors for the caller to
// report; there is no retry path.
func (c *Client) request(ctx context.Context, method, path string, body interface{}) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	ctx, span := c.tracer.Start(ctx, "upstream "+method+" "+routeLabel(path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", routeLabel(path)),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.metrics.Observe(method, routeLabel(path), 0, time.Since(start))
		return nil, nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, nil, fmt.Errorf("read upstream response: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.metrics.Observe(method, routeLabel(path), resp.StatusCode, time.Since(start))
	c.log.DebugContext(ctx, "upstream_call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return resp, raw, nil
}

// envelope performs a call and parses the body as the uniform envelope.
// A non-JSON body is a transport-class failure.
func (c *Client) envelope(ctx context.Context, method, path string, body interface{}) (Envelope, error) {
	_, raw, err := c.request(ctx, method, path, body)
	if err != nil {
		return Envelope{}, err
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode upstream response: %w", err)
	}
	return env, nil
}

// routeLabel strips query strings and collapses numeric path segments so
// metric and span cardinality stays bounded.
func routeLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if isDigits(p) {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
