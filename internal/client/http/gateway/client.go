// Package gateway is the HTTP client for the backend REST API. It owns the
// wire contract only: bearer auth, JSON and multipart encoding, error
// surfacing. All lifecycle decisions stay in the domain store.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stroyteam/supplydesk/internal/metrics"
	"github.com/stroyteam/supplydesk/internal/model"
)

type TokenProvider interface {
	Token() (string, error)
}

type Client struct {
	baseURL string
	tokens  TokenProvider
	httpc   *http.Client
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// do runs one JSON round trip. A nil body sends no payload; a nil out
// discards the response payload. 204 is a success with no payload.
func (c *Client) do(ctx context.Context, capability, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	return c.roundTrip(ctx, capability, method, path, reader, "application/json", out)
}

// doAnonymous is do without the bearer header, for the login/register
// exchange that happens before any token exists.
func (c *Client) doAnonymous(ctx context.Context, capability, method, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("gateway: encode %s %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("gateway: new request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.ObserveRequest(capability, method, 0, time.Since(start))
		return fmt.Errorf("gateway: %s %s: %w: %w", method, path, model.ErrBadGateway, err)
	}
	defer resp.Body.Close()
	metrics.ObserveRequest(capability, method, resp.StatusCode, time.Since(start))

	return decodeResponse(method, path, resp, out)
}

// doMultipart runs one multipart/form-data round trip.
func (c *Client) doMultipart(ctx context.Context, capability, method, path string, form *bytes.Buffer, contentType string, out any) error {
	return c.roundTrip(ctx, capability, method, path, form, contentType, out)
}

func (c *Client) roundTrip(ctx context.Context, capability, method, path string, body io.Reader, contentType string, out any) error {
	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.ObserveRequest(capability, method, 0, time.Since(start))
		return fmt.Errorf("gateway: %s %s: %w: %w", method, path, model.ErrBadGateway, err)
	}
	defer resp.Body.Close()
	metrics.ObserveRequest(capability, method, resp.StatusCode, time.Since(start))

	return decodeResponse(method, path, resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("gateway: new request %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

func decodeResponse(method, path string, resp *http.Response, out any) error {
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gateway: read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(method, path, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if looksLikeHTML(raw) {
		return fmt.Errorf("gateway: %s %s: %w: HTML payload", method, path, model.ErrInvalidResponse)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("gateway: decode %s %s: %w: %w", method, path, model.ErrInvalidResponse, err)
	}

	return nil
}

// statusError turns a non-2xx response into a sentinel-tagged error carrying
// the server's human-readable message when one is present.
func statusError(method, path string, status int, raw []byte) error {
	sentinel := model.ErrBadGateway
	switch {
	case status == http.StatusUnauthorized:
		sentinel = model.ErrUnauthorized
	case status == http.StatusForbidden:
		sentinel = model.ErrForbidden
	case status == http.StatusNotFound:
		sentinel = model.ErrNotFound
	case status == http.StatusConflict:
		sentinel = model.ErrConflict
	case status >= 400 && status < 500:
		sentinel = model.ErrValidation
	}

	msg := serverMessage(raw)
	if msg == "" {
		msg = http.StatusText(status)
	}

	return fmt.Errorf("gateway: %s %s: status %d: %s: %w", method, path, status, msg, sentinel)
}

func serverMessage(raw []byte) string {
	if len(raw) == 0 || looksLikeHTML(raw) {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Title
}

func looksLikeHTML(raw []byte) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "<!DOCTYPE html>") ||
		strings.HasPrefix(trimmed, "<html")
}
