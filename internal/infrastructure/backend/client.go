// Package backend is the transport adapter to the remote salon backend.
// It injects the current bearer token into every outgoing request and
// clears the session when the backend answers 401.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahmedshaban022/revelop-calendar/internal/api/metrics"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/ports"
)

const (
	loginPath     = "/auth/login"
	servicesPath  = "/admin/services"
	employeesPath = "/admin/employees"
	bookingsPath  = "/admin/bookings"

	defaultTimeout  = 15 * time.Second
	maxResponseSize = 4 << 20
)

// SessionSource is the slice of the session manager the transport needs:
// the token for outgoing requests, and Clear for the 401 policy.
type SessionSource interface {
	Token() string
	Clear()
}

// Client talks JSON over HTTP(S) to the salon backend. No retries; the
// timeout belongs to the underlying http.Client.
type Client struct {
	baseURL string
	http    *http.Client
	session SessionSource
	logger  zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, session SessionSource, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		session: session,
		logger:  logger,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login posts the credentials. Decoding is loose: a response without a
// token comes back with Token == "" and the caller decides what that means.
func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	body, err := c.do(ctx, http.MethodPost, loginPath, loginPayload{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var result ports.LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Warn().Err(err).Msg("login response is not a JSON object")
		return &ports.LoginResult{}, nil
	}
	return &result, nil
}

func (c *Client) FetchServices(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, servicesPath, nil)
}

func (c *Client) FetchEmployees(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, employeesPath, nil)
}

func (c *Client) FetchBookings(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, bookingsPath, nil)
}

func (c *Client) CreateBooking(ctx context.Context, payload ports.CreateBookingPayload) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, bookingsPath, payload)
}

// do performs one request with the cross-cutting policies applied: bearer
// injection when a token exists, and forced session clearing on 401.
func (c *Client) do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(path, "network").Inc()
		c.logger.Error().Err(err).Str("path", path).Msg("backend request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, domain.ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(path, "network").Inc()
		return nil, fmt.Errorf("read %s response: %w", path, domain.ErrBackendUnavailable)
	}
	metrics.BackendRequestsTotal.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.session.Clear()
		metrics.SessionEvictionsTotal.Inc()
		c.logger.Warn().Str("path", path).Msg("backend rejected token")
		return nil, domain.ErrUnauthorized
	case resp.StatusCode >= http.StatusInternalServerError:
		c.logger.Error().Int("status", resp.StatusCode).Str("path", path).Msg("backend error")
		return nil, fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, domain.ErrBackendUnavailable)
	case resp.StatusCode >= http.StatusMultipleChoices:
		return nil, fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, errorMessage(body))
	}

	return body, nil
}

// errorMessage pulls a human-readable message out of the backend's error
// envelope, which has used both {"error": ...} and {"message": ...}.
func errorMessage(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return "request rejected"
}
