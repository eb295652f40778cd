package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials means login was rejected, or the login response
	// carried no token.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized means the backend rejected the current token on an
	// authenticated call. The session has already been cleared when this
	// error is returned.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBackendUnavailable covers network failures and 5xx responses from
	// the salon backend. Recovery is manual retry only.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// ValidationError carries field-keyed messages for a rejected form.
// It never reaches the network boundary: validation runs before any
// backend call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
