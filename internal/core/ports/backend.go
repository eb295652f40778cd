package ports

import (
	"context"
	"encoding/json"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
)

// LoginResult is the backend's answer to a login attempt. User is
// optional; some backend versions return only the token.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
}

// CreateBookingPayload is the wire shape for booking creation. The
// backend expects snake_case here regardless of what it returns.
type CreateBookingPayload struct {
	ServiceID     string `json:"service_id"`
	EmployeeID    string `json:"employee_id"`
	BookingTime   string `json:"booking_time"`
	EndTime       string `json:"end_time"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes,omitempty"`
}

// BackendClient is the transport boundary to the salon backend. List and
// create calls return the raw response body; shape tolerance lives in the
// normalizer, not here.
type BackendClient interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	FetchServices(ctx context.Context) (json.RawMessage, error)
	FetchEmployees(ctx context.Context) (json.RawMessage, error)
	FetchBookings(ctx context.Context) (json.RawMessage, error)
	CreateBooking(ctx context.Context, payload CreateBookingPayload) (json.RawMessage, error)
}
