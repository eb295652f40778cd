package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/ports"
)

func okJSON(body string) func(ctx context.Context) (json.RawMessage, error) {
	return func(_ context.Context) (json.RawMessage, error) {
		return json.RawMessage(body), nil
	}
}

func newDashboardBackend() *stubBackend {
	return &stubBackend{
		servicesFn:  okJSON(`[{"id":"s1","name":"Cut","duration":30}]`),
		employeesFn: okJSON(`{"data":[{"id":"e1","first_name":"Sam","last_name":"Rivera"}]}`),
		bookingsFn:  okJSON(`[{"id":"b1","service_id":"s1","employee_id":"e1","booking_time":"2024-01-01T09:00:00Z"}]`),
	}
}

func TestBookingService_LoadDashboard(t *testing.T) {
	svc := NewBookingService(newDashboardBackend(), zerolog.Nop())

	dashboard, err := svc.LoadDashboard(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(dashboard.Services) != 1 || len(dashboard.Employees) != 1 || len(dashboard.Bookings) != 1 {
		t.Fatalf("unexpected counts: %d/%d/%d", len(dashboard.Services), len(dashboard.Employees), len(dashboard.Bookings))
	}
	if dashboard.Employees[0].Name != "Sam Rivera" {
		t.Fatalf("expected normalized employee, got %+v", dashboard.Employees[0])
	}
	if !dashboard.Bookings[0].EndTime.Equal(dashboard.Bookings[0].StartTime.Add(60 * time.Minute)) {
		t.Fatalf("expected derived end time, got %+v", dashboard.Bookings[0])
	}
}

func TestBookingService_LoadDashboard_AllOrNothing(t *testing.T) {
	backend := newDashboardBackend()
	backend.employeesFn = func(_ context.Context) (json.RawMessage, error) {
		return nil, domain.ErrBackendUnavailable
	}
	svc := NewBookingService(backend, zerolog.Nop())

	if _, err := svc.LoadDashboard(context.Background()); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected joined failure, got %v", err)
	}

	// Nothing committed: booking creation still sees no services and uses
	// the default duration.
	if d := svc.serviceDuration("s1"); d != 60*time.Minute {
		t.Fatalf("expected default duration after failed load, got %v", d)
	}
}

func TestBookingService_CreateBooking_EndTimeFromServiceDuration(t *testing.T) {
	backend := newDashboardBackend()
	var submitted ports.CreateBookingPayload
	backend.createFn = func(_ context.Context, payload ports.CreateBookingPayload) (json.RawMessage, error) {
		submitted = payload
		return json.RawMessage(`{"id":"b2","service_id":"s1","employee_id":"e1","booking_time":"2024-01-01T10:00:00Z","end_time":"2024-01-01T10:30:00Z"}`), nil
	}
	svc := NewBookingService(backend, zerolog.Nop())
	if _, err := svc.LoadDashboard(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	booking, err := svc.CreateBooking(context.Background(), ports.BookingForm{
		ServiceID:     "s1",
		EmployeeID:    "e1",
		Start:         "2024-01-01T10:00",
		CustomerPhone: "5551234567",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if submitted.BookingTime != "2024-01-01T10:00:00Z" {
		t.Fatalf("unexpected booking_time: %q", submitted.BookingTime)
	}
	if submitted.EndTime != "2024-01-01T10:30:00Z" {
		t.Fatalf("expected end = start + 30min, got %q", submitted.EndTime)
	}
	if submitted.ServiceID != "s1" || submitted.EmployeeID != "e1" || submitted.CustomerPhone != "5551234567" {
		t.Fatalf("unexpected payload: %+v", submitted)
	}

	if booking.ID != "b2" {
		t.Fatalf("expected renormalized response booking, got %+v", booking)
	}
	if !booking.EndTime.Equal(booking.StartTime.Add(30 * time.Minute)) {
		t.Fatalf("unexpected booking times: %+v", booking)
	}
}

func TestBookingService_CreateBooking_DefaultDurationWhenServiceUnknown(t *testing.T) {
	backend := newDashboardBackend()
	var submitted ports.CreateBookingPayload
	backend.createFn = func(_ context.Context, payload ports.CreateBookingPayload) (json.RawMessage, error) {
		submitted = payload
		return json.RawMessage(`{"id":"b3"}`), nil
	}
	svc := NewBookingService(backend, zerolog.Nop())

	_, err := svc.CreateBooking(context.Background(), ports.BookingForm{
		ServiceID:     "missing",
		EmployeeID:    "e1",
		Start:         "2024-01-01T10:00",
		CustomerPhone: "5551234567",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if submitted.EndTime != "2024-01-01T11:00:00Z" {
		t.Fatalf("expected 60min default, got %q", submitted.EndTime)
	}
}

func TestBookingService_CreateBooking_Validation(t *testing.T) {
	backend := newDashboardBackend()
	backend.createFn = func(_ context.Context, _ ports.CreateBookingPayload) (json.RawMessage, error) {
		t.Fatalf("backend must not be called on validation failure")
		return nil, nil
	}
	svc := NewBookingService(backend, zerolog.Nop())

	cases := []struct {
		name  string
		form  ports.BookingForm
		field string
	}{
		{
			name:  "missing service",
			form:  ports.BookingForm{EmployeeID: "e1", Start: "2024-01-01T10:00", CustomerPhone: "5551234567"},
			field: "serviceId",
		},
		{
			name:  "missing employee",
			form:  ports.BookingForm{ServiceID: "s1", Start: "2024-01-01T10:00", CustomerPhone: "5551234567"},
			field: "employeeId",
		},
		{
			name:  "missing start",
			form:  ports.BookingForm{ServiceID: "s1", EmployeeID: "e1", CustomerPhone: "5551234567"},
			field: "start",
		},
		{
			name:  "unparseable start",
			form:  ports.BookingForm{ServiceID: "s1", EmployeeID: "e1", Start: "tomorrow", CustomerPhone: "5551234567"},
			field: "start",
		},
		{
			name:  "short phone",
			form:  ports.BookingForm{ServiceID: "s1", EmployeeID: "e1", Start: "2024-01-01T10:00", CustomerPhone: "123"},
			field: "customerPhone",
		},
		{
			name:  "bad email",
			form:  ports.BookingForm{ServiceID: "s1", EmployeeID: "e1", Start: "2024-01-01T10:00", CustomerPhone: "5551234567", CustomerEmail: "not-an-email"},
			field: "customerEmail",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), tc.form)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Fields[tc.field] == "" {
				t.Fatalf("expected failure keyed on %q, got %+v", tc.field, ve.Fields)
			}
		})
	}
}

func TestBookingService_CreateBooking_AcceptsFormattedPhone(t *testing.T) {
	backend := newDashboardBackend()
	backend.createFn = func(_ context.Context, _ ports.CreateBookingPayload) (json.RawMessage, error) {
		return json.RawMessage(`{"id":"b4"}`), nil
	}
	svc := NewBookingService(backend, zerolog.Nop())

	_, err := svc.CreateBooking(context.Background(), ports.BookingForm{
		ServiceID:     "s1",
		EmployeeID:    "e1",
		Start:         "2024-01-01T10:00",
		CustomerPhone: "+1 555 123 4567",
	})
	if err != nil {
		t.Fatalf("formatted phone must pass, got %v", err)
	}
}

func TestBookingService_CreateBooking_OptionalEmailOmitted(t *testing.T) {
	backend := newDashboardBackend()
	backend.createFn = func(_ context.Context, _ ports.CreateBookingPayload) (json.RawMessage, error) {
		return json.RawMessage(`{"id":"b5"}`), nil
	}
	svc := NewBookingService(backend, zerolog.Nop())

	_, err := svc.CreateBooking(context.Background(), ports.BookingForm{
		ServiceID:     "s1",
		EmployeeID:    "e1",
		Start:         "2024-01-01T10:00",
		CustomerPhone: "5551234567",
	})
	if err != nil {
		t.Fatalf("omitted email must pass, got %v", err)
	}
}

func TestBookingService_CreateBooking_AppendsToView(t *testing.T) {
	backend := newDashboardBackend()
	backend.createFn = func(_ context.Context, _ ports.CreateBookingPayload) (json.RawMessage, error) {
		return json.RawMessage(`{"data":{"id":"b9","service_id":"s1","employee_id":"e1","booking_time":"2024-01-02T10:00:00Z"}}`), nil
	}
	svc := NewBookingService(backend, zerolog.Nop())
	if _, err := svc.LoadDashboard(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if _, err := svc.CreateBooking(context.Background(), ports.BookingForm{
		ServiceID:     "s1",
		EmployeeID:    "e1",
		Start:         "2024-01-02T10:00",
		CustomerPhone: "5551234567",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.view.Bookings) != 2 {
		t.Fatalf("expected booking appended to view, got %d", len(svc.view.Bookings))
	}
	if svc.view.Bookings[1].ID != "b9" {
		t.Fatalf("unexpected appended booking: %+v", svc.view.Bookings[1])
	}
}
