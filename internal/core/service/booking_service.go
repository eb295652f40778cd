package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/normalize"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/ports"
)

const defaultBookingDuration = 60 * time.Minute

// minPhoneDigits is counted after stripping everything but digits and a
// leading plus sign.
const minPhoneDigits = 7

// BookingService loads the calendar view and creates bookings. It keeps
// the last loaded view in memory so booking creation can derive end times
// from service durations without an extra fetch; the view is replaced
// wholesale on every load, never cached across fetches.
type BookingService struct {
	backend  ports.BackendClient
	logger   zerolog.Logger
	validate *validator.Validate

	mu   sync.Mutex
	view *ports.Dashboard
}

func NewBookingService(backend ports.BackendClient, logger zerolog.Logger) *BookingService {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
	// must not error: the tag name is fixed and the func is non-nil
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return len(phoneDigits(fl.Field().String())) >= minPhoneDigits
	})

	return &BookingService{backend: backend, logger: logger, validate: v}
}

// LoadDashboard fetches services, employees and bookings concurrently and
// joins them: if any fetch fails the whole load fails and the previous
// view stays untouched.
func (s *BookingService) LoadDashboard(ctx context.Context) (*ports.Dashboard, error) {
	var rawServices, rawEmployees, rawBookings json.RawMessage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawServices, err = s.backend.FetchServices(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rawEmployees, err = s.backend.FetchEmployees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rawBookings, err = s.backend.FetchBookings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("dashboard load failed")
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	view := &ports.Dashboard{
		Services:  make([]domain.Service, 0),
		Employees: make([]domain.Employee, 0),
		Bookings:  make([]domain.Booking, 0),
	}
	for _, raw := range normalize.Records(rawServices) {
		view.Services = append(view.Services, normalize.Service(raw))
	}
	for _, raw := range normalize.Records(rawEmployees) {
		view.Employees = append(view.Employees, normalize.Employee(raw))
	}
	for _, raw := range normalize.Records(rawBookings) {
		view.Bookings = append(view.Bookings, normalize.Booking(raw))
	}

	s.mu.Lock()
	s.view = view
	s.mu.Unlock()

	s.logger.Info().
		Int("services", len(view.Services)).
		Int("employees", len(view.Employees)).
		Int("bookings", len(view.Bookings)).
		Msg("dashboard loaded")

	snapshot := *view
	return &snapshot, nil
}

// CreateBooking validates the form, derives the end time from the selected
// service's duration, submits the booking and renormalizes the backend's
// answer before appending it to the current view. Validation failures
// never reach the network.
func (s *BookingService) CreateBooking(ctx context.Context, form ports.BookingForm) (*domain.Booking, error) {
	start, err := s.validateForm(form)
	if err != nil {
		return nil, err
	}

	end := start.Add(s.serviceDuration(form.ServiceID))

	payload := ports.CreateBookingPayload{
		ServiceID:     form.ServiceID,
		EmployeeID:    form.EmployeeID,
		BookingTime:   start.UTC().Format(time.RFC3339),
		EndTime:       end.UTC().Format(time.RFC3339),
		CustomerName:  strings.TrimSpace(form.CustomerName),
		CustomerEmail: strings.TrimSpace(form.CustomerEmail),
		CustomerPhone: strings.TrimSpace(form.CustomerPhone),
		Notes:         strings.TrimSpace(form.Notes),
	}

	raw, err := s.backend.CreateBooking(ctx, payload)
	if err != nil {
		s.logger.Error().Err(err).Str("service_id", form.ServiceID).Msg("booking creation failed")
		return nil, fmt.Errorf("create booking: %w", err)
	}

	booking := normalize.Booking(normalize.Record(raw))

	s.mu.Lock()
	if s.view != nil {
		s.view.Bookings = append(s.view.Bookings, booking)
	}
	s.mu.Unlock()

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("service_id", booking.ServiceID).
		Str("employee_id", booking.EmployeeID).
		Msg("booking created")

	return &booking, nil
}

// bookingFormSchema mirrors ports.BookingForm for validation; the form
// tags are the field keys returned to the console.
type bookingFormSchema struct {
	ServiceID     string `form:"serviceId"     validate:"required"`
	EmployeeID    string `form:"employeeId"    validate:"required"`
	Start         string `form:"start"         validate:"required"`
	CustomerPhone string `form:"customerPhone" validate:"required,phone"`
	CustomerEmail string `form:"customerEmail" validate:"omitempty,email"`
}

func (s *BookingService) validateForm(form ports.BookingForm) (time.Time, error) {
	schema := bookingFormSchema{
		ServiceID:     strings.TrimSpace(form.ServiceID),
		EmployeeID:    strings.TrimSpace(form.EmployeeID),
		Start:         strings.TrimSpace(form.Start),
		CustomerPhone: strings.TrimSpace(form.CustomerPhone),
		CustomerEmail: strings.TrimSpace(form.CustomerEmail),
	}

	fields := make(map[string]string)
	if err := s.validate.Struct(schema); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				fields[fe.Field()] = formFieldMessage(fe)
			}
		} else {
			return time.Time{}, err
		}
	}

	var start time.Time
	if schema.Start != "" {
		var ok bool
		start, ok = normalize.Instant(schema.Start)
		if !ok {
			fields["start"] = "must be a valid date and time"
		}
	}

	if len(fields) > 0 {
		return time.Time{}, &domain.ValidationError{Fields: fields}
	}
	return start, nil
}

// formFieldMessage converts a single validation failure into the
// human-readable message the console shows next to the field.
func formFieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return fmt.Sprintf("must contain at least %d digits", minPhoneDigits)
	default:
		return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
	}
}

// serviceDuration resolves the duration of a service from the current
// view, falling back to one hour when the service or its duration is
// unknown.
func (s *BookingService) serviceDuration(serviceID string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil {
		return defaultBookingDuration
	}
	for _, svc := range s.view.Services {
		if svc.ID == serviceID && svc.Duration > 0 {
			return time.Duration(svc.Duration) * time.Minute
		}
	}
	return defaultBookingDuration
}

// phoneDigits strips everything but digits and a leading plus sign.
func phoneDigits(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
