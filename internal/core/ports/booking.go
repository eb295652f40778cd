package ports

import (
	"context"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
)

// BookingForm is the new-booking input as submitted by the console form.
// Start is the raw date/time string; parsing is part of validation.
type BookingForm struct {
	ServiceID     string
	EmployeeID    string
	Start         string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         string
}

// Dashboard is the joined view the calendar renders: all three data sets
// or none.
type Dashboard struct {
	Services  []domain.Service
	Employees []domain.Employee
	Bookings  []domain.Booking
}

// BookingService orchestrates dashboard loading and booking creation.
type BookingService interface {
	LoadDashboard(ctx context.Context) (*Dashboard, error)
	CreateBooking(ctx context.Context, form BookingForm) (*domain.Booking, error)
}
