package domain

import "time"

// Booking is an appointment plotted against an employee column.
// ServiceID and EmployeeID are foreign keys and may reference entities
// the backend no longer returns; EndTime is always >= StartTime.
type Booking struct {
	ID         string    `json:"id"`
	ServiceID  string    `json:"serviceId"`
	EmployeeID string    `json:"employeeId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`

	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Notes         string `json:"notes,omitempty"`

	// Fabricated is set when normalization had to invent a value for this
	// record (synthesized id, or a start instant defaulted to "now").
	// Callers should treat such bookings as suspect.
	Fabricated bool `json:"fabricated,omitempty"`
}
