package handler

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createBookingRequest struct {
	ServiceID     string `json:"serviceId"`
	EmployeeID    string `json:"employeeId"`
	Start         string `json:"start"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	Notes         string `json:"notes"`
}

// --- Response types ---
// Owned by the transport layer so the console's JSON contract is not
// coupled to internal domain changes.

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	UserType string `json:"user_type,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type sessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *userResponse `json:"user,omitempty"`
}

type serviceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type employeeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Photo string `json:"photo,omitempty"`
}

type bookingResponse struct {
	ID            string `json:"id"`
	ServiceID     string `json:"serviceId"`
	EmployeeID    string `json:"employeeId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Fabricated    bool   `json:"fabricated,omitempty"`
}

type dashboardResponse struct {
	Services  []serviceResponse  `json:"services"`
	Employees []employeeResponse `json:"employees"`
	Bookings  []bookingResponse  `json:"bookings"`
}
