package domain

// User is the profile of the authenticated operator.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	UserType string `json:"user_type,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Session is the operator's bearer credential plus profile. It is created
// on successful login, restored from durable storage at startup, and
// destroyed on logout or when the backend rejects the token.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
