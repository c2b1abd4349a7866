package dto

// AdminLoginRequest represents admin login credentials
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// FacultyLoginRequest represents a faculty login attempt. No password is
// involved; the username is normalized before lookup.
type FacultyLoginRequest struct {
	Username string `json:"username" binding:"required"`
}

// LoginResponse is the uniform response shape shared by both login flows.
// Username is set on successful admin login, FacultyID on successful faculty
// login. Failed logins still return HTTP 200 with Success=false.
type LoginResponse struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Username  *string `json:"username,omitempty"`
	FacultyID *int64  `json:"faculty_id,omitempty"`
}
