package dto

// LoginRequest accepts either a username or an email in Username.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// RegisterRequest carries self-registration data. Fields are validated by the
// auth service so each failure gets its own message.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// RegisterResponse is returned for both successful and rejected registrations.
type RegisterResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

// MeResponse describes the caller as seen through its token.
type MeResponse struct {
	IdentityID int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	AccessTier string `json:"accessTier"`
}

// ProvisioningReport summarises one identity provisioning run.
type ProvisioningReport struct {
	Examined int `json:"examined"`
	Created  int `json:"created"`
	Linked   int `json:"linked"`
	Skipped  int `json:"skipped"`
}
