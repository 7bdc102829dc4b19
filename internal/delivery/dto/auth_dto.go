package dto

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterPatientRequest is used both for self-registration and for the
// receptionist walk-in registration flow.
type RegisterPatientRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=50"`
	Password      string `json:"password" validate:"required,min=6"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactNumber string `json:"contact_number" validate:"omitempty,min=10,max=20"`
	FullName      string `json:"full_name" validate:"required,min=2,max=100"`
	NIC           string `json:"nic" validate:"required,nic"`
	Gender        string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth   string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Address       string `json:"address" validate:"omitempty,max=255"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Response DTOs

type AuthResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
}

type ForgotPasswordResponse struct {
	ResetToken string `json:"reset_token"`
}
