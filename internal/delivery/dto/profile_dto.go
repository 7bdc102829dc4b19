package dto

// UserResponse is the composite identity view: account columns, role name and
// the resolved role-specific profile variant.
type UserResponse struct {
	UserID        uint        `json:"user_id"`
	Username      string      `json:"username"`
	Email         *string     `json:"email,omitempty"`
	ContactNumber *string     `json:"contact_number,omitempty"`
	RoleID        int         `json:"role_id"`
	Role          string      `json:"role"`
	Profile       interface{} `json:"profile,omitempty"`
}

type AdminProfileResponse struct {
	AdminID uint `json:"admin_id"`
	UserID  uint `json:"user_id"`
}

type DoctorProfileResponse struct {
	DoctorID       uint   `json:"doctor_id"`
	UserID         uint   `json:"user_id"`
	AdminID        *uint  `json:"admin_id,omitempty"`
	FullName       string `json:"full_name"`
	Specialization string `json:"specialization"`
	LicenseNo      string `json:"license_no"`
}

type ReceptionistProfileResponse struct {
	ReceptionistID uint   `json:"receptionist_id"`
	UserID         uint   `json:"user_id"`
	AdminID        *uint  `json:"admin_id,omitempty"`
	FullName       string `json:"full_name"`
	NIC            string `json:"nic"`
}

type PatientProfileResponse struct {
	PatientID   uint    `json:"patient_id"`
	UserID      uint    `json:"user_id"`
	FullName    string  `json:"full_name"`
	NIC         string  `json:"nic"`
	Gender      *string `json:"gender,omitempty"`
	DateOfBirth string  `json:"date_of_birth,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// UpdateProfileRequest carries optional account and profile fields. Which of
// them apply depends on the caller's role; fields outside the role's variant
// are ignored.
type UpdateProfileRequest struct {
	Email         *string `json:"email" validate:"omitempty,email"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,min=10,max=20"`
	FullName      *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Address       *string `json:"address" validate:"omitempty,max=255"`
}
