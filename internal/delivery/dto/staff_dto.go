package dto

import "time"

// Admin provisioning DTOs

type CreateDoctorRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=50"`
	Password       string `json:"password" validate:"required,min=6"`
	Email          string `json:"email" validate:"omitempty,email"`
	ContactNumber  string `json:"contact_number" validate:"omitempty,min=10,max=20"`
	FullName       string `json:"full_name" validate:"required,min=2,max=100"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	LicenseNo      string `json:"license_no" validate:"required,min=5,max=50"`
}

type UpdateDoctorRequest struct {
	Email          *string `json:"email" validate:"omitempty,email"`
	ContactNumber  *string `json:"contact_number" validate:"omitempty,min=10,max=20"`
	FullName       *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
}

type DoctorResponse struct {
	DoctorID       uint    `json:"doctor_id"`
	UserID         uint    `json:"user_id"`
	AdminID        *uint   `json:"admin_id,omitempty"`
	Username       string  `json:"username"`
	Email          *string `json:"email,omitempty"`
	ContactNumber  *string `json:"contact_number,omitempty"`
	FullName       string  `json:"full_name"`
	Specialization string  `json:"specialization"`
	LicenseNo      string  `json:"license_no"`
}

type CreateReceptionistRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=50"`
	Password      string `json:"password" validate:"required,min=6"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactNumber string `json:"contact_number" validate:"omitempty,min=10,max=20"`
	FullName      string `json:"full_name" validate:"required,min=2,max=100"`
	NIC           string `json:"nic" validate:"required,nic"`
}

type UpdateReceptionistRequest struct {
	Email         *string `json:"email" validate:"omitempty,email"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,min=10,max=20"`
	FullName      *string `json:"full_name" validate:"omitempty,min=2,max=100"`
}

type ReceptionistResponse struct {
	ReceptionistID uint    `json:"receptionist_id"`
	UserID         uint    `json:"user_id"`
	AdminID        *uint   `json:"admin_id,omitempty"`
	Username       string  `json:"username"`
	Email          *string `json:"email,omitempty"`
	ContactNumber  *string `json:"contact_number,omitempty"`
	FullName       string  `json:"full_name"`
	NIC            string  `json:"nic"`
}

// TokenRecordResponse lists a persisted token row for the admin audit view.
type TokenRecordResponse struct {
	TokenID   uint      `json:"token_id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
