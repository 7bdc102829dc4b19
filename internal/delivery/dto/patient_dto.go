package dto

// PatientLookupResponse is the receptionist desk search result: patient row
// joined with the owning account's contact columns.
type PatientLookupResponse struct {
	PatientID     uint    `json:"patient_id"`
	UserID        uint    `json:"user_id"`
	FullName      string  `json:"full_name"`
	NIC           string  `json:"nic"`
	Gender        *string `json:"gender,omitempty"`
	DateOfBirth   string  `json:"date_of_birth,omitempty"`
	Address       *string `json:"address,omitempty"`
	Username      string  `json:"username"`
	Email         *string `json:"email,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
}

type PatientSearchResponse struct {
	Exists  bool                   `json:"exists"`
	Patient *PatientLookupResponse `json:"patient,omitempty"`
}
