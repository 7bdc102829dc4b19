package entity

import "time"

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"patient_id"`
	UserID      uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName    string     `gorm:"type:varchar(100);not null" json:"full_name"`
	NIC         string     `gorm:"type:varchar(15);uniqueIndex;not null" json:"nic"`
	Gender      *string    `gorm:"type:varchar(6)" json:"gender,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address     *string    `gorm:"type:varchar(255)" json:"address,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)
