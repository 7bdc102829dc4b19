package entity

// User represents the centralized authentication table shared by all roles
type User struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username      string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash  string  `gorm:"type:varchar(255);not null" json:"-"`
	Email         *string `gorm:"type:varchar(100);uniqueIndex" json:"email,omitempty"`
	ContactNumber *string `gorm:"type:varchar(20)" json:"contact_number,omitempty"`
	RoleID        int     `gorm:"not null;index" json:"role_id"`

	// Relationships
	Role                Role                 `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	AdminProfile        *AdminProfile        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"admin_profile,omitempty"`
	DoctorProfile       *DoctorProfile       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"doctor_profile,omitempty"`
	ReceptionistProfile *ReceptionistProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"receptionist_profile,omitempty"`
	PatientProfile      *PatientProfile      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"patient_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}
