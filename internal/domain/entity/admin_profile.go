package entity

// AdminProfile represents admin-specific profile data
type AdminProfile struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"admin_id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	// Relationships
	User                 User                  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProvisionedDoctors   []DoctorProfile       `gorm:"foreignKey:AdminID" json:"provisioned_doctors,omitempty"`
	ProvisionedReception []ReceptionistProfile `gorm:"foreignKey:AdminID" json:"provisioned_receptionists,omitempty"`
}

func (AdminProfile) TableName() string {
	return "admin_profiles"
}
