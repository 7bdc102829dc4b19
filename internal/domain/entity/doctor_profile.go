package entity

// DoctorProfile represents doctor-specific profile data. AdminID records the
// provisioning admin and may be null when the lineage is unknown.
type DoctorProfile struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"doctor_id"`
	UserID         uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	AdminID        *uint  `gorm:"index" json:"admin_id,omitempty"`
	FullName       string `gorm:"type:varchar(100);not null" json:"full_name"`
	Specialization string `gorm:"type:varchar(100);not null" json:"specialization"`
	LicenseNo      string `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_no"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
