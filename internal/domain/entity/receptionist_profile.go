package entity

// ReceptionistProfile represents receptionist-specific profile data
type ReceptionistProfile struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"receptionist_id"`
	UserID   uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	AdminID  *uint  `gorm:"index" json:"admin_id,omitempty"`
	FullName string `gorm:"type:varchar(100);not null" json:"full_name"`
	NIC      string `gorm:"type:varchar(15);uniqueIndex;not null" json:"nic"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ReceptionistProfile) TableName() string {
	return "receptionist_profiles"
}
