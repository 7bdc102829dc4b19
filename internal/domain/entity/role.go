package entity

// Role represents a user role in the system. Reference data, seeded once by migration.
type Role struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"role_id"`
	RoleName string `gorm:"type:varchar(15);uniqueIndex;not null" json:"role_name"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants. The encoding is fixed and matches the seeded rows.
const (
	RoleIDAdmin        = 1
	RoleIDDoctor       = 2
	RoleIDReceptionist = 3
	RoleIDPatient      = 4
)

// Role name constants
const (
	RoleAdmin        = "Admin"
	RoleDoctor       = "Doctor"
	RoleReceptionist = "Receptionist"
	RolePatient      = "Patient"
)
