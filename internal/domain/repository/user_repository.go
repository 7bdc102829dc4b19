package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

// UserRepository owns account rows. Lookups return (nil, nil) when no row
// matches; absence is a normal outcome, not an error.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByContactNumber(db *gorm.DB, contactNumber string) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, id uint) error
}
