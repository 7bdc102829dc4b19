package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AdminProfileRepository interface {
	Create(db *gorm.DB, profile *entity.AdminProfile) error
	FindByUserID(db *gorm.DB, userID uint) (*entity.AdminProfile, error)
	DeleteByUserID(db *gorm.DB, userID uint) error
}
