package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ReceptionistProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ReceptionistProfile) error
	FindByID(db *gorm.DB, id uint) (*entity.ReceptionistProfile, error)
	FindByUserID(db *gorm.DB, userID uint) (*entity.ReceptionistProfile, error)
	FindByNIC(db *gorm.DB, nic string) (*entity.ReceptionistProfile, error)
	FindAll(db *gorm.DB) ([]entity.ReceptionistProfile, error)
	Update(db *gorm.DB, profile *entity.ReceptionistProfile) error
	DeleteByUserID(db *gorm.DB, userID uint) error
}
