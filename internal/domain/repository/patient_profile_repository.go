package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserID(db *gorm.DB, userID uint) (*entity.PatientProfile, error)
	FindByNIC(db *gorm.DB, nic string) (*entity.PatientProfile, error)
	FindByFullNameLike(db *gorm.DB, name string) (*entity.PatientProfile, error)
	Update(db *gorm.DB, profile *entity.PatientProfile) error
	DeleteByUserID(db *gorm.DB, userID uint) error
}
