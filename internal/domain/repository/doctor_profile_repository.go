package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByID(db *gorm.DB, id uint) (*entity.DoctorProfile, error)
	FindByUserID(db *gorm.DB, userID uint) (*entity.DoctorProfile, error)
	FindByLicenseNo(db *gorm.DB, licenseNo string) (*entity.DoctorProfile, error)
	FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	DeleteByUserID(db *gorm.DB, userID uint) error
}
