package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type receptionistProfileRepository struct{}

func NewReceptionistProfileRepository() domainRepo.ReceptionistProfileRepository {
	return &receptionistProfileRepository{}
}

func (r *receptionistProfileRepository) Create(db *gorm.DB, profile *entity.ReceptionistProfile) error {
	return db.Create(profile).Error
}

func (r *receptionistProfileRepository) FindByID(db *gorm.DB, id uint) (*entity.ReceptionistProfile, error) {
	var profile entity.ReceptionistProfile
	err := db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *receptionistProfileRepository) FindByUserID(db *gorm.DB, userID uint) (*entity.ReceptionistProfile, error) {
	var profile entity.ReceptionistProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *receptionistProfileRepository) FindByNIC(db *gorm.DB, nic string) (*entity.ReceptionistProfile, error) {
	var profile entity.ReceptionistProfile
	err := db.Where("nic = ?", nic).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *receptionistProfileRepository) FindAll(db *gorm.DB) ([]entity.ReceptionistProfile, error) {
	var profiles []entity.ReceptionistProfile
	err := db.Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *receptionistProfileRepository) Update(db *gorm.DB, profile *entity.ReceptionistProfile) error {
	return db.Save(profile).Error
}

func (r *receptionistProfileRepository) DeleteByUserID(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&entity.ReceptionistProfile{}).Error
}
