package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type authTokenRepository struct{}

func NewAuthTokenRepository() domainRepo.AuthTokenRepository {
	return &authTokenRepository{}
}

func (r *authTokenRepository) Create(db *gorm.DB, token *entity.AuthToken) error {
	return db.Create(token).Error
}

func (r *authTokenRepository) FindByToken(db *gorm.DB, token string) (*entity.AuthToken, error) {
	var record entity.AuthToken
	err := db.Where("token = ?", token).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *authTokenRepository) FindAll(db *gorm.DB) ([]entity.AuthToken, error) {
	var records []entity.AuthToken
	err := db.Preload("User").Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *authTokenRepository) DeleteByID(db *gorm.DB, id uint) error {
	return db.Delete(&entity.AuthToken{}, id).Error
}

func (r *authTokenRepository) DeleteByUserID(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&entity.AuthToken{}).Error
}

func (r *authTokenRepository) DeleteByUserIDAndKind(db *gorm.DB, userID uint, kind string) error {
	return db.Where("user_id = ? AND kind = ?", userID, kind).Delete(&entity.AuthToken{}).Error
}
