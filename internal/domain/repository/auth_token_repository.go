package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AuthTokenRepository interface {
	Create(db *gorm.DB, token *entity.AuthToken) error
	FindByToken(db *gorm.DB, token string) (*entity.AuthToken, error)
	FindAll(db *gorm.DB) ([]entity.AuthToken, error)
	DeleteByID(db *gorm.DB, id uint) error
	DeleteByUserID(db *gorm.DB, userID uint) error
	DeleteByUserIDAndKind(db *gorm.DB, userID uint, kind string) error
}
