package database

import (
	"fmt"

	"clinic-management-api/config"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureDefaultAdmin creates the bootstrap admin account and its profile on
// first start. Idempotent: an existing account with the configured username
// is left untouched.
func EnsureDefaultAdmin(db *gorm.DB, cfg config.SeedConfig, roleRepo repository.RoleRepository) error {
	if cfg.AdminPassword == "" {
		logrus.Warn("SEED_ADMIN_PASSWORD not set, skipping default admin seed")
		return nil
	}

	role, err := roleRepo.FindByID(db, entity.RoleIDAdmin)
	if err != nil {
		return fmt.Errorf("failed to look up admin role: %w", err)
	}
	if role == nil {
		return fmt.Errorf("admin role missing, run migrations before seeding")
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user := &entity.User{
			Username:     cfg.AdminUsername,
			PasswordHash: string(hashed),
			RoleID:       entity.RoleIDAdmin,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if err := tx.Create(&entity.AdminProfile{UserID: user.ID}).Error; err != nil {
			return err
		}

		logrus.Infof("Default admin account %q created", cfg.AdminUsername)
		return nil
	})
}
