package usecase_test

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-management-api/config"
	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/repository"
	"clinic-management-api/internal/service"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema and the four
// seeded roles. Single connection so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.AdminProfile{},
		&entity.DoctorProfile{},
		&entity.ReceptionistProfile{},
		&entity.PatientProfile{},
		&entity.AuthToken{},
		&entity.AuditLog{},
	))

	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin},
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor},
		{ID: entity.RoleIDReceptionist, RoleName: entity.RoleReceptionist},
		{ID: entity.RoleIDPatient, RoleName: entity.RolePatient},
	}
	require.NoError(t, db.Create(&roles).Error)

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestCache(t *testing.T) service.ProfileCacheService {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return service.NewProfileCacheService(newTestLogger(), client)
}

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
}

// fixture wires the usecase layer over a fresh in-memory database, the same
// way bootstrap does against Postgres.
type fixture struct {
	db        *gorm.DB
	auth      usecase.AuthUsecase
	profile   usecase.ProfileUsecase
	staff     usecase.StaffUsecase
	patient   usecase.PatientUsecase
	tokenRepo domainRepo.AuthTokenRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()

	userRepo := repository.NewUserRepository()
	adminRepo := repository.NewAdminProfileRepository()
	doctorRepo := repository.NewDoctorProfileRepository()
	receptionistRepo := repository.NewReceptionistProfileRepository()
	patientRepo := repository.NewPatientProfileRepository()
	tokenRepo := repository.NewAuthTokenRepository()
	auditRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditRepo)
	profileCache := newTestCache(t)

	profileUsecase := usecase.NewProfileUsecase(db, log, userRepo, adminRepo, doctorRepo, receptionistRepo, patientRepo, auditService, profileCache)
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientRepo, tokenRepo, newTestJWTService(), auditService, profileUsecase)
	staffUsecase := usecase.NewStaffUsecase(db, log, userRepo, adminRepo, doctorRepo, receptionistRepo, tokenRepo, auditService, profileCache)
	patientUsecase := usecase.NewPatientUsecase(db, log, userRepo, patientRepo)

	return &fixture{
		db:        db,
		auth:      authUsecase,
		profile:   profileUsecase,
		staff:     staffUsecase,
		patient:   patientUsecase,
		tokenRepo: tokenRepo,
	}
}

// seedAdmin creates an admin account with its profile row directly, the way
// the bootstrap seeder does.
func (f *fixture) seedAdmin(t *testing.T, username string) *entity.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		Username:     username,
		PasswordHash: string(hashed),
		RoleID:       entity.RoleIDAdmin,
	}
	require.NoError(t, f.db.Create(user).Error)
	require.NoError(t, f.db.Create(&entity.AdminProfile{UserID: user.ID}).Error)
	return user
}

func (f *fixture) countAuditLogs(t *testing.T, action string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, f.db.Model(&entity.AuditLog{}).Where("action = ?", action).Count(&count).Error)
	return count
}

func strPtr(s string) *string { return &s }

var testCtx = context.Background()
