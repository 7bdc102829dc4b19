package usecase

import (
	"errors"
	"strings"

	"clinic-management-api/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// Login never reveals whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongPassword      = errors.New("current password is incorrect")

	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already registered")
	ErrNICTaken      = errors.New("NIC already registered")
	ErrLicenseTaken  = errors.New("license number already registered")
	// ErrConflict is the generic outcome when the store's unique index fires
	// after the friendlier pre-checks passed.
	ErrConflict = errors.New("resource already exists")

	ErrUserNotFound         = errors.New("user not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrReceptionistNotFound = errors.New("receptionist not found")
	ErrAdminRecordNotFound  = errors.New("admin record not found")

	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

// setPassword is the single hashing boundary: registration, staff provisioning
// and password changes all go through it. bcrypt salts per call, so equal
// passwords never share a stored hash.
func setPassword(user *entity.User, rawPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)
	return nil
}

// isUniqueViolation detects a unique index firing regardless of driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// drivers without error translation surface the raw constraint message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
