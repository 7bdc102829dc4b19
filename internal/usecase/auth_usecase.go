package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"
	"clinic-management-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenLifetime = time.Hour

type AuthUsecase interface {
	// RegisterPatient creates the account and its patient profile atomically.
	// actorID is the staff account acting on the walk-in's behalf, nil for
	// self-registration.
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest, actorID *uint) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	patientRepo    repository.PatientProfileRepository
	tokenRepo      repository.AuthTokenRepository
	jwtService     *jwt.JWTService
	auditService   service.AuditService
	profileUsecase ProfileUsecase
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientProfileRepository,
	tokenRepo repository.AuthTokenRepository,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
	profileUsecase ProfileUsecase,
) AuthUsecase {
	return &authUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		patientRepo:    patientRepo,
		tokenRepo:      tokenRepo,
		jwtService:     jwtService,
		auditService:   auditService,
		profileUsecase: profileUsecase,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest, actorID *uint) (*dto.AuthResponse, error) {
	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dob = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Friendly pre-checks; the unique indexes remain the final authority.
	if err := checkAccountAvailable(tx, u.userRepo, req.Username, req.Email); err != nil {
		return nil, err
	}
	existingNIC, err := u.patientRepo.FindByNIC(tx, req.NIC)
	if err != nil {
		return nil, err
	}
	if existingNIC != nil {
		return nil, ErrNICTaken
	}

	user := &entity.User{
		Username: req.Username,
		RoleID:   entity.RoleIDPatient,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}
	if req.ContactNumber != "" {
		user.ContactNumber = &req.ContactNumber
	}
	if err := setPassword(user, req.Password); err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.PatientProfile{
		UserID:      user.ID,
		FullName:    req.FullName,
		NIC:         req.NIC,
		DateOfBirth: dob,
	}
	if req.Gender != "" {
		profile.Gender = &req.Gender
	}
	if req.Address != "" {
		profile.Address = &req.Address
	}

	if err := u.patientRepo.Create(tx, profile); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actorID, entity.AuditActionUserRegister, entity.JSON{
		"user_id":  user.ID,
		"username": user.Username,
		"role_id":  user.RoleID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.issueSession(ctx, user.ID)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	// Unknown username and wrong password collapse into one outcome.
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := u.auditService.Record(u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, entity.JSON{
		"user_id":  user.ID,
		"username": user.Username,
	}); err != nil {
		return nil, err
	}

	return u.issueSession(ctx, user.ID)
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	if err := setPassword(user, req.NewPassword); err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return err
	}

	if err := u.auditService.Record(tx, &user.ID, entity.AuditActionPasswordChange, entity.JSON{
		"user_id": user.ID,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	rawToken := hex.EncodeToString(raw)

	record := &entity.AuthToken{
		UserID:    user.ID,
		Token:     hashToken(rawToken),
		Kind:      entity.TokenKindPasswordReset,
		ExpiresAt: time.Now().Add(resetTokenLifetime),
	}
	if err := u.tokenRepo.Create(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to store reset token: %+v", err)
		return nil, err
	}

	// Mail delivery happens outside this service; the caller owns the raw token.
	return &dto.ForgotPasswordResponse{ResetToken: rawToken}, nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.tokenRepo.FindByToken(tx, hashToken(req.Token))
	if err != nil {
		u.log.Warnf("Failed to look up reset token: %+v", err)
		return err
	}
	if record == nil || record.Kind != entity.TokenKindPasswordReset {
		return ErrInvalidResetToken
	}
	if record.Expired(time.Now()) {
		if err := u.tokenRepo.DeleteByID(tx, record.ID); err != nil {
			return err
		}
		if err := tx.Commit().Error; err != nil {
			return err
		}
		return ErrInvalidResetToken
	}

	user, err := u.userRepo.FindByID(tx, record.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := setPassword(user, req.NewPassword); err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return err
	}

	// A consumed token, and any siblings, must not be replayable.
	if err := u.tokenRepo.DeleteByUserIDAndKind(tx, user.ID, entity.TokenKindPasswordReset); err != nil {
		return err
	}

	if err := u.auditService.Record(tx, &user.ID, entity.AuditActionPasswordReset, entity.JSON{
		"user_id": user.ID,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// issueSession signs a bearer token, records it in the token ledger and returns
// it with the composite identity view.
func (u *authUsecase) issueSession(ctx context.Context, userID uint) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	token, err := u.jwtService.GenerateToken(user)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	record := &entity.AuthToken{
		UserID:    user.ID,
		Token:     hashToken(token),
		Kind:      entity.TokenKindAccess,
		ExpiresAt: time.Now().Add(u.jwtService.GetExpiry()),
	}
	if err := u.tokenRepo.Create(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to record issued token: %+v", err)
		return nil, err
	}

	view, err := u.profileUsecase.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:      view,
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetExpiry().Seconds()),
	}, nil
}

// checkAccountAvailable is the shared username/email pre-check for every
// account creation path.
func checkAccountAvailable(tx *gorm.DB, userRepo repository.UserRepository, username, email string) error {
	existing, err := userRepo.FindByUsername(tx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	if email != "" {
		existing, err := userRepo.FindByEmail(tx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}
	}
	return nil
}

// hashToken stores only a digest of bearer and reset tokens.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
