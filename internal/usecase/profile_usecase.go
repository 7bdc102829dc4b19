package usecase

import (
	"context"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfileUsecase interface {
	// ResolveProfile dispatches on the role id to the matching profile table.
	// An unrecognized role id resolves to (nil, nil), not an error.
	ResolveProfile(ctx context.Context, userID uint, roleID int) (entity.Profile, error)
	GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type profileUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	adminRepo        repository.AdminProfileRepository
	doctorRepo       repository.DoctorProfileRepository
	receptionistRepo repository.ReceptionistProfileRepository
	patientRepo      repository.PatientProfileRepository
	auditService     service.AuditService
	profileCache     service.ProfileCacheService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	adminRepo repository.AdminProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	receptionistRepo repository.ReceptionistProfileRepository,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
	profileCache service.ProfileCacheService,
) ProfileUsecase {
	return &profileUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		adminRepo:        adminRepo,
		doctorRepo:       doctorRepo,
		receptionistRepo: receptionistRepo,
		patientRepo:      patientRepo,
		auditService:     auditService,
		profileCache:     profileCache,
	}
}

// ResolveProfile is the single dispatch point from role id to profile variant.
func (u *profileUsecase) ResolveProfile(ctx context.Context, userID uint, roleID int) (entity.Profile, error) {
	db := u.db.WithContext(ctx)

	switch roleID {
	case entity.RoleIDAdmin:
		profile, err := u.adminRepo.FindByUserID(db, userID)
		if err != nil || profile == nil {
			return nil, err
		}
		return profile, nil
	case entity.RoleIDDoctor:
		profile, err := u.doctorRepo.FindByUserID(db, userID)
		if err != nil || profile == nil {
			return nil, err
		}
		return profile, nil
	case entity.RoleIDReceptionist:
		profile, err := u.receptionistRepo.FindByUserID(db, userID)
		if err != nil || profile == nil {
			return nil, err
		}
		return profile, nil
	case entity.RoleIDPatient:
		profile, err := u.patientRepo.FindByUserID(db, userID)
		if err != nil || profile == nil {
			return nil, err
		}
		return profile, nil
	default:
		return nil, nil
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	if cached, _ := u.profileCache.Get(ctx, userID); cached != nil {
		return cached, nil
	}

	view, err := u.buildView(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.profileCache.Set(ctx, userID, view)
	return view, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := u.applyAccountFields(tx, user, req); err != nil {
		return nil, err
	}

	if err := u.applyProfileFields(tx, user, req); err != nil {
		return nil, err
	}

	if err := u.auditService.Record(tx, &user.ID, entity.AuditActionProfileUpdate, entity.JSON{
		"user_id": user.ID,
		"role_id": user.RoleID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.profileCache.Invalidate(ctx, userID)

	return u.buildView(ctx, userID)
}

// applyAccountFields updates the columns that live on the users table.
func (u *profileUsecase) applyAccountFields(tx *gorm.DB, user *entity.User, req *dto.UpdateProfileRequest) error {
	changed := false

	if req.Email != nil {
		existing, err := u.userRepo.FindByEmail(tx, *req.Email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != user.ID {
			return ErrEmailTaken
		}
		user.Email = req.Email
		changed = true
	}
	if req.ContactNumber != nil {
		user.ContactNumber = req.ContactNumber
		changed = true
	}

	if !changed {
		return nil
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return err
	}
	return nil
}

// applyProfileFields updates the variant row, restricted to the fields legal
// for the caller's role: the full demographic set for patients, full_name only
// for doctors and receptionists, nothing for admins.
func (u *profileUsecase) applyProfileFields(tx *gorm.DB, user *entity.User, req *dto.UpdateProfileRequest) error {
	switch user.RoleID {
	case entity.RoleIDPatient:
		profile, err := u.patientRepo.FindByUserID(tx, user.ID)
		if err != nil {
			return err
		}
		if profile == nil {
			return nil
		}
		changed := false
		if req.FullName != nil {
			profile.FullName = *req.FullName
			changed = true
		}
		if req.Gender != nil {
			profile.Gender = req.Gender
			changed = true
		}
		if req.DateOfBirth != nil {
			dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
			if err != nil {
				return ErrInvalidDateFormat
			}
			profile.DateOfBirth = &dob
			changed = true
		}
		if req.Address != nil {
			profile.Address = req.Address
			changed = true
		}
		if !changed {
			return nil
		}
		return u.patientRepo.Update(tx, profile)

	case entity.RoleIDDoctor:
		if req.FullName == nil {
			return nil
		}
		profile, err := u.doctorRepo.FindByUserID(tx, user.ID)
		if err != nil || profile == nil {
			return err
		}
		profile.FullName = *req.FullName
		return u.doctorRepo.Update(tx, profile)

	case entity.RoleIDReceptionist:
		if req.FullName == nil {
			return nil
		}
		profile, err := u.receptionistRepo.FindByUserID(tx, user.ID)
		if err != nil || profile == nil {
			return err
		}
		profile.FullName = *req.FullName
		return u.receptionistRepo.Update(tx, profile)

	default:
		// admins carry no mutable profile fields
		return nil
	}
}

func (u *profileUsecase) buildView(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := u.ResolveProfile(ctx, user.ID, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to resolve profile: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user, profile), nil
}
