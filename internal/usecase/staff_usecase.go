package usecase

import (
	"context"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StaffUsecase covers admin-side provisioning of doctor and receptionist
// accounts, plus the token ledger listing.
type StaffUsecase interface {
	CreateDoctor(ctx context.Context, adminUserID uint, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, actorID uint, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, actorID uint, doctorID uint) error

	CreateReceptionist(ctx context.Context, adminUserID uint, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error)
	ListReceptionists(ctx context.Context) ([]dto.ReceptionistResponse, error)
	UpdateReceptionist(ctx context.Context, actorID uint, receptionistID uint, req *dto.UpdateReceptionistRequest) (*dto.ReceptionistResponse, error)
	DeleteReceptionist(ctx context.Context, actorID uint, receptionistID uint) error

	ListTokens(ctx context.Context) ([]dto.TokenRecordResponse, error)
}

type staffUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	adminRepo        repository.AdminProfileRepository
	doctorRepo       repository.DoctorProfileRepository
	receptionistRepo repository.ReceptionistProfileRepository
	tokenRepo        repository.AuthTokenRepository
	auditService     service.AuditService
	profileCache     service.ProfileCacheService
}

func NewStaffUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	adminRepo repository.AdminProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	receptionistRepo repository.ReceptionistProfileRepository,
	tokenRepo repository.AuthTokenRepository,
	auditService service.AuditService,
	profileCache service.ProfileCacheService,
) StaffUsecase {
	return &staffUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		adminRepo:        adminRepo,
		doctorRepo:       doctorRepo,
		receptionistRepo: receptionistRepo,
		tokenRepo:        tokenRepo,
		auditService:     auditService,
		profileCache:     profileCache,
	}
}

func (u *staffUsecase) CreateDoctor(ctx context.Context, adminUserID uint, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.adminRepo.FindByUserID(tx, adminUserID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminRecordNotFound
	}

	if err := checkAccountAvailable(tx, u.userRepo, req.Username, req.Email); err != nil {
		return nil, err
	}
	existingLicense, err := u.doctorRepo.FindByLicenseNo(tx, req.LicenseNo)
	if err != nil {
		return nil, err
	}
	if existingLicense != nil {
		return nil, ErrLicenseTaken
	}

	user, err := u.createStaffUser(tx, req.Username, req.Password, req.Email, req.ContactNumber, entity.RoleIDDoctor)
	if err != nil {
		return nil, err
	}

	profile := &entity.DoctorProfile{
		UserID:         user.ID,
		AdminID:        &admin.ID,
		FullName:       req.FullName,
		Specialization: req.Specialization,
		LicenseNo:      req.LicenseNo,
	}
	if err := u.doctorRepo.Create(tx, profile); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &adminUserID, entity.AuditActionDoctorCreate, entity.JSON{
		"user_id":    user.ID,
		"doctor_id":  profile.ID,
		"license_no": profile.LicenseNo,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(profile, user), nil
}

func (u *staffUsecase) ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	profiles, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	responses := make([]dto.DoctorResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *converter.DoctorToResponse(&profiles[i], &profiles[i].User))
	}
	return responses, nil
}

func (u *staffUsecase) UpdateDoctor(ctx context.Context, actorID uint, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	user, err := u.userRepo.FindByID(tx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := u.updateStaffAccount(tx, user, req.Email, req.ContactNumber); err != nil {
		return nil, err
	}

	// license_no is immutable after provisioning
	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Specialization != nil {
		profile.Specialization = *req.Specialization
	}
	if req.FullName != nil || req.Specialization != nil {
		if err := u.doctorRepo.Update(tx, profile); err != nil {
			u.log.Warnf("Failed to update doctor profile: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionDoctorUpdate, entity.JSON{
		"doctor_id": profile.ID,
		"user_id":   user.ID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.profileCache.Invalidate(ctx, user.ID)

	return converter.DoctorToResponse(profile, user), nil
}

func (u *staffUsecase) DeleteDoctor(ctx context.Context, actorID uint, doctorID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	if err := u.deleteStaffAccount(tx, profile.UserID, func(tx *gorm.DB) error {
		return u.doctorRepo.DeleteByUserID(tx, profile.UserID)
	}); err != nil {
		return err
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionDoctorDelete, entity.JSON{
		"doctor_id": profile.ID,
		"user_id":   profile.UserID,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.profileCache.Invalidate(ctx, profile.UserID)
	return nil
}

func (u *staffUsecase) CreateReceptionist(ctx context.Context, adminUserID uint, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.adminRepo.FindByUserID(tx, adminUserID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminRecordNotFound
	}

	if err := checkAccountAvailable(tx, u.userRepo, req.Username, req.Email); err != nil {
		return nil, err
	}
	existingNIC, err := u.receptionistRepo.FindByNIC(tx, req.NIC)
	if err != nil {
		return nil, err
	}
	if existingNIC != nil {
		return nil, ErrNICTaken
	}

	user, err := u.createStaffUser(tx, req.Username, req.Password, req.Email, req.ContactNumber, entity.RoleIDReceptionist)
	if err != nil {
		return nil, err
	}

	profile := &entity.ReceptionistProfile{
		UserID:   user.ID,
		AdminID:  &admin.ID,
		FullName: req.FullName,
		NIC:      req.NIC,
	}
	if err := u.receptionistRepo.Create(tx, profile); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		u.log.Warnf("Failed to create receptionist profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &adminUserID, entity.AuditActionReceptionistCreate, entity.JSON{
		"user_id":         user.ID,
		"receptionist_id": profile.ID,
		"nic":             profile.NIC,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReceptionistToResponse(profile, user), nil
}

func (u *staffUsecase) ListReceptionists(ctx context.Context) ([]dto.ReceptionistResponse, error) {
	profiles, err := u.receptionistRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list receptionists: %+v", err)
		return nil, err
	}

	responses := make([]dto.ReceptionistResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *converter.ReceptionistToResponse(&profiles[i], &profiles[i].User))
	}
	return responses, nil
}

func (u *staffUsecase) UpdateReceptionist(ctx context.Context, actorID uint, receptionistID uint, req *dto.UpdateReceptionistRequest) (*dto.ReceptionistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.receptionistRepo.FindByID(tx, receptionistID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrReceptionistNotFound
	}

	user, err := u.userRepo.FindByID(tx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := u.updateStaffAccount(tx, user, req.Email, req.ContactNumber); err != nil {
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
		if err := u.receptionistRepo.Update(tx, profile); err != nil {
			u.log.Warnf("Failed to update receptionist profile: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionReceptionistUpdate, entity.JSON{
		"receptionist_id": profile.ID,
		"user_id":         user.ID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.profileCache.Invalidate(ctx, user.ID)

	return converter.ReceptionistToResponse(profile, user), nil
}

func (u *staffUsecase) DeleteReceptionist(ctx context.Context, actorID uint, receptionistID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.receptionistRepo.FindByID(tx, receptionistID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrReceptionistNotFound
	}

	if err := u.deleteStaffAccount(tx, profile.UserID, func(tx *gorm.DB) error {
		return u.receptionistRepo.DeleteByUserID(tx, profile.UserID)
	}); err != nil {
		return err
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionReceptionistDelete, entity.JSON{
		"receptionist_id": profile.ID,
		"user_id":         profile.UserID,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.profileCache.Invalidate(ctx, profile.UserID)
	return nil
}

func (u *staffUsecase) ListTokens(ctx context.Context) ([]dto.TokenRecordResponse, error) {
	records, err := u.tokenRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list tokens: %+v", err)
		return nil, err
	}

	responses := make([]dto.TokenRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *converter.TokenToResponse(&records[i]))
	}
	return responses, nil
}

func (u *staffUsecase) createStaffUser(tx *gorm.DB, username, password, email, contactNumber string, roleID int) (*entity.User, error) {
	user := &entity.User{
		Username: username,
		RoleID:   roleID,
	}
	if email != "" {
		user.Email = &email
	}
	if contactNumber != "" {
		user.ContactNumber = &contactNumber
	}
	if err := setPassword(user, password); err != nil {
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
	return user, nil
}

func (u *staffUsecase) updateStaffAccount(tx *gorm.DB, user *entity.User, email, contactNumber *string) error {
	changed := false
	if email != nil {
		existing, err := u.userRepo.FindByEmail(tx, *email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != user.ID {
			return ErrEmailTaken
		}
		user.Email = email
		changed = true
	}
	if contactNumber != nil {
		user.ContactNumber = contactNumber
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

// deleteStaffAccount removes the profile variant, the token ledger rows and the
// account in one transaction. The database cascade remains as backstop, but the
// explicit three-step delete keeps the discipline visible.
func (u *staffUsecase) deleteStaffAccount(tx *gorm.DB, userID uint, deleteProfile func(*gorm.DB) error) error {
	if err := u.tokenRepo.DeleteByUserID(tx, userID); err != nil {
		u.log.Warnf("Failed to delete tokens: %+v", err)
		return err
	}
	if err := deleteProfile(tx); err != nil {
		u.log.Warnf("Failed to delete profile: %+v", err)
		return err
	}
	if err := u.userRepo.Delete(tx, userID); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}
	return nil
}
