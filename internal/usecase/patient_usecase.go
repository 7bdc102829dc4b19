package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSearchQueryRequired = errors.New("search query is required")

// Search type values accepted by SearchPatient.
const (
	SearchByNIC   = "nic"
	SearchByPhone = "phone"
	SearchByName  = "name"
)

// PatientUsecase is the receptionist desk view over the patient directory.
type PatientUsecase interface {
	SearchPatient(ctx context.Context, query, searchType string) (*dto.PatientSearchResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientProfileRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientProfileRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
	}
}

// SearchPatient looks a patient up by NIC, contact number or name fragment.
// Absence is a normal outcome reported as exists=false.
func (u *patientUsecase) SearchPatient(ctx context.Context, query, searchType string) (*dto.PatientSearchResponse, error) {
	if query == "" {
		return nil, ErrSearchQueryRequired
	}

	db := u.db.WithContext(ctx)

	switch searchType {
	case SearchByPhone:
		user, err := u.userRepo.FindByContactNumber(db, query)
		if err != nil {
			u.log.Warnf("Failed patient search by phone: %+v", err)
			return nil, err
		}
		if user == nil {
			return &dto.PatientSearchResponse{Exists: false}, nil
		}
		profile, err := u.patientRepo.FindByUserID(db, user.ID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return &dto.PatientSearchResponse{Exists: false}, nil
		}
		return &dto.PatientSearchResponse{
			Exists:  true,
			Patient: converter.PatientToLookupResponse(profile, user),
		}, nil

	case SearchByName:
		profile, err := u.patientRepo.FindByFullNameLike(db, query)
		if err != nil {
			u.log.Warnf("Failed patient search by name: %+v", err)
			return nil, err
		}
		if profile == nil {
			return &dto.PatientSearchResponse{Exists: false}, nil
		}
		return &dto.PatientSearchResponse{
			Exists:  true,
			Patient: converter.PatientToLookupResponse(profile, &profile.User),
		}, nil

	default:
		// NIC is the default lookup key at the desk
		profile, err := u.patientRepo.FindByNIC(db, query)
		if err != nil {
			u.log.Warnf("Failed patient search by NIC: %+v", err)
			return nil, err
		}
		if profile == nil {
			return &dto.PatientSearchResponse{Exists: false}, nil
		}
		return &dto.PatientSearchResponse{
			Exists:  true,
			Patient: converter.PatientToLookupResponse(profile, &profile.User),
		}, nil
	}
}
