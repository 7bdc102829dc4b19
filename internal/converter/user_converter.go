package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// UserToResponse builds the composite identity view from a user (with Role
// preloaded) and its resolved profile variant. The profile may be nil when the
// role carries no variant row yet.
func UserToResponse(user *entity.User, profile entity.Profile) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		UserID:        user.ID,
		Username:      user.Username,
		Email:         user.Email,
		ContactNumber: user.ContactNumber,
		RoleID:        user.RoleID,
		Role:          user.Role.RoleName,
		Profile:       ProfileToResponse(profile),
	}
}

// ProfileToResponse maps a profile variant to its response shape.
func ProfileToResponse(profile entity.Profile) interface{} {
	switch p := profile.(type) {
	case *entity.AdminProfile:
		return &dto.AdminProfileResponse{
			AdminID: p.ID,
			UserID:  p.UserID,
		}
	case *entity.DoctorProfile:
		return &dto.DoctorProfileResponse{
			DoctorID:       p.ID,
			UserID:         p.UserID,
			AdminID:        p.AdminID,
			FullName:       p.FullName,
			Specialization: p.Specialization,
			LicenseNo:      p.LicenseNo,
		}
	case *entity.ReceptionistProfile:
		return &dto.ReceptionistProfileResponse{
			ReceptionistID: p.ID,
			UserID:         p.UserID,
			AdminID:        p.AdminID,
			FullName:       p.FullName,
			NIC:            p.NIC,
		}
	case *entity.PatientProfile:
		return PatientProfileToResponse(p)
	default:
		return nil
	}
}

func PatientProfileToResponse(p *entity.PatientProfile) *dto.PatientProfileResponse {
	if p == nil {
		return nil
	}

	response := &dto.PatientProfileResponse{
		PatientID: p.ID,
		UserID:    p.UserID,
		FullName:  p.FullName,
		NIC:       p.NIC,
		Gender:    p.Gender,
		Address:   p.Address,
	}
	if p.DateOfBirth != nil {
		response.DateOfBirth = p.DateOfBirth.Format("2006-01-02")
	}

	return response
}

// PatientToLookupResponse joins a patient profile with its account's contact
// columns for the receptionist desk search.
func PatientToLookupResponse(p *entity.PatientProfile, user *entity.User) *dto.PatientLookupResponse {
	if p == nil || user == nil {
		return nil
	}

	response := &dto.PatientLookupResponse{
		PatientID:     p.ID,
		UserID:        p.UserID,
		FullName:      p.FullName,
		NIC:           p.NIC,
		Gender:        p.Gender,
		Address:       p.Address,
		Username:      user.Username,
		Email:         user.Email,
		ContactNumber: user.ContactNumber,
	}
	if p.DateOfBirth != nil {
		response.DateOfBirth = p.DateOfBirth.Format("2006-01-02")
	}

	return response
}

// DoctorToResponse flattens a doctor profile with its account columns.
func DoctorToResponse(p *entity.DoctorProfile, user *entity.User) *dto.DoctorResponse {
	if p == nil || user == nil {
		return nil
	}

	return &dto.DoctorResponse{
		DoctorID:       p.ID,
		UserID:         p.UserID,
		AdminID:        p.AdminID,
		Username:       user.Username,
		Email:          user.Email,
		ContactNumber:  user.ContactNumber,
		FullName:       p.FullName,
		Specialization: p.Specialization,
		LicenseNo:      p.LicenseNo,
	}
}

// ReceptionistToResponse flattens a receptionist profile with its account columns.
func ReceptionistToResponse(p *entity.ReceptionistProfile, user *entity.User) *dto.ReceptionistResponse {
	if p == nil || user == nil {
		return nil
	}

	return &dto.ReceptionistResponse{
		ReceptionistID: p.ID,
		UserID:         p.UserID,
		AdminID:        p.AdminID,
		Username:       user.Username,
		Email:          user.Email,
		ContactNumber:  user.ContactNumber,
		FullName:       p.FullName,
		NIC:            p.NIC,
	}
}

// TokenToResponse maps a persisted token row for the admin listing.
func TokenToResponse(t *entity.AuthToken) *dto.TokenRecordResponse {
	if t == nil {
		return nil
	}

	return &dto.TokenRecordResponse{
		TokenID:   t.ID,
		UserID:    t.UserID,
		Username:  t.User.Username,
		Kind:      t.Kind,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
	}
}
