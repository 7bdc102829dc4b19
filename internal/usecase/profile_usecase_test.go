package usecase_test

import (
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProfile(t *testing.T) {
	f := newFixture(t)
	admin := f.seedAdmin(t, "admin")

	resp, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("j.silva", "901234567V"), nil)
	require.NoError(t, err)

	profile, err := f.profile.ResolveProfile(testCtx, admin.ID, entity.RoleIDAdmin)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, entity.RoleIDAdmin, profile.ProfileRoleID())
	assert.Equal(t, admin.ID, profile.ProfileOwnerID())

	profile, err = f.profile.ResolveProfile(testCtx, resp.User.UserID, entity.RoleIDPatient)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, entity.RoleIDPatient, profile.ProfileRoleID())
}

func TestResolveProfileUnknownRole(t *testing.T) {
	f := newFixture(t)
	admin := f.seedAdmin(t, "admin")

	// An unrecognized role id resolves to no profile, not an error.
	profile, err := f.profile.ResolveProfile(testCtx, admin.ID, 99)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestResolveProfileMissingRow(t *testing.T) {
	f := newFixture(t)
	admin := f.seedAdmin(t, "admin")

	// Role with no matching variant row resolves to nil without a typed-nil
	// leaking through the interface.
	profile, err := f.profile.ResolveProfile(testCtx, admin.ID, entity.RoleIDDoctor)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)

	resp, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("j.silva", "901234567V"), nil)
	require.NoError(t, err)

	view, err := f.profile.GetProfile(testCtx, resp.User.UserID)
	require.NoError(t, err)
	assert.Equal(t, "j.silva", view.Username)
	assert.Equal(t, entity.RolePatient, view.Role)
	assert.NotNil(t, view.Profile)
}

func TestGetProfileUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.profile.GetProfile(testCtx, 12345)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestUpdateProfilePatient(t *testing.T) {
	f := newFixture(t)

	resp, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("j.silva", "901234567V"), nil)
	require.NoError(t, err)

	view, err := f.profile.UpdateProfile(testCtx, resp.User.UserID, &dto.UpdateProfileRequest{
		Email:         strPtr("new@example.com"),
		ContactNumber: strPtr("0779876543"),
		FullName:      strPtr("Jane Silva"),
		Gender:        strPtr(entity.GenderFemale),
		DateOfBirth:   strPtr("1991-06-20"),
		Address:       strPtr("12 Galle Road"),
	})
	require.NoError(t, err)

	require.NotNil(t, view.Email)
	assert.Equal(t, "new@example.com", *view.Email)

	profile, ok := view.Profile.(*dto.PatientProfileResponse)
	require.True(t, ok)
	assert.Equal(t, "Jane Silva", profile.FullName)
	assert.Equal(t, "1991-06-20", profile.DateOfBirth)
	require.NotNil(t, profile.Gender)
	assert.Equal(t, entity.GenderFemale, *profile.Gender)
	require.NotNil(t, profile.Address)
	assert.Equal(t, "12 Galle Road", *profile.Address)

	assert.Equal(t, int64(1), f.countAuditLogs(t, entity.AuditActionProfileUpdate))
}

func TestUpdateProfileDoctorScopedToFullName(t *testing.T) {
	f := newFixture(t)
	admin := f.seedAdmin(t, "admin")

	doctor, err := f.staff.CreateDoctor(testCtx, admin.ID, &dto.CreateDoctorRequest{
		Username:       "dr.perera",
		Password:       "password123",
		FullName:       "Dr. Perera",
		Specialization: "Cardiology",
		LicenseNo:      "LIC-100",
	})
	require.NoError(t, err)

	// Patient-only demographic fields are ignored for a doctor; full_name and
	// the account columns still apply.
	view, err := f.profile.UpdateProfile(testCtx, doctor.UserID, &dto.UpdateProfileRequest{
		FullName: strPtr("Dr. A. Perera"),
		Gender:   strPtr(entity.GenderMale),
		Address:  strPtr("ignored"),
	})
	require.NoError(t, err)

	profile, ok := view.Profile.(*dto.DoctorProfileResponse)
	require.True(t, ok)
	assert.Equal(t, "Dr. A. Perera", profile.FullName)
	assert.Equal(t, "LIC-100", profile.LicenseNo)

	var count int64
	require.NoError(t, f.db.Model(&entity.PatientProfile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	f := newFixture(t)

	first := newRegisterRequest("patient.one", "901234567V")
	first.Email = "taken@example.com"
	_, err := f.auth.RegisterPatient(testCtx, first, nil)
	require.NoError(t, err)

	second, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("patient.two", "921234567V"), nil)
	require.NoError(t, err)

	_, err = f.profile.UpdateProfile(testCtx, second.User.UserID, &dto.UpdateProfileRequest{
		Email: strPtr("taken@example.com"),
	})
	assert.ErrorIs(t, err, usecase.ErrEmailTaken)
}

func TestUpdateProfileKeepOwnEmail(t *testing.T) {
	f := newFixture(t)

	req := newRegisterRequest("j.silva", "901234567V")
	req.Email = "own@example.com"
	resp, err := f.auth.RegisterPatient(testCtx, req, nil)
	require.NoError(t, err)

	// Resubmitting the caller's own email is not a conflict.
	_, err = f.profile.UpdateProfile(testCtx, resp.User.UserID, &dto.UpdateProfileRequest{
		Email: strPtr("own@example.com"),
	})
	assert.NoError(t, err)
}

func TestUpdateProfileInvalidDateOfBirth(t *testing.T) {
	f := newFixture(t)

	resp, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("j.silva", "901234567V"), nil)
	require.NoError(t, err)

	_, err = f.profile.UpdateProfile(testCtx, resp.User.UserID, &dto.UpdateProfileRequest{
		DateOfBirth: strPtr("20/06/1991"),
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidDateFormat)
}
