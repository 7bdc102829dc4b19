package usecase_test

import (
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegisterRequest(username, nic string) *dto.RegisterPatientRequest {
	return &dto.RegisterPatientRequest{
		Username:    username,
		Password:    "password123",
		FullName:    "Test Patient",
		NIC:         nic,
		Gender:      entity.GenderMale,
		DateOfBirth: "1990-04-12",
	}
}

func TestRegisterPatient(t *testing.T) {
	f := newFixture(t)

	req := newRegisterRequest("j.silva", "901234567V")
	req.Email = "j.silva@example.com"
	req.ContactNumber = "0771234567"

	resp, err := f.auth.RegisterPatient(testCtx, req, nil)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(time.Hour/time.Second), resp.ExpiresIn)

	require.NotNil(t, resp.User)
	assert.Equal(t, "j.silva", resp.User.Username)
	assert.Equal(t, entity.RoleIDPatient, resp.User.RoleID)
	assert.Equal(t, entity.RolePatient, resp.User.Role)

	profile, ok := resp.User.Profile.(*dto.PatientProfileResponse)
	require.True(t, ok, "expected a patient profile variant")
	assert.Equal(t, "901234567V", profile.NIC)
	assert.Equal(t, "Test Patient", profile.FullName)
	assert.Equal(t, "1990-04-12", profile.DateOfBirth)

	// The issued token lands in the ledger as a digest, never in the clear.
	var record entity.AuthToken
	require.NoError(t, f.db.Where("user_id = ?", resp.User.UserID).First(&record).Error)
	assert.Equal(t, entity.TokenKindAccess, record.Kind)
	assert.NotEqual(t, resp.Token, record.Token)

	assert.Equal(t, int64(1), f.countAuditLogs(t, entity.AuditActionUserRegister))
}

func TestRegisterPatientRecordsActor(t *testing.T) {
	f := newFixture(t)
	admin := f.seedAdmin(t, "admin")

	_, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("walkin", "911234567V"), &admin.ID)
	require.NoError(t, err)

	var log entity.AuditLog
	require.NoError(t, f.db.Where("action = ?", entity.AuditActionUserRegister).First(&log).Error)
	require.NotNil(t, log.ActorID)
	assert.Equal(t, admin.ID, *log.ActorID)
}

func TestRegisterPatientDuplicateUsername(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("j.silva", "901234567V"), nil)
	require.NoError(t, err)

	_, err = f.auth.RegisterPatient(testCtx, newRegisterRequest("j.silva", "921234567V"), nil)
	assert.ErrorIs(t, err, usecase.ErrUsernameTaken)

	// The failed attempt must not leave a half-created account behind.
	var count int64
	require.NoError(t, f.db.Model(&entity.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterPatientDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	first := newRegisterRequest("patient.one", "901234567V")
	first.Email = "shared@example.com"
	_, err := f.auth.RegisterPatient(testCtx, first, nil)
	require.NoError(t, err)

	second := newRegisterRequest("patient.two", "921234567V")
	second.Email = "shared@example.com"
	_, err = f.auth.RegisterPatient(testCtx, second, nil)
	assert.ErrorIs(t, err, usecase.ErrEmailTaken)
}

func TestRegisterPatientDuplicateNIC(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("patient.one", "901234567V"), nil)
	require.NoError(t, err)

	_, err = f.auth.RegisterPatient(testCtx, newRegisterRequest("patient.two", "901234567V"), nil)
	assert.ErrorIs(t, err, usecase.ErrNICTaken)
}

func TestRegisterPatientInvalidDateOfBirth(t *testing.T) {
	f := newFixture(t)

	req := newRegisterRequest("patient.one", "901234567V")
	req.DateOfBirth = "12-04-1990"

	_, err := f.auth.RegisterPatient(testCtx, req, nil)
	assert.ErrorIs(t, err, usecase.ErrInvalidDateFormat)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("j.silva", "901234567V"), nil)
	require.NoError(t, err)

	resp, err := f.auth.Login(testCtx, &dto.LoginRequest{Username: "j.silva", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "j.silva", resp.User.Username)

	assert.Equal(t, int64(1), f.countAuditLogs(t, entity.AuditActionUserLogin))
}

func TestLoginBadCredentials(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("j.silva", "901234567V"), nil)
	require.NoError(t, err)

	// Wrong password and unknown username collapse into one error so the
	// response never confirms whether an account exists.
	_, err = f.auth.Login(testCtx, &dto.LoginRequest{Username: "j.silva", Password: "wrong"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	_, err = f.auth.Login(testCtx, &dto.LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)

	resp, err := f.auth.RegisterPatient(testCtx, newRegisterRequest("j.silva", "901234567V"), nil)
	require.NoError(t, err)
	userID := resp.User.UserID

	err = f.auth.ChangePassword(testCtx, userID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword1",
	})
	assert.ErrorIs(t, err, usecase.ErrWrongPassword)

	err = f.auth.ChangePassword(testCtx, userID, &dto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
	})
	require.NoError(t, err)

	_, err = f.auth.Login(testCtx, &dto.LoginRequest{Username: "j.silva", Password: "password123"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	_, err = f.auth.Login(testCtx, &dto.LoginRequest{Username: "j.silva", Password: "newpassword1"})
	assert.NoError(t, err)
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newFixture(t)

	req := newRegisterRequest("j.silva", "901234567V")
	req.Email = "j.silva@example.com"
	_, err := f.auth.RegisterPatient(testCtx, req, nil)
	require.NoError(t, err)

	forgot, err := f.auth.ForgotPassword(testCtx, &dto.ForgotPasswordRequest{Email: "j.silva@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, forgot.ResetToken)

	// Only the digest is stored, so a database leak cannot replay the token.
	var count int64
	require.NoError(t, f.db.Model(&entity.AuthToken{}).
		Where("kind = ? AND token = ?", entity.TokenKindPasswordReset, forgot.ResetToken).
		Count(&count).Error)
	assert.Zero(t, count)

	err = f.auth.ResetPassword(testCtx, &dto.ResetPasswordRequest{
		Token:       forgot.ResetToken,
		NewPassword: "resetpass1",
	})
	require.NoError(t, err)

	_, err = f.auth.Login(testCtx, &dto.LoginRequest{Username: "j.silva", Password: "resetpass1"})
	require.NoError(t, err)

	// Consumed tokens are gone, not reusable.
	err = f.auth.ResetPassword(testCtx, &dto.ResetPasswordRequest{
		Token:       forgot.ResetToken,
		NewPassword: "another1",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidResetToken)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.ForgotPassword(testCtx, &dto.ForgotPasswordRequest{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	f := newFixture(t)

	req := newRegisterRequest("j.silva", "901234567V")
	req.Email = "j.silva@example.com"
	_, err := f.auth.RegisterPatient(testCtx, req, nil)
	require.NoError(t, err)

	forgot, err := f.auth.ForgotPassword(testCtx, &dto.ForgotPasswordRequest{Email: "j.silva@example.com"})
	require.NoError(t, err)

	require.NoError(t, f.db.Model(&entity.AuthToken{}).
		Where("kind = ?", entity.TokenKindPasswordReset).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	err = f.auth.ResetPassword(testCtx, &dto.ResetPasswordRequest{
		Token:       forgot.ResetToken,
		NewPassword: "resetpass1",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidResetToken)

	// The expired row is purged on the failed attempt.
	var count int64
	require.NoError(t, f.db.Model(&entity.AuthToken{}).
		Where("kind = ?", entity.TokenKindPasswordReset).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestResetPasswordUnknownToken(t *testing.T) {
	f := newFixture(t)

	err := f.auth.ResetPassword(testCtx, &dto.ResetPasswordRequest{
		Token:       "deadbeef",
		NewPassword: "resetpass1",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidResetToken)
}
