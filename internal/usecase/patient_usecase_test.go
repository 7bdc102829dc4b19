package usecase_test

import (
	"testing"

	"clinic-management-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPatient(t *testing.T) {
	f := newFixture(t)

	req := newRegisterRequest("j.silva", "901234567V")
	req.FullName = "Jane Silva"
	req.ContactNumber = "0771234567"
	_, err := f.auth.RegisterPatient(testCtx, req, nil)
	require.NoError(t, err)

	byNIC, err := f.patient.SearchPatient(testCtx, "901234567V", usecase.SearchByNIC)
	require.NoError(t, err)
	require.True(t, byNIC.Exists)
	assert.Equal(t, "Jane Silva", byNIC.Patient.FullName)
	assert.Equal(t, "j.silva", byNIC.Patient.Username)

	byPhone, err := f.patient.SearchPatient(testCtx, "0771234567", usecase.SearchByPhone)
	require.NoError(t, err)
	require.True(t, byPhone.Exists)
	assert.Equal(t, "901234567V", byPhone.Patient.NIC)

	byName, err := f.patient.SearchPatient(testCtx, "Silva", usecase.SearchByName)
	require.NoError(t, err)
	require.True(t, byName.Exists)
	assert.Equal(t, "Jane Silva", byName.Patient.FullName)
}

func TestSearchPatientNotFound(t *testing.T) {
	f := newFixture(t)

	// Absence is a normal outcome, not an error.
	resp, err := f.patient.SearchPatient(testCtx, "999999999V", usecase.SearchByNIC)
	require.NoError(t, err)
	assert.False(t, resp.Exists)
	assert.Nil(t, resp.Patient)
}

func TestSearchPatientEmptyQuery(t *testing.T) {
	f := newFixture(t)

	_, err := f.patient.SearchPatient(testCtx, "", usecase.SearchByNIC)
	assert.ErrorIs(t, err, usecase.ErrSearchQueryRequired)
}

func TestSearchPatientIgnoresStaff(t *testing.T) {
	f := newFixture(t)
	admin := f.seedAdmin(t, "admin")

	// A receptionist's NIC lives on a different table; the desk search only
	// sees patients.
	_, err := f.staff.CreateReceptionist(testCtx, admin.ID, newReceptionistRequest("r.one", "851234567V"))
	require.NoError(t, err)

	resp, err := f.patient.SearchPatient(testCtx, "851234567V", usecase.SearchByNIC)
	require.NoError(t, err)
	assert.False(t, resp.Exists)
}
