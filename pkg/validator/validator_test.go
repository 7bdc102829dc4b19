package validator_test

import (
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() *dto.RegisterPatientRequest {
	return &dto.RegisterPatientRequest{
		Username: "j.silva",
		Password: "password123",
		FullName: "Jane Silva",
		NIC:      "901234567V",
	}
}

func TestValidateNIC(t *testing.T) {
	v := validator.NewValidator()

	cases := []struct {
		nic   string
		valid bool
	}{
		{"901234567V", true},
		{"901234567v", true},
		{"901234567X", true},
		{"199012345678", true},
		{"90123456V", false},   // too few digits
		{"901234567", false},   // old format without suffix
		{"1990123456789", false},
		{"90123456AV", false},
		{"", false},
	}

	for _, tc := range cases {
		req := validRegisterRequest()
		req.NIC = tc.nic
		err := v.Validate(req)
		if tc.valid {
			assert.NoError(t, err, "nic %q", tc.nic)
		} else {
			assert.Error(t, err, "nic %q", tc.nic)
		}
	}
}

func TestValidateGenderOneOf(t *testing.T) {
	v := validator.NewValidator()

	req := validRegisterRequest()
	req.Gender = "UNKNOWN"
	assert.Error(t, v.Validate(req))

	req.Gender = "FEMALE"
	assert.NoError(t, v.Validate(req))

	// Gender stays optional.
	req.Gender = ""
	assert.NoError(t, v.Validate(req))
}

func TestFormatValidationErrors(t *testing.T) {
	v := validator.NewValidator()

	err := v.Validate(&dto.RegisterPatientRequest{
		Username: "ab",
		Password: "short",
		NIC:      "bogus",
		Email:    "not-an-email",
	})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Contains(t, fields, "Username")
	assert.Contains(t, fields, "Password")
	assert.Contains(t, fields, "FullName")
	assert.Contains(t, fields, "NIC")
	assert.Contains(t, fields, "Email")
	assert.Equal(t, "NIC must be a valid NIC number", fields["NIC"])
}
