package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,is-user-role"`
	Tooth  string `json:"tooth" validate:"omitempty,is-tooth-number"`
	Code   string `json:"code" validate:"omitempty,is-cdt-code"`
	Status string `json:"status" validate:"omitempty,is-appointment-status"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:  "dentist@clinic.com",
		Role:   "dentist",
		Tooth:  "19",
		Code:   "D2391",
		Status: "scheduled",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "not-an-email", Role: "dentist"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
}

func TestValidate_UserRole(t *testing.T) {
	v := New()

	for _, role := range []string{"dentist", "assistant", "admin"} {
		err := v.Validate(&sampleRequest{Email: "a@b.com", Role: role})
		assert.NoError(t, err, "role %s should be valid", role)
	}

	err := v.Validate(&sampleRequest{Email: "a@b.com", Role: "janitor"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "role")
}

func TestValidate_ToothNumber(t *testing.T) {
	v := New()

	valid := sampleRequest{Email: "a@b.com", Role: "dentist"}

	valid.Tooth = "1"
	assert.NoError(t, v.Validate(&valid))
	valid.Tooth = "32"
	assert.NoError(t, v.Validate(&valid))

	valid.Tooth = "0"
	assert.Error(t, v.Validate(&valid))
	valid.Tooth = "33"
	assert.Error(t, v.Validate(&valid))
	valid.Tooth = "molar"
	assert.Error(t, v.Validate(&valid))
}

func TestValidate_CDTCode(t *testing.T) {
	v := New()

	valid := sampleRequest{Email: "a@b.com", Role: "dentist"}

	valid.Code = "D2391"
	assert.NoError(t, v.Validate(&valid))

	for _, bad := range []string{"2391", "D23912", "d2391", "D23A1"} {
		valid.Code = bad
		assert.Error(t, v.Validate(&valid), "code %s should be rejected", bad)
	}
}

func TestValidate_AppointmentStatus(t *testing.T) {
	v := New()

	valid := sampleRequest{Email: "a@b.com", Role: "dentist"}

	for _, status := range []string{"scheduled", "confirmed", "completed", "cancelled", "no_show"} {
		valid.Status = status
		assert.NoError(t, v.Validate(&valid), "status %s should be valid", status)
	}

	valid.Status = "postponed"
	assert.Error(t, v.Validate(&valid))
}
