//go:build unit

package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsISODate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-01", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-1-1", false},
		{"2024-01-01T00:00:00.000Z", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsISODate(tt.in))
		})
	}
}

func TestIsoDateTag(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("isodate", isoDate))

	type body struct {
		Date string `validate:"required,isodate"`
	}
	assert.NoError(t, v.Struct(body{Date: "2024-01-01"}))
	assert.Error(t, v.Struct(body{Date: "01/01/2024"}))
}

func TestRegister(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}
