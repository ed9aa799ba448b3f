package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/opmodel/renderings/internal/errors"
	"github.com/opmodel/renderings/internal/rendering"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			wantCode: ExitSuccess,
		},
		{
			name:     "validation error",
			err:      oerrors.ErrValidation,
			wantCode: ExitValidationError,
		},
		{
			name:     "wrapped validation error",
			err:      oerrors.Wrap(oerrors.ErrValidation, "schema check failed"),
			wantCode: ExitValidationError,
		},
		{
			name:     "validation detail error",
			err:      oerrors.NewValidationError("bad", "links.yaml", "links.0.type", ""),
			wantCode: ExitValidationError,
		},
		{
			name:     "missing annotation",
			err:      fmt.Errorf("field Title: %w", oerrors.ErrMissingAnnotation),
			wantCode: ExitValidationError,
		},
		{
			name:     "not found error",
			err:      oerrors.ErrNotFound,
			wantCode: ExitNotFound,
		},
		{
			name:     "invalid member",
			err:      oerrors.ErrInvalidMember,
			wantCode: ExitNotFound,
		},
		{
			name:     "unresolved config error",
			err:      &rendering.ConfigError{Subject: "gallery"},
			wantCode: ExitUnresolved,
		},
		{
			name:     "explicit exit error wins",
			err:      fmt.Errorf("outer: %w", NewExitError(oerrors.ErrNotFound, ExitGeneralError)),
			wantCode: ExitGeneralError,
		},
		{
			name:     "unknown error returns general error",
			err:      errors.New("unknown error"),
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExitCodeFromError(tt.err)
			assert.Equal(t, tt.wantCode, got)
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitGeneralError)
	assert.Equal(t, 2, ExitValidationError)
	assert.Equal(t, 5, ExitNotFound)
	assert.Equal(t, 7, ExitUnresolved)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Unresolved View Model", ExitCodeName(ExitUnresolved))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")
	err := NewExitError(inner, ExitValidationError)

	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, ExitValidationError, err.Code)
	assert.False(t, err.Printed)
}
