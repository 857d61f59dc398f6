package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	pwaerrors "github.com/pwagen/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneralError},
		{"validation sentinel", pwaerrors.ErrValidation, ExitValidationError},
		{"wrapped validation", fmt.Errorf("outer: %w", pwaerrors.ErrValidation), ExitValidationError},
		{"detail error with validation cause",
			pwaerrors.NewValidationError("bad approach", "use serwist"), ExitValidationError},
		{"permission sentinel", pwaerrors.ErrPermission, ExitPermissionDenied},
		{"permission detail error",
			pwaerrors.NewPermissionError("cannot write", "/etc"), ExitPermissionDenied},
		{"not found sentinel", pwaerrors.ErrNotFound, ExitNotFound},
		{"exit error wins over sentinel",
			NewExitError(pwaerrors.ErrValidation, ExitGeneralError), ExitGeneralError},
		{"wrapped exit error",
			fmt.Errorf("outer: %w", NewExitError(errors.New("usage"), ExitValidationError)),
			ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := pwaerrors.ErrValidation
	err := NewExitError(inner, ExitValidationError)

	assert.Equal(t, inner.Error(), err.Error())
	assert.ErrorIs(t, err, pwaerrors.ErrValidation)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Permission Denied", ExitCodeName(ExitPermissionDenied))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
