package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantMsg    string
		wantStatus int
	}{
		{
			name:       "not found with message",
			err:        NewNotFoundError("user", "user not found"),
			wantMsg:    "user not found",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not found without message",
			err:        NewNotFoundError("user", ""),
			wantMsg:    "user not found",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "conflict",
			err:        NewConflictError("user", "email already exists"),
			wantMsg:    "email already exists",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "validation with field",
			err:        NewValidationError("Email", "must be a valid email"),
			wantMsg:    "validation failed: Email - must be a valid email",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "internal",
			err:        NewInternalError("query failed", errors.New("bad connection")),
			wantMsg:    "query failed: bad connection",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())

			statuser, ok := tt.err.(HTTPStatuser)
			assert.True(t, ok)
			assert.Equal(t, tt.wantStatus, statuser.HTTPStatus())
		})
	}
}

func TestNotFoundError_SurvivesWrapping(t *testing.T) {
	inner := NewNotFoundError("user", "user not found")
	wrapped := fmt.Errorf("failed to get user: %w", inner)

	var notFoundErr *NotFoundError
	assert.True(t, errors.As(wrapped, &notFoundErr))
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("bad connection")
	err := NewInternalError("query failed", cause)

	assert.True(t, errors.Is(err, cause))
}
