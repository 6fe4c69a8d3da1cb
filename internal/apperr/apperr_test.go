package apperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{Unauthorized("no"), http.StatusUnauthorized},
		{Forbidden("Forbidden"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{&Error{Message: "boom"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Status(), tt.err.Message)
	}
}

func TestAs_Wrapped(t *testing.T) {
	err := fmt.Errorf("update profile: %w", Forbidden("Forbidden"))

	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, e.Kind)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
