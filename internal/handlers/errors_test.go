package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/anonto42/picgram/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrapped: %w", repositories.ErrNotFound), http.StatusNotFound},
		{repositories.ErrConflict, http.StatusConflict},
		{repositories.ErrSelfFollow, http.StatusBadRequest},
		{repositories.ErrValidation, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		var he *echo.HTTPError
		require.ErrorAs(t, storeError(tt.err), &he)
		assert.Equal(t, tt.want, he.Code, tt.err.Error())
	}
}
