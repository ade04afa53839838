package util_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "domain error passes through",
			err:        apperrors.NewForbidden("invalid or expired token"),
			wantCode:   "FORBIDDEN",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrapped domain error unwraps",
			err:        fmt.Errorf("handling request: %w", apperrors.NewInvalidCredentials()),
			wantCode:   "INVALID_CREDENTIALS",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing document maps to not found",
			err:        mongo.ErrNoDocuments,
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown error maps to internal",
			err:        errors.New("boom"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domainErr := apperrors.ToDomainError(tt.err)
			require.NotNil(t, domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
			assert.Equal(t, tt.wantStatus, domainErr.HTTPStatus)
		})
	}

	assert.Nil(t, apperrors.ToDomainError(nil))
}
