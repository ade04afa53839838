package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/auth"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func TestAuthorize(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 60)
	middleware := auth.NewAuthMiddleware(tm)

	validToken, _, err := tm.Generate("admin-1", true)
	require.NoError(t, err)

	expiredTM := auth.NewTokenManager("test-secret", 60).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expiredToken, _, err := expiredTM.Generate("admin-1", true)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantCode   string
		wantStatus int
	}{
		{
			name:       "missing header is unauthenticated",
			header:     "",
			wantCode:   "UNAUTHENTICATED",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer scheme is unauthenticated",
			header:     "Basic abc123",
			wantCode:   "UNAUTHENTICATED",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer with empty token is unauthenticated",
			header:     "Bearer ",
			wantCode:   "UNAUTHENTICATED",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token is forbidden",
			header:     "Bearer not-a-jwt",
			wantCode:   "FORBIDDEN",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "expired token is forbidden",
			header:     "Bearer " + expiredToken,
			wantCode:   "FORBIDDEN",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := middleware.Authorize(tt.header)
			require.Error(t, err)
			require.Nil(t, identity)

			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, tt.wantCode, domainErr.Code)
			assert.Equal(t, tt.wantStatus, domainErr.HTTPStatus)
		})
	}

	t.Run("valid token yields the embedded identity", func(t *testing.T) {
		identity, err := middleware.Authorize("Bearer " + validToken)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", identity.SubjectID)
		assert.True(t, identity.IsAdmin)
	})
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 60)
	middleware := auth.NewAuthMiddleware(tm)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"message": domainErr.Message})
		},
	})
	app.Post("/protegido", middleware.Handle, auth.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	adminToken, _, err := tm.Generate("admin-1", true)
	require.NoError(t, err)
	shopperToken, _, err := tm.Generate("shopper-1", false)
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "admin passes", token: adminToken, wantStatus: http.StatusOK},
		{name: "non-admin is forbidden", token: shopperToken, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/protegido", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
