package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// RequireAdmin ensures the authenticated identity carries the admin flag.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if !identity.IsAdmin {
			return apperrors.NewForbidden("admin required")
		}
		return c.Next()
	}
}
