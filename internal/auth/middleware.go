package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

const identityKey = "auth_identity"

// AuthMiddleware validates bearer credentials on protected routes.
//
// A missing or malformed Authorization header is an unauthenticated request
// (401); a token that fails signature or expiry checks is forbidden (403).
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authorize verifies the raw Authorization header value and returns the
// identity it proves. It touches no request state, so it is directly testable.
func (m *AuthMiddleware) Authorize(authHeader string) (*domain.Identity, error) {
	if authHeader == "" {
		return nil, apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, apperrors.NewUnauthenticated("invalid authorization header")
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		return nil, apperrors.NewForbidden("invalid or expired token")
	}

	return &domain.Identity{SubjectID: claims.SubjectID, IsAdmin: claims.IsAdmin}, nil
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	identity, err := m.Authorize(c.Get("Authorization"))
	if err != nil {
		return err
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}
