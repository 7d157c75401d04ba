package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityKey is the fiber locals key holding the caller's *Identity.
const IdentityKey = "identity"

// JWTMiddleware validates bearer tokens and stores the caller identity in locals.
func JWTMiddleware(secret string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		token := bearerFromHeader(c.Get("Authorization"))
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := parseClaims(token, secretBytes)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		c.Locals(IdentityKey, &Identity{UserID: claims.UserID, Name: claims.Name, Email: claims.Email})
		return c.Next()
	}
}

// OptionalJWT stores the caller identity when a valid bearer token is
// present and lets the request through anonymously otherwise. Community
// posting is open to unauthenticated callers.
func OptionalJWT(secret string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		token := bearerFromHeader(c.Get("Authorization"))
		if token != "" {
			if claims, err := parseClaims(token, secretBytes); err == nil {
				c.Locals(IdentityKey, &Identity{UserID: claims.UserID, Name: claims.Name, Email: claims.Email})
			}
		}
		return c.Next()
	}
}

// IdentityFromCtx returns the caller identity set by the middleware, or
// nil for anonymous requests.
func IdentityFromCtx(c *fiber.Ctx) *Identity {
	who, _ := c.Locals(IdentityKey).(*Identity)
	return who
}

var parseMiddlewareClaimsFn = jwt.ParseWithClaims

func parseClaims(token string, secret []byte) (*Claims, error) {
	parsed, err := parseMiddlewareClaimsFn(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errTokenInvalid
	}
	return claims, nil
}

var errTokenInvalid = fiber.NewError(fiber.StatusUnauthorized, "token invalid")

func bearerFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
