package middleware

import (
	"errors"
	"os"
	"strings"

	"leevienna_shop/constants"
	"leevienna_shop/helper"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var gate = helper.NewAdminGate()

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// OptionalAuth resolves the profile when a valid token is present and lets
// guests through with userId 0.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")
		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			c.Locals("user", nil)
			c.Locals("userId", uint(0))
			return c.Next()
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			c.Locals("user", nil)
			c.Locals("userId", uint(0))
			return c.Next()
		}

		c.Locals("user", jwtToken)
		claim, profile := helper.GetInfoUserFromToken(c)
		c.Locals("userId", claim.UserId)
		if profile.ID > 0 {
			c.Locals("profile", &profile)
		}
		return c.Next()
	}
}

// AdminOnly runs after Protected and rejects identities the gate does not
// recognize as admins.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Identity comes straight from the token claims: the bootstrap tier
		// must work before any profile row exists.
		userId, email := helper.ClaimsFromLocals(c)
		if userId == 0 && email == "" {
			return utils.ErrorResponse(c, 401, constants.UNAUTHORIZED, errors.New("no identity"))
		}

		if !gate.ResolveIsAdmin(userId, email) {
			return utils.ErrorResponse(c, 403, constants.FORBIDDEN_ADMIN, errors.New("not an admin"))
		}

		return c.Next()
	}
}
