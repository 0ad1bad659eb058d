// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"hestia-console-be/internal/entity"
)

const (
	LocalsUserId   = "user_id"
	LocalsUserRole = "user_role"
)

// JwtMiddleware authenticates the bearer token and stashes the caller's
// identity into the request locals. The role claim is validated against
// the closed enumeration here, at the deserialization boundary: a token
// with an unknown role is rejected, not passed through as a raw string.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return SendError(ctx, fiber.StatusUnauthorized, "Missing token")
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return SendError(ctx, fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SendError(ctx, fiber.StatusUnauthorized, "Invalid claims")
	}

	rawRole, _ := claims["role"].(string)
	role, ok := entity.ParseRole(rawRole)
	if !ok {
		return SendError(ctx, fiber.StatusUnauthorized, "Invalid role claim")
	}

	ctx.Locals(LocalsUserId, claims["user_id"])
	ctx.Locals(LocalsUserRole, string(role))
	return ctx.Next()
}

// CallerRole returns the authenticated caller's validated role, or ""
// when the request never went through JwtMiddleware.
func CallerRole(ctx *fiber.Ctx) string {
	role, _ := ctx.Locals(LocalsUserRole).(string)
	return role
}

// CallerId returns the authenticated caller's user id claim as a string.
func CallerId(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(LocalsUserId).(string)
	return id
}
