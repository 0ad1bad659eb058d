package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles is the coarse administrative gate, checked before any
// feature-registry logic runs. It must sit behind JwtMiddleware. The "*"
// wildcard admits any authenticated caller.
func RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := CallerRole(ctx)
		if role == "" {
			return SendError(ctx, fiber.StatusUnauthorized, "Não autorizado")
		}
		for _, allowed := range roles {
			if allowed == "*" || allowed == role {
				return ctx.Next()
			}
		}
		return SendError(ctx, fiber.StatusForbidden, "Permissão negada")
	}
}
