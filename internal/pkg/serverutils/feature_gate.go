package serverutils

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"hestia-console-be/pkg/access"
)

// RegistryProvider hands the gate a current registry snapshot. The feature
// service implements it over the repository.
type RegistryProvider interface {
	Snapshot(ctx context.Context) (*access.Snapshot, error)
}

// FeatureGate is the server-side enforcement point of the access
// predicate: the same pkg/access verdict the client uses for navigation,
// applied to the route itself. Unauthenticated callers get 401; a failed
// snapshot load or a negative verdict gets 403 (fail closed, never open).
func FeatureGate(provider RegistryProvider, code string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := CallerRole(ctx)
		if role == "" {
			return SendError(ctx, fiber.StatusUnauthorized, "Não autorizado")
		}

		snapshot, err := provider.Snapshot(ctx.Context())
		if err != nil {
			snapshot = access.Empty()
		}
		if !snapshot.CanAccess(code, role) {
			return SendError(ctx, fiber.StatusForbidden, "Permissão negada")
		}
		return ctx.Next()
	}
}
