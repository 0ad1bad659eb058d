package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hestia-console-be/internal/pkg/serverutils"
	"hestia-console-be/internal/service"
)

// actorFromCtx builds the audit attribution for the authenticated caller.
// On unauthenticated routes the user id stays nil and only the ip is kept.
func actorFromCtx(ctx *fiber.Ctx) service.Actor {
	actor := service.Actor{IpAddress: ctx.IP()}
	if id, err := uuid.Parse(serverutils.CallerId(ctx)); err == nil {
		actor.UserId = &id
	}
	return actor
}
