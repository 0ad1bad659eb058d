package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/pkg/serverutils"
	"hestia-console-be/internal/service"
)

type IServerController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type serverController struct {
	serverService service.IServerService
	registry      serverutils.RegistryProvider
}

func NewServerController(serverService service.IServerService, registry serverutils.RegistryProvider) IServerController {
	return &serverController{
		serverService: serverService,
		registry:      registry,
	}
}

func (c *serverController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/servers")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.FeatureGate(c.registry, "monitoring-servers"))
	h.Get("", c.List)
	h.Get("/:id", c.Show)
	h.Post("", c.Create)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *serverController) List(ctx *fiber.Ctx) error {
	res, err := c.serverService.GetAll(ctx.Context(), ctx.Query("environment"))
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *serverController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid server id")
	}

	res, err := c.serverService.GetById(ctx.Context(), id)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *serverController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateServerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}

	res, err := c.serverService.Create(ctx.Context(), actorFromCtx(ctx), &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusCreated, res, "Server created")
}

func (c *serverController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid server id")
	}

	var req dto.UpdateServerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.serverService.Update(ctx.Context(), actorFromCtx(ctx), id, &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "Server updated")
}

func (c *serverController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid server id")
	}

	if err := c.serverService.Delete(ctx.Context(), actorFromCtx(ctx), id); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, nil, "Server deleted")
}
