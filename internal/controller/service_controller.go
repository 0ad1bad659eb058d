package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/pkg/serverutils"
	"hestia-console-be/internal/service"
)

type IServiceController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListTypes(ctx *fiber.Ctx) error
	CreateType(ctx *fiber.Ctx) error
	ListConfigs(ctx *fiber.Ctx) error
	CreateConfig(ctx *fiber.Ctx) error
	UpdateConfig(ctx *fiber.Ctx) error
	DeleteConfig(ctx *fiber.Ctx) error
}

type serviceController struct {
	serviceService service.IServiceService
	registry       serverutils.RegistryProvider
}

func NewServiceController(serviceService service.IServiceService, registry serverutils.RegistryProvider) IServiceController {
	return &serviceController{
		serviceService: serviceService,
		registry:       registry,
	}
}

func (c *serviceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/services")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.FeatureGate(c.registry, "monitoring-services"))

	// static segments before :id
	h.Get("/types", c.ListTypes)
	h.Post("/types", c.CreateType)
	h.Post("/configs", c.CreateConfig)
	h.Patch("/configs/:configId", c.UpdateConfig)
	h.Delete("/configs/:configId", c.DeleteConfig)

	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Get("/:id/configs", c.ListConfigs)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *serviceController) List(ctx *fiber.Ctx) error {
	var serverId *uuid.UUID
	if raw := ctx.Query("serverId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid serverId filter")
		}
		serverId = &id
	}

	res, err := c.serviceService.GetAll(ctx.Context(), serverId)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *serviceController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid service id")
	}

	res, err := c.serviceService.GetById(ctx.Context(), id)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *serviceController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}

	res, err := c.serviceService.Create(ctx.Context(), actorFromCtx(ctx), &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusCreated, res, "Service created")
}

func (c *serviceController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid service id")
	}

	var req dto.UpdateServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.serviceService.Update(ctx.Context(), actorFromCtx(ctx), id, &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "Service updated")
}

func (c *serviceController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid service id")
	}

	if err := c.serviceService.Delete(ctx.Context(), actorFromCtx(ctx), id); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, nil, "Service deleted")
}

func (c *serviceController) ListTypes(ctx *fiber.Ctx) error {
	res, err := c.serviceService.GetTypes(ctx.Context())
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *serviceController) CreateType(ctx *fiber.Ctx) error {
	var req dto.CreateServiceTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}

	res, err := c.serviceService.CreateType(ctx.Context(), actorFromCtx(ctx), &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusCreated, res, "Service type created")
}

func (c *serviceController) ListConfigs(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid service id")
	}

	// secret values stay redacted for everyone but ROOT
	includeSecrets := serverutils.CallerRole(ctx) == string(entity.UserRoleRoot)

	res, err := c.serviceService.GetConfigs(ctx.Context(), id, includeSecrets)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *serviceController) CreateConfig(ctx *fiber.Ctx) error {
	var req dto.CreateServiceConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}

	res, err := c.serviceService.CreateConfig(ctx.Context(), actorFromCtx(ctx), &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusCreated, res, "Service config created")
}

func (c *serviceController) UpdateConfig(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("configId"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid config id")
	}

	var req dto.UpdateServiceConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.serviceService.UpdateConfig(ctx.Context(), actorFromCtx(ctx), id, &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "Service config updated")
}

func (c *serviceController) DeleteConfig(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("configId"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid config id")
	}

	if err := c.serviceService.DeleteConfig(ctx.Context(), actorFromCtx(ctx), id); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, nil, "Service config deleted")
}
