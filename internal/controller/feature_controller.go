package controller

import (
	"github.com/gofiber/fiber/v2"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/pkg/serverutils"
	"hestia-console-be/internal/service"
)

type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	CreateSubfeature(ctx *fiber.Ctx) error
	UpdateSubfeature(ctx *fiber.Ctx) error
	DeleteSubfeature(ctx *fiber.Ctx) error
}

type featureController struct {
	featureService service.IFeatureService
}

func NewFeatureController(featureService service.IFeatureService) IFeatureController {
	return &featureController{
		featureService: featureService,
	}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	root := serverutils.RequireRoles(string(entity.UserRoleRoot))

	h := r.Group("/features")
	// reads are public: the client context bootstraps from here before login
	h.Get("", c.List)

	// subfeature routes go before :code so the static segment wins
	h.Post("/subfeatures", serverutils.JwtMiddleware, root, c.CreateSubfeature)
	h.Patch("/subfeatures/:code", serverutils.JwtMiddleware, root, c.UpdateSubfeature)
	h.Delete("/subfeatures/:code", serverutils.JwtMiddleware, root, c.DeleteSubfeature)

	h.Post("", serverutils.JwtMiddleware, root, c.Create)
	h.Get("/:code", c.Show)
	h.Patch("/:code", serverutils.JwtMiddleware, root, c.Update)
	h.Delete("/:code", serverutils.JwtMiddleware, root, c.Delete)
}

func (c *featureController) List(ctx *fiber.Ctx) error {
	res, err := c.featureService.GetAll(ctx.Context())
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *featureController) Show(ctx *fiber.Ctx) error {
	res, err := c.featureService.GetByCode(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *featureController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}

	res, err := c.featureService.Create(ctx.Context(), actorFromCtx(ctx), &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusCreated, res, "Feature created")
}

func (c *featureController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.featureService.Update(ctx.Context(), actorFromCtx(ctx), ctx.Params("code"), &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "Feature updated")
}

func (c *featureController) Delete(ctx *fiber.Ctx) error {
	if err := c.featureService.Delete(ctx.Context(), actorFromCtx(ctx), ctx.Params("code")); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, nil, "Feature deleted")
}

func (c *featureController) CreateSubfeature(ctx *fiber.Ctx) error {
	var req dto.CreateSubfeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}

	res, err := c.featureService.CreateSubfeature(ctx.Context(), actorFromCtx(ctx), &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusCreated, res, "Subfeature created")
}

func (c *featureController) UpdateSubfeature(ctx *fiber.Ctx) error {
	var req dto.UpdateSubfeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.featureService.UpdateSubfeature(ctx.Context(), actorFromCtx(ctx), ctx.Params("code"), &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "Subfeature updated")
}

func (c *featureController) DeleteSubfeature(ctx *fiber.Ctx) error {
	if err := c.featureService.DeleteSubfeature(ctx.Context(), actorFromCtx(ctx), ctx.Params("code")); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, nil, "Subfeature deleted")
}
