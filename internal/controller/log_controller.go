package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/pkg/serverutils"
	"hestia-console-be/internal/service"
)

type ILogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type logController struct {
	auditService service.IAuditService
}

func NewLogController(auditService service.IAuditService) ILogController {
	return &logController{
		auditService: auditService,
	}
}

func (c *logController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/logs")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRoles(string(entity.UserRoleRoot)))
	h.Get("", c.List)
	h.Get("/:id", c.Show)
}

func (c *logController) List(ctx *fiber.Ctx) error {
	action := ctx.Query("action")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.auditService.GetLogs(ctx.Context(), action, limit, offset)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *logController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid log id")
	}

	res, err := c.auditService.GetLogById(ctx.Context(), id)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}
