package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/pkg/serverutils"
	"hestia-console-be/internal/service"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRoles(string(entity.UserRoleRoot), string(entity.UserRoleAdmin)))
	h.Get("", c.List)
	h.Get("/:id", c.Show)
	h.Post("", c.Create)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *userController) List(ctx *fiber.Ctx) error {
	res, err := c.userService.GetAll(ctx.Context())
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	res, err := c.userService.GetById(ctx.Context(), id)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}

	res, err := c.userService.Create(ctx.Context(), actorFromCtx(ctx), &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusCreated, res, "User created")
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.userService.Update(ctx.Context(), actorFromCtx(ctx), id, &req)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "User updated")
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	if err := c.userService.Delete(ctx.Context(), actorFromCtx(ctx), id); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, nil, "User deleted")
}
