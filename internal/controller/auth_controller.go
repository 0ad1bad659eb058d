package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/pkg/serverutils"
	"hestia-console-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Get("/me", serverutils.JwtMiddleware, c.Me)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}

	res, err := c.authService.Register(ctx.Context(), &req, ctx.IP())
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusCreated, res, "Registered")
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.SendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.SendServiceError(ctx, err)
	}

	res, err := c.authService.Login(ctx.Context(), &req, ctx.IP())
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "Logged in")
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(serverutils.CallerId(ctx))
	if err != nil {
		return serverutils.SendError(ctx, fiber.StatusUnauthorized, "Invalid token")
	}

	res, err := c.authService.Me(ctx.Context(), userId)
	if err != nil {
		return serverutils.SendServiceError(ctx, err)
	}
	return serverutils.SendSuccess(ctx, fiber.StatusOK, res, "")
}
