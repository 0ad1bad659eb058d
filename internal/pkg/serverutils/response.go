package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"hestia-console-be/internal/pkg/apperr"
)

// Envelope is the uniform response shape of the whole API:
// { data, error, message? }.
type Envelope struct {
	Data    interface{} `json:"data"`
	Error   bool        `json:"error"`
	Message string      `json:"message,omitempty"`
}

func SendSuccess(ctx *fiber.Ctx, status int, data interface{}, message string) error {
	return ctx.Status(status).JSON(Envelope{
		Data:    data,
		Error:   false,
		Message: message,
	})
}

func SendError(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(Envelope{
		Data:    nil,
		Error:   true,
		Message: message,
	})
}

// SendServiceError maps a service error kind to its HTTP status. Unknown
// kinds surface as a plain 500 without leaking internals.
func SendServiceError(ctx *fiber.Ctx, err error) error {
	status := apperr.StatusCode(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return SendError(ctx, status, message)
}
