package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/aazdagabde/smart-hire/pkg/apperr"
)

type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// FromError отображает коды ошибок приложения в HTTP-статусы; для ошибок
// валидации отдаёт пополевые сообщения.
func FromError(c *fiber.Ctx, err error) error {
	var e *apperr.Error
	if !errors.As(err, &e) {
		return Error(c, http.StatusInternalServerError, "внутренняя ошибка")
	}
	status := http.StatusInternalServerError
	switch e.Code {
	case apperr.CodeValidation:
		status = http.StatusBadRequest
	case apperr.CodeGate:
		status = http.StatusConflict
	case apperr.CodeNotFound:
		status = http.StatusNotFound
	case apperr.CodeForbidden:
		status = http.StatusForbidden
	case apperr.CodeDelivery:
		status = http.StatusBadGateway
	}
	return JSON(c, status, ErrorResponse{Message: e.Message, Fields: e.Fields})
}
