package api

import (
	"errors"

	"github.com/Freeeeeet/classes_api/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Тексты ошибок, которые видит клиент
const (
	msgMissingFilters     = "Missing filters to search classes."
	msgInvalidFilters     = "Invalid filters to search classes."
	msgRegistrationFailed = "Unexpected error while creating new class."
	msgInternal           = "Internal server error."
)

// ErrorMessage возвращает клиентское сообщение и статус для ошибки сервиса
func ErrorMessage(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrMissingFilter):
		return fiber.StatusBadRequest, msgMissingFilters
	case errors.Is(err, service.ErrInvalidFilter):
		return fiber.StatusBadRequest, msgInvalidFilters
	case errors.Is(err, service.ErrRegistrationFailed):
		return fiber.StatusBadRequest, msgRegistrationFailed
	default:
		return fiber.StatusInternalServerError, msgInternal
	}
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// errorHandler последний рубеж для ошибок, которые обработчики не разобрали сами
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return errorJSON(c, fe.Code, fe.Message)
		}

		logger.Error("Unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
			zap.Error(err))

		status, message := ErrorMessage(err)
		return errorJSON(c, status, message)
	}
}
