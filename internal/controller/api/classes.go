package api

import (
	"context"
	"errors"

	"github.com/Freeeeeet/classes_api/internal/model"
	"github.com/Freeeeeet/classes_api/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ClassService операции над классами, которые нужны HTTP слою
type ClassService interface {
	Search(ctx context.Context, filter service.SearchFilter) ([]*model.ClassListing, error)
	Register(ctx context.Context, req service.RegisterClassRequest) (*model.Class, error)
}

type ClassHandler struct {
	classes ClassService
	logger  *zap.Logger
}

func NewClassHandler(classes ClassService, logger *zap.Logger) *ClassHandler {
	return &ClassHandler{
		classes: classes,
		logger:  logger,
	}
}

// Search handles GET /classes?subject=&week_day=&time=
func (h *ClassHandler) Search(c *fiber.Ctx) error {
	filter := service.SearchFilter{
		Subject: c.Query("subject"),
		WeekDay: c.Query("week_day"),
		Time:    c.Query("time"),
	}

	listings, err := h.classes.Search(c.UserContext(), filter)
	if err != nil {
		if errors.Is(err, service.ErrMissingFilter) || errors.Is(err, service.ErrInvalidFilter) {
			status, message := ErrorMessage(err)
			return errorJSON(c, status, message)
		}
		return err
	}

	if listings == nil {
		listings = []*model.ClassListing{}
	}

	return c.JSON(listings)
}

// Create handles POST /classes
func (h *ClassHandler) Create(c *fiber.Ctx) error {
	var req service.RegisterClassRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warn("Failed to parse class payload", zap.Error(err))
		return errorJSON(c, fiber.StatusBadRequest, msgRegistrationFailed)
	}

	if _, err := h.classes.Register(c.UserContext(), req); err != nil {
		status, message := ErrorMessage(err)
		if status == fiber.StatusInternalServerError {
			// регистрация сообщает клиенту только одну ошибку
			status, message = fiber.StatusBadRequest, msgRegistrationFailed
		}
		return errorJSON(c, status, message)
	}

	// SendStatus подставил бы текст статуса в пустое тело
	return c.Status(fiber.StatusCreated).Send(nil)
}
