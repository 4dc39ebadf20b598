package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewApp собирает fiber приложение со всеми маршрутами
func NewApp(classes ClassService, db Pinger, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "classes-api",
		ErrorHandler:          errorHandler(logger),
		ReadTimeout:           10 * time.Second,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(accessLog(logger))

	SetupRoutes(app, NewClassHandler(classes, logger), db, logger)

	return app
}

func SetupRoutes(app *fiber.App, classes *ClassHandler, db Pinger, logger *zap.Logger) {
	app.Get("/health", Health(db, logger))

	app.Get("/classes", classes.Search)
	app.Post("/classes", classes.Create)
}

// accessLog пишет строку на каждый запрос
func accessLog(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// ошибку сначала превращаем в ответ, иначе статус ещё 200
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Info("HTTP request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)))

		return nil
	}
}
