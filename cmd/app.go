package cmd

import (
	"number-management-service/core/config"
	"number-management-service/core/loader"
	"number-management-service/core/logger"
	"number-management-service/core/middleware/rayid"
	"number-management-service/core/remote"
	"number-management-service/feature/numbers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "number-management-service/docs/swagger"
)

// newApp builds the Fiber application with middleware and all features loaded.
func newApp(cfg *config.Config, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	mgr := loader.NewManager()
	mgr.Register(numbers.NewFeature(remote.NewClient(cfg.Remote), logg))

	// RayID first so every later log line can be correlated
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return app, nil
}
