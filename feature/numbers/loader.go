package numbers

import (
	"number-management-service/core/remote"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Numbers feature.
func NewFeature(fetcher remote.Fetcher, logger *zap.Logger) *Feature {
	svc := NewService(fetcher, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "numbers"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the aggregation service for non-HTTP callers such as the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
