package numbers

import (
	"number-management-service/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for number aggregation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the numbers routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/numbers", h.HandleNumbers)
}

// HandleNumbers merges the numbers published by the given sources.
// @Summary Aggregate Numbers
// @Description Fetches every source concurrently (500ms timeout each) and returns the distinct numbers they publish, sorted ascending. Sources that fail or time out contribute nothing.
// @Tags numbers
// @Produce json
// @Param url query []string true "Source URL, repeated once per source" collectionFormat(multi)
// @Success 200 {object} numbers.NumbersResponse "Merged numbers"
// @Failure 400 {object} numbers.ErrorResponse "Invalid URLs"
// @Failure 500 {object} numbers.ErrorResponse "Internal server error"
// @Router /numbers [get]
func (h *Handler) HandleNumbers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	urls, err := ValidateSources(ParseSourceParam(c.Context().QueryArgs()))
	if err != nil {
		l.Info("Rejected numbers request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msgInvalidURLs})
	}

	numbers, err := h.service.WithLogger(l).Aggregate(c.UserContext(), urls)
	if err != nil {
		l.Error("Error while processing URLs", zap.Strings("urls", urls), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msgInternalError})
	}

	l.Debug("Numbers aggregated",
		zap.Int("sources", len(urls)),
		zap.Int("numbers", len(numbers)))

	return c.JSON(NumbersResponse{Numbers: numbers})
}
