package http

import (
	"strconv"

	adminhttp "lostfound-admin/internal/admin/adapter/http"
	"lostfound-admin/internal/console/usecase"
	"lostfound-admin/internal/shared/errors"
	"lostfound-admin/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConsoleHTTPHandler handles HTTP requests for the admin console
type ConsoleHTTPHandler struct {
	usecase usecase.ConsoleUsecaseInterface
	logger  logger.Logger
}

// NewConsoleHTTPHandler creates a new console HTTP handler
func NewConsoleHTTPHandler(uc usecase.ConsoleUsecaseInterface, log logger.Logger) *ConsoleHTTPHandler {
	return &ConsoleHTTPHandler{
		usecase: uc,
		logger:  log,
	}
}

// SetupConsoleRoutes registers every console route behind the staff session
// middleware.
func (h *ConsoleHTTPHandler) SetupConsoleRoutes(router fiber.Router, middleware *adminhttp.AdminMiddleware) {
	protected := router.Group("/", middleware.Protect())

	protected.Get("/api/stats", h.GetStats)
	protected.Get("/users", h.ListUsers)
	protected.Post("/admin/users/:uid", h.SetUserStatus)
	protected.Get("/items/:collection", h.ListItems)
	protected.Post("/delete_item", h.DeleteItem)
	protected.Get("/matches", h.ListMatches)
	protected.Get("/search", h.GlobalSearch)
}

// GetStats returns the dashboard counters.
func (h *ConsoleHTTPHandler) GetStats(c *fiber.Ctx) error {
	stats := h.usecase.DashboardStats(c.Context())
	return c.JSON(stats)
}

// ListUsers returns directory accounts, filtered by the q query parameter.
func (h *ConsoleHTTPHandler) ListUsers(c *fiber.Ctx) error {
	users := h.usecase.ListUsers(c.Context(), c.Query("q"))
	return c.JSON(fiber.Map{
		"users": users,
	})
}

// SetUserStatus enables or disables an account. The disabled form field
// defaults to true so a bare POST disables.
func (h *ConsoleHTTPHandler) SetUserStatus(c *fiber.Ctx) error {
	uid := c.Params("uid")

	disabled := true
	if v := c.FormValue("disabled"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "disabled must be a boolean",
			})
		}
		disabled = parsed
	}

	if err := h.usecase.SetUserStatus(c.Context(), uid, disabled); err != nil {
		if errors.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Failed to update user status",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"uid":      uid,
		"disabled": disabled,
	})
}

// ListItems returns a managed item collection, filtered by the q parameter.
func (h *ConsoleHTTPHandler) ListItems(c *fiber.Ctx) error {
	collection := c.Params("collection")

	items, err := h.usecase.ListItems(c.Context(), collection, c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"collection": collection,
		"items":      items,
	})
}

// DeleteItemRequest is the JSON body of the delete_item operation.
type DeleteItemRequest struct {
	Collection    string `json:"collection"`
	ID            string `json:"id"`
	ImagePublicID string `json:"image_public_id"`
}

// DeleteItem removes a document and its stored image.
func (h *ConsoleHTTPHandler) DeleteItem(c *fiber.Ctx) error {
	var req DeleteItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.Collection == "" || req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "collection and id are required",
		})
	}

	if err := h.usecase.DeleteItem(c.Context(), req.Collection, req.ID, req.ImagePublicID); err != nil {
		status := fiber.StatusServiceUnavailable
		switch {
		case errors.IsValidation(err):
			status = fiber.StatusBadRequest
		case errors.IsNotFound(err):
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ListMatches recomputes matches at the requested threshold and filters them
// by the q parameter. An absent threshold uses the configured default.
func (h *ConsoleHTTPHandler) ListMatches(c *fiber.Ctx) error {
	threshold := h.usecase.DefaultThreshold()
	if v := c.Query("threshold"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "threshold must be a number",
			})
		}
		threshold = parsed
	}

	matches, err := h.usecase.FilterMatches(c.Context(), threshold, c.Query("q"))
	if err != nil {
		if errors.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to compute matches", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute matches",
		})
	}

	return c.JSON(fiber.Map{
		"threshold": threshold,
		"matches":   matches,
	})
}

// GlobalSearch runs the query across every entity kind.
func (h *ConsoleHTTPHandler) GlobalSearch(c *fiber.Ctx) error {
	results := h.usecase.GlobalSearch(c.Context(), c.Query("q"))
	return c.JSON(results)
}
