package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mealplan/internal/middleware"
	"mealplan/internal/services"
)

// GetShoppingList aggregates every planned, still-existing recipe's
// ingredients over the date range into one deduplicated list
// GET /api/shopping-list?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) GetShoppingList(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	start, end, msg := parseDateRange(c)
	if msg != "" {
		return Error(c, fiber.StatusBadRequest, msg)
	}

	plan, err := h.db.GetPlanRange(c.Context(), userID, start, end)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load meal plan")
	}

	recipes, err := h.db.ListRecipes(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load recipes")
	}

	items := services.BuildShoppingList(plan, recipes, start, end)
	if items == nil {
		return Error(c, fiber.StatusNotFound, "no planned meals in range")
	}

	return Success(c, items)
}

// GetItinerary renders the printable itinerary for the date range. It
// shares the shopping list's emptiness gate: a range with no resolvable
// meals yields the same not-found response.
// GET /api/itinerary?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) GetItinerary(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	start, end, msg := parseDateRange(c)
	if msg != "" {
		return Error(c, fiber.StatusBadRequest, msg)
	}

	plan, err := h.db.GetPlanRange(c.Context(), userID, start, end)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load meal plan")
	}

	recipes, err := h.db.ListRecipes(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load recipes")
	}

	itinerary := services.BuildItinerary(plan, recipes, start, end)
	if itinerary == "" {
		return Error(c, fiber.StatusNotFound, "no planned meals in range")
	}

	c.Set("Content-Type", "text/plain; charset=utf-8")
	return c.SendString(itinerary)
}
