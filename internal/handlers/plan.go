package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"mealplan/internal/database"
	"mealplan/internal/middleware"
	"mealplan/internal/models"
)

const dateLayout = "2006-01-02"

// GetPlan returns the plan snapshot for an inclusive date range
// GET /api/plan?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) GetPlan(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	start, end, msg := parseDateRange(c)
	if msg != "" {
		return Error(c, fiber.StatusBadRequest, msg)
	}

	snapshot, err := h.db.GetPlanRange(c.Context(), userID, start, end)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load meal plan")
	}

	return Success(c, snapshot)
}

// AssignSlot sets or clears a recipe on a (date, meal) slot. A null
// recipe_id clears the slot. The recipe must exist at assignment time;
// deleting it later leaves a stale slot, which downstream consumers skip.
// PUT /api/plan/:date/:meal
func (h *Handler) AssignSlot(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date := c.Params("date")
	if _, err := time.Parse(dateLayout, date); err != nil {
		return Error(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	meal := models.MealType(c.Params("meal"))
	if !meal.IsValid() {
		return Error(c, fiber.StatusBadRequest, "meal must be breakfast, lunch, dinner or snack")
	}

	var req models.AssignSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.RecipeID == nil || *req.RecipeID == "" {
		if err := h.db.ClearSlot(c.Context(), userID, date, meal); err != nil {
			return Error(c, fiber.StatusInternalServerError, "failed to clear slot")
		}
		return Success(c, fiber.Map{"cleared": true})
	}

	if _, err := h.db.GetRecipeByID(c.Context(), *req.RecipeID, userID); err != nil {
		if errors.Is(err, database.ErrRecipeNotFound) {
			return Error(c, fiber.StatusNotFound, "recipe not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to check recipe")
	}

	if err := h.db.AssignSlot(c.Context(), userID, date, meal, *req.RecipeID); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to assign slot")
	}

	return Success(c, fiber.Map{"assigned": true})
}

// parseDateRange reads and validates start/end query parameters. An end
// before start is not rejected here; the aggregator treats it as an
// empty range.
func parseDateRange(c *fiber.Ctx) (start, end, errMsg string) {
	start = c.Query("start")
	end = c.Query("end")
	if start == "" || end == "" {
		return "", "", "start and end query parameters are required"
	}
	if _, err := time.Parse(dateLayout, start); err != nil {
		return "", "", "start must be YYYY-MM-DD"
	}
	if _, err := time.Parse(dateLayout, end); err != nil {
		return "", "", "end must be YYYY-MM-DD"
	}
	return start, end, ""
}
