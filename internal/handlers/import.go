package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mealplan/internal/middleware"
	"mealplan/internal/models"
	"mealplan/internal/services"
)

// ImportRecipes validates a raw import payload and merges the surviving
// records into the user's collection. Records that fail validation are
// dropped without individual reporting; the response carries only the
// counts, and "no recipes found in file" is the client's message to make
// when imported is zero.
// POST /api/recipes/import
func (h *Handler) ImportRecipes(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	body := c.Body()
	if len(body) == 0 {
		return Error(c, fiber.StatusBadRequest, "request body is required")
	}

	validated := services.ValidateImport(body)
	if len(validated) == 0 {
		return Success(c, models.ImportResult{Imported: 0, Total: 0})
	}

	// Assign fresh identifiers to the incoming batch; the merge keeps the
	// existing recipe's id whenever a name collides.
	incoming := make([]models.Recipe, 0, len(validated))
	for _, r := range validated {
		incoming = append(incoming, models.Recipe{
			ID:           uuid.NewString(),
			UserID:       userID,
			Name:         r.Name,
			PrepTime:     r.PrepTime,
			Meal:         r.Meal,
			Servings:     r.Servings,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
		})
	}

	existing, err := h.db.ListRecipes(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load recipes")
	}

	merged := services.MergeRecipes(existing, incoming)

	if err := h.db.UpsertRecipes(c.Context(), userID, merged); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to save imported recipes")
	}

	return Success(c, models.ImportResult{
		Imported: len(validated),
		Total:    len(merged),
	})
}

// ExportRecipes serializes the user's collection into the import-
// compatible export document
// GET /api/recipes/export
func (h *Handler) ExportRecipes(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipes, err := h.db.ListRecipes(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load recipes")
	}

	c.Set("Content-Disposition", `attachment; filename="recipes.json"`)
	return c.JSON(services.BuildExportPayload(recipes))
}
