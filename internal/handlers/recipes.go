package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mealplan/internal/database"
	"mealplan/internal/middleware"
	"mealplan/internal/models"
)

// ListRecipes returns the user's recipe collection
// GET /api/recipes
func (h *Handler) ListRecipes(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipes, err := h.db.ListRecipes(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to list recipes")
	}

	return Success(c, recipes)
}

// GetRecipe returns a single recipe
// GET /api/recipes/:id
func (h *Handler) GetRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipe, err := h.db.GetRecipeByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		if errors.Is(err, database.ErrRecipeNotFound) {
			return Error(c, fiber.StatusNotFound, "recipe not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get recipe")
	}

	return Success(c, recipe)
}

// CreateRecipe creates a new recipe
// POST /api/recipes
func (h *Handler) CreateRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req models.CreateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if msg := validateRecipeRequest(&req); msg != "" {
		return Error(c, fiber.StatusBadRequest, msg)
	}

	recipe := &models.Recipe{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		PrepTime:     req.PrepTime,
		Meal:         req.Meal,
		Servings:     req.Servings,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	}

	created, err := h.db.CreateRecipe(c.Context(), recipe)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to create recipe")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: created})
}

// UpdateRecipe replaces a recipe's content fields
// PUT /api/recipes/:id
func (h *Handler) UpdateRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req models.CreateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if msg := validateRecipeRequest(&req); msg != "" {
		return Error(c, fiber.StatusBadRequest, msg)
	}

	recipe := &models.Recipe{
		ID:           c.Params("id"),
		UserID:       userID,
		Name:         req.Name,
		PrepTime:     req.PrepTime,
		Meal:         req.Meal,
		Servings:     req.Servings,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	}

	updated, err := h.db.UpdateRecipe(c.Context(), recipe)
	if err != nil {
		if errors.Is(err, database.ErrRecipeNotFound) {
			return Error(c, fiber.StatusNotFound, "recipe not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to update recipe")
	}

	return Success(c, updated)
}

// DeleteRecipe removes a recipe. Meal plan slots that reference it are
// intentionally left in place; they are skipped when building shopping
// lists and itineraries.
// DELETE /api/recipes/:id
func (h *Handler) DeleteRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.db.DeleteRecipe(c.Context(), c.Params("id"), userID); err != nil {
		if errors.Is(err, database.ErrRecipeNotFound) {
			return Error(c, fiber.StatusNotFound, "recipe not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to delete recipe")
	}

	return Success(c, fiber.Map{"deleted": true})
}

// DuplicateRecipe copies a recipe under a fresh id
// POST /api/recipes/:id/duplicate
func (h *Handler) DuplicateRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	original, err := h.db.GetRecipeByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		if errors.Is(err, database.ErrRecipeNotFound) {
			return Error(c, fiber.StatusNotFound, "recipe not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get recipe")
	}

	duplicate := &models.Recipe{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         original.Name + " (Copy)",
		PrepTime:     original.PrepTime,
		Meal:         original.Meal,
		Servings:     original.Servings,
		Ingredients:  original.Ingredients,
		Instructions: original.Instructions,
	}

	created, err := h.db.CreateRecipe(c.Context(), duplicate)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to duplicate recipe")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: created})
}

// validateRecipeRequest checks required fields, returning a message for
// the first problem found
func validateRecipeRequest(req *models.CreateRecipeRequest) string {
	req.Name = strings.TrimSpace(req.Name)
	req.PrepTime = strings.TrimSpace(req.PrepTime)
	req.Instructions = strings.TrimSpace(req.Instructions)

	if req.Name == "" {
		return "name is required"
	}
	if req.PrepTime == "" {
		return "prep_time is required"
	}
	if !req.Meal.IsValid() {
		return "meal must be breakfast, lunch, dinner or snack"
	}
	if req.Servings <= 0 {
		return "servings must be positive"
	}
	if len(req.Ingredients) == 0 {
		return "at least one ingredient is required"
	}
	if req.Instructions == "" {
		return "instructions are required"
	}
	return ""
}
