package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"mealplan/internal/models"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// ListRecipes returns all recipes for a user, oldest first so the
// collection keeps a stable order across merges
func (db *DB) ListRecipes(ctx context.Context, userID int) ([]models.Recipe, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, name, prep_time, meal, servings, ingredients, instructions, created_at, updated_at
		FROM recipes
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		var r models.Recipe
		err := rows.Scan(
			&r.ID, &r.UserID, &r.Name, &r.PrepTime, &r.Meal, &r.Servings,
			&r.Ingredients, &r.Instructions, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}

	return recipes, rows.Err()
}

// GetRecipeByID retrieves a single recipe owned by the user
func (db *DB) GetRecipeByID(ctx context.Context, id string, userID int) (*models.Recipe, error) {
	r := &models.Recipe{}

	err := db.Pool.QueryRow(ctx, `
		SELECT id, user_id, name, prep_time, meal, servings, ingredients, instructions, created_at, updated_at
		FROM recipes
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&r.ID, &r.UserID, &r.Name, &r.PrepTime, &r.Meal, &r.Servings,
		&r.Ingredients, &r.Instructions, &r.CreatedAt, &r.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	return r, nil
}

// CreateRecipe inserts a new recipe
func (db *DB) CreateRecipe(ctx context.Context, r *models.Recipe) (*models.Recipe, error) {
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO recipes (id, user_id, name, prep_time, meal, servings, ingredients, instructions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`, r.ID, r.UserID, r.Name, r.PrepTime, r.Meal, r.Servings, r.Ingredients, r.Instructions).Scan(
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// UpdateRecipe updates an existing recipe's content fields
func (db *DB) UpdateRecipe(ctx context.Context, r *models.Recipe) (*models.Recipe, error) {
	err := db.Pool.QueryRow(ctx, `
		UPDATE recipes
		SET name = $3, prep_time = $4, meal = $5, servings = $6, ingredients = $7, instructions = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at
	`, r.ID, r.UserID, r.Name, r.PrepTime, r.Meal, r.Servings, r.Ingredients, r.Instructions).Scan(
		&r.CreatedAt, &r.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	return r, nil
}

// UpsertRecipes persists a merged collection: existing ids are updated in
// place, new ids inserted. Used after an import merge so identifiers of
// overwritten recipes survive.
func (db *DB) UpsertRecipes(ctx context.Context, userID int, recipes []models.Recipe) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, r := range recipes {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipes (id, user_id, name, prep_time, meal, servings, ingredients, instructions, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name,
				prep_time = EXCLUDED.prep_time,
				meal = EXCLUDED.meal,
				servings = EXCLUDED.servings,
				ingredients = EXCLUDED.ingredients,
				instructions = EXCLUDED.instructions,
				updated_at = NOW()
		`, r.ID, userID, r.Name, r.PrepTime, r.Meal, r.Servings, r.Ingredients, r.Instructions)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// DeleteRecipe removes a recipe. Meal plan slots pointing at it are left
// alone; stale references are tolerated downstream.
func (db *DB) DeleteRecipe(ctx context.Context, id string, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		"DELETE FROM recipes WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecipeNotFound
	}
	return nil
}
