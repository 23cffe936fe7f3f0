package recipe

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/metrics"
)

const (
	RelationFavorite     = "favorite"
	RelationShoppingCart = "shopping_cart"
)

type recipeGetter interface {
	GetByID(ctx context.Context, id int64) (*Recipe, error)
}

// RelationToggle manages a (user, recipe) membership table such as
// favorites or the shopping cart. T is the row type; the table must have
// user_id and recipe_id columns with a unique index over the pair.
type RelationToggle[T any] struct {
	db      *gorm.DB
	name    string
	recipes recipeGetter
	newRow  func(userID, recipeID int64) *T
}

func NewRelationToggle[T any](db *gorm.DB, name string, recipes recipeGetter, newRow func(userID, recipeID int64) *T) *RelationToggle[T] {
	return &RelationToggle[T]{db: db, name: name, recipes: recipes, newRow: newRow}
}

func NewFavorites(db *gorm.DB, recipes recipeGetter) *RelationToggle[Favorite] {
	return NewRelationToggle(db, RelationFavorite, recipes, func(userID, recipeID int64) *Favorite {
		return &Favorite{UserID: userID, RecipeID: recipeID}
	})
}

func NewShoppingCart(db *gorm.DB, recipes recipeGetter) *RelationToggle[ShoppingListEntry] {
	return NewRelationToggle(db, RelationShoppingCart, recipes, func(userID, recipeID int64) *ShoppingListEntry {
		return &ShoppingListEntry{UserID: userID, RecipeID: recipeID}
	})
}

func (t *RelationToggle[T]) Name() string { return t.name }

// Add puts the recipe into the user's list and returns its short summary.
// The unique index on the pair decides between concurrent adds.
func (t *RelationToggle[T]) Add(ctx context.Context, userID, recipeID int64) (ShortSummary, error) {
	rec, err := t.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return ShortSummary{}, err
	}

	if err := t.db.WithContext(ctx).Create(t.newRow(userID, recipeID)).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ShortSummary{}, ErrAlreadyAdded
		}
		return ShortSummary{}, fmt.Errorf("add %s: %w", t.name, err)
	}

	metrics.RecordRelationChange(t.name, "add")
	return toShortSummary(rec), nil
}

// Remove deletes the pair. Removing an absent pair is ErrRelationNotFound.
func (t *RelationToggle[T]) Remove(ctx context.Context, userID, recipeID int64) error {
	res := t.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("remove %s: %w", t.name, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRelationNotFound
	}

	metrics.RecordRelationChange(t.name, "remove")
	return nil
}

func (t *RelationToggle[T]) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := t.db.WithContext(ctx).
		Model(new(T)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check %s: %w", t.name, err)
	}
	return count > 0, nil
}

// Marked reports which of recipeIDs are in the user's list.
func (t *RelationToggle[T]) Marked(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return out, nil
	}

	var ids []int64
	err := t.db.WithContext(ctx).
		Model(new(T)).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("load %s marks: %w", t.name, err)
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// RecipeIDs lists the user's entries, oldest first.
func (t *RelationToggle[T]) RecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := t.db.WithContext(ctx).
		Model(new(T)).
		Where("user_id = ?", userID).
		Order("created_at ASC").Order("id ASC").
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return ids, nil
}
