package recipe

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"foodgram/internal/domain/catalog"
)

// Filter narrows a recipe listing. Zero values disable a filter.
type Filter struct {
	AuthorID    int64
	TagSlugs    []string
	FavoritedBy int64
	InCartOf    int64
	Offset      int
	Limit       int
}

// IngredientLine is a recipe line joined with its catalog ingredient.
type IngredientLine struct {
	RecipeID        int64  `json:"-"`
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type Repository interface {
	Create(ctx context.Context, r *Recipe, lines []RecipeIngredient, tagIDs []int64) error
	// Update rewrites the recipe fields and replaces both sets atomically.
	Update(ctx context.Context, r *Recipe, lines []RecipeIngredient, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Recipe, error)
	List(ctx context.Context, f Filter) ([]Recipe, int64, error)
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
	Lines(ctx context.Context, recipeIDs []int64) (map[int64][]IngredientLine, error)
	Tags(ctx context.Context, recipeIDs []int64) (map[int64][]catalog.Tag, error)
	PurgeUser(tx *gorm.DB, userID int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Recipe, lines []RecipeIngredient, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		return insertSets(tx, rec.ID, lines, tagIDs)
	})
}

func (r *repository) Update(ctx context.Context, rec *Recipe, lines []RecipeIngredient, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Recipe{}).Where("id = ?", rec.ID).Updates(map[string]any{
			"name":         rec.Name,
			"image":        rec.Image,
			"text":         rec.Text,
			"cooking_time": rec.CookingTime,
			"updated_at":   tx.NowFunc(),
		})
		if res.Error != nil {
			return fmt.Errorf("update recipe: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRecipeNotFound
		}

		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&RecipeIngredient{}).Error; err != nil {
			return fmt.Errorf("clear ingredients: %w", err)
		}
		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&RecipeTag{}).Error; err != nil {
			return fmt.Errorf("clear tags: %w", err)
		}
		return insertSets(tx, rec.ID, lines, tagIDs)
	})
}

func insertSets(tx *gorm.DB, recipeID int64, lines []RecipeIngredient, tagIDs []int64) error {
	for i := range lines {
		lines[i].ID = 0
		lines[i].RecipeID = recipeID
	}
	if len(lines) > 0 {
		if err := tx.Create(&lines).Error; err != nil {
			return fmt.Errorf("insert ingredients: %w", err)
		}
	}

	tags := make([]RecipeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, RecipeTag{RecipeID: recipeID, TagID: id})
	}
	if len(tags) > 0 {
		if err := tx.Create(&tags).Error; err != nil {
			return fmt.Errorf("insert tags: %w", err)
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&RecipeIngredient{}, &RecipeTag{}, &Favorite{}, &ShoppingListEntry{}} {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return fmt.Errorf("delete recipe set: %w", err)
			}
		}
		res := tx.Delete(&Recipe{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete recipe: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRecipeNotFound
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Recipe, error) {
	var rec Recipe
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &rec, nil
}

func (r *repository) List(ctx context.Context, f Filter) ([]Recipe, int64, error) {
	q := r.db.WithContext(ctx).Model(&Recipe{})

	if f.AuthorID != 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if len(f.TagSlugs) > 0 {
		q = q.Where("id IN (?)", r.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", f.TagSlugs))
	}
	if f.FavoritedBy != 0 {
		q = q.Where("id IN (?)", r.db.Model(&Favorite{}).Select("recipe_id").Where("user_id = ?", f.FavoritedBy))
	}
	if f.InCartOf != 0 {
		q = q.Where("id IN (?)", r.db.Model(&ShoppingListEntry{}).Select("recipe_id").Where("user_id = ?", f.InCartOf))
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	var recipes []Recipe
	err := q.Order("created_at DESC").Order("id DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, total, nil
}

// ListByAuthor returns the author's most recent recipes; limit <= 0 means all.
func (r *repository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]Recipe, error) {
	q := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recipes []Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list author recipes: %w", err)
	}
	return recipes, nil
}

func (r *repository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *repository) Lines(ctx context.Context, recipeIDs []int64) (map[int64][]IngredientLine, error) {
	out := make(map[int64][]IngredientLine, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return out, nil
	}

	var rows []IngredientLine
	err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("recipe_ingredients.recipe_id, ingredients.id, ingredients.name, ingredients.measurement_unit, recipe_ingredients.amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN ?", recipeIDs).
		Order("recipe_ingredients.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load ingredient lines: %w", err)
	}

	for _, row := range rows {
		out[row.RecipeID] = append(out[row.RecipeID], row)
	}
	return out, nil
}

func (r *repository) Tags(ctx context.Context, recipeIDs []int64) (map[int64][]catalog.Tag, error) {
	out := make(map[int64][]catalog.Tag, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return out, nil
	}

	var rows []tagRow
	err := r.db.WithContext(ctx).
		Table("recipe_tags").
		Select("recipe_tags.recipe_id, tags.id, tags.name, tags.slug").
		Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
		Where("recipe_tags.recipe_id IN ?", recipeIDs).
		Order("recipe_tags.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load recipe tags: %w", err)
	}

	for _, row := range rows {
		out[row.RecipeID] = append(out[row.RecipeID], catalog.Tag{ID: row.ID, Name: row.Name, Slug: row.Slug})
	}
	return out, nil
}

type tagRow struct {
	RecipeID int64
	ID       int64
	Name     string
	Slug     string
}

// PurgeUser deletes the user's recipes with everything that references
// them, plus the user's own favorites and cart entries.
func (r *repository) PurgeUser(tx *gorm.DB, userID int64) error {
	authored := tx.Session(&gorm.Session{NewDB: true}).
		Model(&Recipe{}).Select("id").Where("author_id = ?", userID)

	for _, model := range []any{&RecipeIngredient{}, &RecipeTag{}, &Favorite{}, &ShoppingListEntry{}} {
		if err := tx.Where("recipe_id IN (?)", authored).Delete(model).Error; err != nil {
			return fmt.Errorf("purge recipe sets: %w", err)
		}
	}
	if err := tx.Where("author_id = ?", userID).Delete(&Recipe{}).Error; err != nil {
		return fmt.Errorf("purge recipes: %w", err)
	}
	for _, model := range []any{&Favorite{}, &ShoppingListEntry{}} {
		if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
			return fmt.Errorf("purge user lists: %w", err)
		}
	}
	return nil
}
