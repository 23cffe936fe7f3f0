package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListTags(ctx context.Context) ([]Tag, error)
	GetTag(ctx context.Context, id int64) (*Tag, error)
	TagsByIDs(ctx context.Context, ids []int64) ([]Tag, error)
	TagsBySlugs(ctx context.Context, slugs []string) ([]Tag, error)

	SearchIngredients(ctx context.Context, namePrefix string) ([]Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*Ingredient, error)
	IngredientsByIDs(ctx context.Context, ids []int64) ([]Ingredient, error)

	// ImportIngredients inserts rows that do not exist yet and reports how
	// many were added.
	ImportIngredients(ctx context.Context, items []Ingredient) (int64, error)
	ImportTags(ctx context.Context, items []Tag) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (r *repository) GetTag(ctx context.Context, id int64) (*Tag, error) {
	var tag Tag
	err := r.db.WithContext(ctx).First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &tag, nil
}

func (r *repository) TagsByIDs(ctx context.Context, ids []int64) ([]Tag, error) {
	var tags []Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("tags by ids: %w", err)
	}
	return tags, nil
}

func (r *repository) TagsBySlugs(ctx context.Context, slugs []string) ([]Tag, error) {
	var tags []Tag
	if len(slugs) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("tags by slugs: %w", err)
	}
	return tags, nil
}

func (r *repository) SearchIngredients(ctx context.Context, namePrefix string) ([]Ingredient, error) {
	q := r.db.WithContext(ctx).Model(&Ingredient{})
	if p := strings.TrimSpace(namePrefix); p != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '\\'", escapeLike(strings.ToLower(p))+"%")
	}

	var items []Ingredient
	if err := q.Order("name ASC").Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	return items, nil
}

func (r *repository) GetIngredient(ctx context.Context, id int64) (*Ingredient, error) {
	var item Ingredient
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrIngredientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &item, nil
}

func (r *repository) IngredientsByIDs(ctx context.Context, ids []int64) ([]Ingredient, error) {
	var items []Ingredient
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("ingredients by ids: %w", err)
	}
	return items, nil
}

func (r *repository) ImportIngredients(ctx context.Context, items []Ingredient) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&items, 500)
	if res.Error != nil {
		return 0, fmt.Errorf("import ingredients: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *repository) ImportTags(ctx context.Context, items []Tag) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&items)
	if res.Error != nil {
		return 0, fmt.Errorf("import tags: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
