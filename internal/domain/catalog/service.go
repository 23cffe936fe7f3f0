package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"foodgram/internal/pkg/validator"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListTags(ctx context.Context) ([]Tag, error) {
	return s.repo.ListTags(ctx)
}

func (s *Service) GetTag(ctx context.Context, id int64) (*Tag, error) {
	return s.repo.GetTag(ctx, id)
}

// SearchIngredients matches a case-insensitive name prefix. An empty prefix
// lists everything.
func (s *Service) SearchIngredients(ctx context.Context, name string) ([]Ingredient, error) {
	return s.repo.SearchIngredients(ctx, name)
}

func (s *Service) GetIngredient(ctx context.Context, id int64) (*Ingredient, error) {
	return s.repo.GetIngredient(ctx, id)
}

// ImportIngredients reads a JSON array of {"name", "measurement_unit"}
// objects and inserts the ones not already present.
func (s *Service) ImportIngredients(ctx context.Context, r io.Reader) (int64, error) {
	var rows []IngredientImport
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return 0, fmt.Errorf("decode ingredients: %w", err)
	}

	items := make([]Ingredient, 0, len(rows))
	for i, row := range rows {
		row.Name = strings.TrimSpace(row.Name)
		row.MeasurementUnit = strings.TrimSpace(row.MeasurementUnit)
		if fields := validator.Validate(row); fields != nil {
			return 0, fmt.Errorf("ingredient #%d %v: %w", i, fields, ErrInvalidImport)
		}
		items = append(items, Ingredient{Name: row.Name, MeasurementUnit: row.MeasurementUnit})
	}
	return s.repo.ImportIngredients(ctx, items)
}

// ImportTags reads a JSON array of {"name", "slug"} objects. Slugs are
// limited to letters, digits, '-' and '_'.
func (s *Service) ImportTags(ctx context.Context, r io.Reader) (int64, error) {
	var rows []TagImport
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return 0, fmt.Errorf("decode tags: %w", err)
	}

	items := make([]Tag, 0, len(rows))
	for i, row := range rows {
		row.Name = strings.TrimSpace(row.Name)
		row.Slug = strings.TrimSpace(row.Slug)
		if fields := validator.Validate(row); fields != nil {
			return 0, fmt.Errorf("tag #%d %v: %w", i, fields, ErrInvalidImport)
		}
		items = append(items, Tag{Name: row.Name, Slug: row.Slug})
	}
	return s.repo.ImportTags(ctx, items)
}
