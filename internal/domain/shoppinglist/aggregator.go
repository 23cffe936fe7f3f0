// Package shoppinglist folds a user's shopping cart into one list of
// ingredients to buy.
package shoppinglist

import (
	"context"

	"foodgram/internal/domain/recipe"
)

type CartReader interface {
	RecipeIDs(ctx context.Context, userID int64) ([]int64, error)
}

type LineReader interface {
	Lines(ctx context.Context, recipeIDs []int64) (map[int64][]recipe.IngredientLine, error)
}

type Item struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type Report struct {
	Items []Item `json:"items"`
}

type Aggregator struct {
	cart  CartReader
	lines LineReader
}

func NewAggregator(cart CartReader, lines LineReader) *Aggregator {
	return &Aggregator{cart: cart, lines: lines}
}

// Build sums the ingredients of every recipe in the user's cart.
//
// Lines are grouped by exact ingredient name. The unit of the first line
// seen for a name is reported and later amounts are added to it as is,
// even when their unit differs. Items keep first-seen order, walking the
// cart oldest entry first and each recipe in its own line order.
func (a *Aggregator) Build(ctx context.Context, userID int64) (*Report, error) {
	ids, err := a.cart.RecipeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrEmptyCart
	}

	byRecipe, err := a.lines.Lines(ctx, ids)
	if err != nil {
		return nil, err
	}

	report := &Report{Items: []Item{}}
	index := make(map[string]int)
	for _, id := range ids {
		for _, line := range byRecipe[id] {
			if i, ok := index[line.Name]; ok {
				report.Items[i].Amount += line.Amount
				continue
			}
			index[line.Name] = len(report.Items)
			report.Items = append(report.Items, Item{
				Name:            line.Name,
				MeasurementUnit: line.MeasurementUnit,
				Amount:          line.Amount,
			})
		}
	}
	return report, nil
}
