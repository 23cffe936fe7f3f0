package shoppinglist

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodgram/internal/domain/recipe"
)

type mockCart struct {
	mock.Mock
}

func (m *mockCart) RecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

type stubLines map[int64][]recipe.IngredientLine

func (s stubLines) Lines(_ context.Context, ids []int64) (map[int64][]recipe.IngredientLine, error) {
	out := make(map[int64][]recipe.IngredientLine, len(ids))
	for _, id := range ids {
		out[id] = s[id]
	}
	return out, nil
}

func line(name, unit string, amount int) recipe.IngredientLine {
	return recipe.IngredientLine{Name: name, MeasurementUnit: unit, Amount: amount}
}

func TestBuild_SumsSameName(t *testing.T) {
	cart := new(mockCart)
	cart.On("RecipeIDs", mock.Anything, int64(7)).Return([]int64{1, 2}, nil)

	agg := NewAggregator(cart, stubLines{
		1: {line("Sugar", "g", 100)},
		2: {line("Sugar", "g", 50)},
	})

	report, err := agg.Build(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []Item{{Name: "Sugar", MeasurementUnit: "g", Amount: 150}}, report.Items)
	cart.AssertExpectations(t)
}

func TestBuild_FirstSeenOrderAndUnit(t *testing.T) {
	cart := new(mockCart)
	cart.On("RecipeIDs", mock.Anything, int64(1)).Return([]int64{3, 1}, nil)

	agg := NewAggregator(cart, stubLines{
		1: {line("milk", "ml", 200), line("Egg", "pcs", 1)},
		3: {line("egg", "pcs", 2), line("milk", "cup", 1)},
	})

	report, err := agg.Build(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []Item{
		{Name: "egg", MeasurementUnit: "pcs", Amount: 2},
		{Name: "milk", MeasurementUnit: "cup", Amount: 201},
		{Name: "Egg", MeasurementUnit: "pcs", Amount: 1},
	}, report.Items)
}

func TestBuild_EmptyCart(t *testing.T) {
	cart := new(mockCart)
	cart.On("RecipeIDs", mock.Anything, int64(1)).Return([]int64{}, nil)

	_, err := NewAggregator(cart, stubLines{}).Build(context.Background(), 1)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuild_CartError(t *testing.T) {
	boom := errors.New("boom")
	cart := new(mockCart)
	cart.On("RecipeIDs", mock.Anything, int64(1)).Return(nil, boom)

	_, err := NewAggregator(cart, stubLines{}).Build(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestReport_Render(t *testing.T) {
	report := &Report{Items: []Item{
		{Name: "Sugar", MeasurementUnit: "g", Amount: 150},
		{Name: "Crème fraîche", MeasurementUnit: "ml", Amount: 30},
	}}

	assert.Equal(t, "Shopping list:\nSugar - 150 g\nCrème fraîche - 30 ml\n", report.Text())

	var buf bytes.Buffer
	require.NoError(t, report.PDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
