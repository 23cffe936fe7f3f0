package recipe

import (
	"foodgram/internal/domain/auth"
	"foodgram/internal/domain/catalog"
)

type RecipeRequest struct {
	Ingredients []IngredientAmount `json:"ingredients"`
	Tags        []int64            `json:"tags"`
	Image       string             `json:"image"`
	Name        string             `json:"name" binding:"required,max=256"`
	Text        string             `json:"text" binding:"required"`
	CookingTime int                `json:"cooking_time"`
}

// ShortSummary is the compact recipe view used by favorites, the cart and
// author profiles.
type ShortSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type FullRecipe struct {
	ID               int64            `json:"id"`
	Tags             []catalog.Tag    `json:"tags"`
	Author           auth.Profile     `json:"author"`
	Ingredients      []IngredientLine `json:"ingredients"`
	IsFavorited      bool             `json:"is_favorited"`
	IsInShoppingCart bool             `json:"is_in_shopping_cart"`
	Name             string           `json:"name"`
	Image            string           `json:"image"`
	Text             string           `json:"text"`
	CookingTime      int              `json:"cooking_time"`
}

func toShortSummary(r *Recipe) ShortSummary {
	return ShortSummary{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

func toFullRecipe(r *Recipe, author auth.Profile, tags []catalog.Tag, lines []IngredientLine, favorited, inCart bool) FullRecipe {
	if tags == nil {
		tags = []catalog.Tag{}
	}
	if lines == nil {
		lines = []IngredientLine{}
	}
	return FullRecipe{
		ID:               r.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      lines,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
	}
}
