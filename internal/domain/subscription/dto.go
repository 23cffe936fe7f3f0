package subscription

import (
	"foodgram/internal/domain/auth"
	"foodgram/internal/domain/recipe"
)

// AuthorProfile is a followed author with a preview of their recipes.
type AuthorProfile struct {
	auth.Profile
	Recipes      []recipe.ShortSummary `json:"recipes"`
	RecipesCount int64                 `json:"recipes_count"`
}
