package recipe

const (
	MinAmount      = 1
	MaxAmount      = 32767
	MinCookingTime = 1
	MaxCookingTime = 32000
)

// IngredientAmount references a catalog ingredient and the quantity used.
type IngredientAmount struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// ValidateComposition checks a recipe's ingredient and tag sets and returns
// the ingredient pairs unchanged. The first failing check wins, in this
// order: no ingredients, repeated ingredient, amount out of range, no tags,
// repeated tag.
func ValidateComposition(ingredients []IngredientAmount, tags []int64) ([]IngredientAmount, error) {
	if len(ingredients) == 0 {
		return nil, ErrEmptyComposition
	}

	seen := make(map[int64]struct{}, len(ingredients))
	for _, in := range ingredients {
		if _, dup := seen[in.ID]; dup {
			return nil, ErrDuplicateIngredient
		}
		seen[in.ID] = struct{}{}
	}

	for _, in := range ingredients {
		if in.Amount < MinAmount || in.Amount > MaxAmount {
			return nil, ErrInvalidAmount
		}
	}

	if len(tags) == 0 {
		return nil, ErrEmptyComposition
	}

	seenTags := make(map[int64]struct{}, len(tags))
	for _, id := range tags {
		if _, dup := seenTags[id]; dup {
			return nil, ErrDuplicateTag
		}
		seenTags[id] = struct{}{}
	}

	return ingredients, nil
}
