package catalog

import "foodgram/internal/pkg/apperr"

var (
	ErrTagNotFound        = apperr.NotFound("TAG_NOT_FOUND", "tag not found")
	ErrIngredientNotFound = apperr.NotFound("INGREDIENT_NOT_FOUND", "ingredient not found")
	ErrInvalidImport      = apperr.Validation("INVALID_IMPORT", "import row is invalid")
)
