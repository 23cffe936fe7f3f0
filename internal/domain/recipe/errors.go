package recipe

import "foodgram/internal/pkg/apperr"

var (
	ErrEmptyComposition    = apperr.Validation("EMPTY_COMPOSITION", "recipe needs at least one ingredient and one tag")
	ErrDuplicateIngredient = apperr.Conflict("DUPLICATE_INGREDIENT", "ingredients must not repeat")
	ErrInvalidAmount       = apperr.Validation("INVALID_AMOUNT", "ingredient amount must be between 1 and 32767")
	ErrDuplicateTag        = apperr.Conflict("DUPLICATE_TAG", "tags must not repeat")
	ErrUnknownIngredient   = apperr.Validation("UNKNOWN_INGREDIENT", "ingredient does not exist")
	ErrUnknownTag          = apperr.Validation("UNKNOWN_TAG", "tag does not exist")
	ErrInvalidCookingTime  = apperr.Validation("INVALID_COOKING_TIME", "cooking time must be between 1 and 32000")
	ErrImageRequired       = apperr.Validation("IMAGE_REQUIRED", "image is required")

	ErrRecipeNotFound = apperr.NotFound("RECIPE_NOT_FOUND", "recipe not found")
	ErrForbidden      = apperr.Forbidden("NOT_RECIPE_AUTHOR", "only the author can change this recipe")

	ErrAlreadyAdded     = apperr.Conflict("ALREADY_ADDED", "recipe is already in the list")
	ErrRelationNotFound = apperr.NotFound("NOT_IN_LIST", "recipe is not in the list")
)
