package subscription

import "foodgram/internal/pkg/apperr"

var (
	ErrSelfFollow       = apperr.Validation("SELF_FOLLOW", "cannot subscribe to yourself")
	ErrAuthorNotFound   = apperr.NotFound("AUTHOR_NOT_FOUND", "author not found")
	ErrAlreadyFollowing = apperr.Conflict("ALREADY_SUBSCRIBED", "already subscribed to this author")
	ErrNotFollowing     = apperr.NotFound("NOT_SUBSCRIBED", "not subscribed to this author")
	ErrInvalidLimit     = apperr.Validation("INVALID_RECIPES_LIMIT", "recipes_limit must be a non-negative integer")
)
