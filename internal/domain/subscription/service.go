package subscription

import (
	"context"
	"errors"

	"foodgram/internal/domain/auth"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/logging"
	"foodgram/internal/metrics"
)

type UserReader interface {
	GetUser(ctx context.Context, id int64) (*auth.User, error)
}

type RecipeReader interface {
	AuthorRecipes(ctx context.Context, authorID int64, limit int) ([]recipe.ShortSummary, int64, error)
}

type Service struct {
	repo    Repository
	users   UserReader
	recipes RecipeReader
}

func NewService(repo Repository, users UserReader, recipes RecipeReader) *Service {
	return &Service{repo: repo, users: users, recipes: recipes}
}

// Follow subscribes userID to authorID. recipesLimit caps the recipe
// preview in the returned profile; nil means no cap.
func (s *Service) Follow(ctx context.Context, userID, authorID int64, recipesLimit *int) (*AuthorProfile, error) {
	if userID == authorID {
		return nil, ErrSelfFollow
	}
	author, err := s.author(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, userID, authorID); err != nil {
		return nil, err
	}

	metrics.RecordSubscriptionChange("follow")
	logging.Ctx(ctx).Info().Int64("user_id", userID).Int64("author_id", authorID).Msg("subscribed")
	return s.authorProfile(ctx, author, recipesLimit)
}

func (s *Service) Unfollow(ctx context.Context, userID, authorID int64) error {
	if _, err := s.author(ctx, authorID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, authorID); err != nil {
		return err
	}

	metrics.RecordSubscriptionChange("unfollow")
	return nil
}

func (s *Service) IsSubscribed(ctx context.Context, userID, authorID int64) (bool, error) {
	return s.repo.IsSubscribed(ctx, userID, authorID)
}

// ListSubscriptions returns one page of the authors userID follows.
func (s *Service) ListSubscriptions(ctx context.Context, userID int64, offset, limit int, recipesLimit *int) ([]AuthorProfile, int64, error) {
	authors, total, err := s.repo.ListAuthors(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]AuthorProfile, 0, len(authors))
	for i := range authors {
		p, err := s.authorProfile(ctx, &authors[i], recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *p)
	}
	return out, total, nil
}

func (s *Service) author(ctx context.Context, id int64) (*auth.User, error) {
	u, err := s.users.GetUser(ctx, id)
	if errors.Is(err, auth.ErrUserNotFound) {
		return nil, ErrAuthorNotFound
	}
	return u, err
}

// authorProfile is always built for a follower, so IsSubscribed is true.
func (s *Service) authorProfile(ctx context.Context, author *auth.User, recipesLimit *int) (*AuthorProfile, error) {
	limit := 0
	if recipesLimit != nil {
		limit = *recipesLimit
	}
	recipes, count, err := s.recipes.AuthorRecipes(ctx, author.ID, limit)
	if err != nil {
		return nil, err
	}
	if recipesLimit != nil && *recipesLimit == 0 {
		recipes = []recipe.ShortSummary{}
	}
	return &AuthorProfile{
		Profile:      auth.ToFullProfile(author, true),
		Recipes:      recipes,
		RecipesCount: count,
	}, nil
}
