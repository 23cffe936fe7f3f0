package recipe

import (
	"context"
	"strings"

	"foodgram/internal/domain/auth"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/logging"
	"foodgram/internal/metrics"
)

type Catalog interface {
	IngredientsByIDs(ctx context.Context, ids []int64) ([]catalog.Ingredient, error)
	TagsByIDs(ctx context.Context, ids []int64) ([]catalog.Tag, error)
	TagsBySlugs(ctx context.Context, slugs []string) ([]catalog.Tag, error)
}

type Profiles interface {
	ProfilesByIDs(ctx context.Context, viewerID int64, ids []int64) (map[int64]auth.Profile, error)
}

// ListQuery is a recipe listing request. Favorited and InCart only apply
// when ViewerID is set.
type ListQuery struct {
	ViewerID  int64
	AuthorID  int64
	TagSlugs  []string
	Favorited bool
	InCart    bool
	Offset    int
	Limit     int
}

type Service struct {
	repo      Repository
	catalog   Catalog
	profiles  Profiles
	favorites *RelationToggle[Favorite]
	cart      *RelationToggle[ShoppingListEntry]
}

func NewService(
	repo Repository,
	catalog Catalog,
	profiles Profiles,
	favorites *RelationToggle[Favorite],
	cart *RelationToggle[ShoppingListEntry],
) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		profiles:  profiles,
		favorites: favorites,
		cart:      cart,
	}
}

func (s *Service) Favorites() *RelationToggle[Favorite]     { return s.favorites }
func (s *Service) Cart() *RelationToggle[ShoppingListEntry] { return s.cart }

func (s *Service) Create(ctx context.Context, authorID int64, req RecipeRequest) (*FullRecipe, error) {
	lines, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Image) == "" {
		return nil, ErrImageRequired
	}

	rec := &Recipe{
		AuthorID:    authorID,
		Name:        strings.TrimSpace(req.Name),
		Image:       strings.TrimSpace(req.Image),
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	if err := s.repo.Create(ctx, rec, lines, req.Tags); err != nil {
		return nil, err
	}

	metrics.RecordRecipeWrite("create")
	logging.Ctx(ctx).Info().Int64("recipe_id", rec.ID).Int64("author_id", authorID).Msg("recipe created")
	return s.Get(ctx, authorID, rec.ID)
}

// Update replaces the recipe's fields and its ingredient and tag sets.
// An empty image keeps the current one.
func (s *Service) Update(ctx context.Context, userID, recipeID int64, req RecipeRequest) (*FullRecipe, error) {
	rec, err := s.repo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if rec.AuthorID != userID {
		return nil, ErrForbidden
	}

	lines, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	rec.Name = strings.TrimSpace(req.Name)
	rec.Text = req.Text
	rec.CookingTime = req.CookingTime
	if img := strings.TrimSpace(req.Image); img != "" {
		rec.Image = img
	}
	if err := s.repo.Update(ctx, rec, lines, req.Tags); err != nil {
		return nil, err
	}

	metrics.RecordRecipeWrite("update")
	return s.Get(ctx, userID, rec.ID)
}

func (s *Service) Delete(ctx context.Context, userID, recipeID int64) error {
	rec, err := s.repo.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if rec.AuthorID != userID {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, recipeID); err != nil {
		return err
	}

	metrics.RecordRecipeWrite("delete")
	logging.Ctx(ctx).Info().Int64("recipe_id", recipeID).Msg("recipe deleted")
	return nil
}

// validate runs the composition checks, then the cooking time range, then
// confirms every referenced ingredient and tag exists. Nothing is written
// before it passes.
func (s *Service) validate(ctx context.Context, req RecipeRequest) ([]RecipeIngredient, error) {
	pairs, err := ValidateComposition(req.Ingredients, req.Tags)
	if err != nil {
		return nil, err
	}
	if req.CookingTime < MinCookingTime || req.CookingTime > MaxCookingTime {
		return nil, ErrInvalidCookingTime
	}

	ids := make([]int64, 0, len(pairs))
	for _, p := range pairs {
		ids = append(ids, p.ID)
	}
	found, err := s.catalog.IngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, ErrUnknownIngredient
	}

	tags, err := s.catalog.TagsByIDs(ctx, req.Tags)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(req.Tags) {
		return nil, ErrUnknownTag
	}

	lines := make([]RecipeIngredient, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, RecipeIngredient{IngredientID: p.ID, Amount: p.Amount})
	}
	return lines, nil
}

func (s *Service) Get(ctx context.Context, viewerID, recipeID int64) (*FullRecipe, error) {
	rec, err := s.repo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	full, err := s.hydrate(ctx, viewerID, []Recipe{*rec})
	if err != nil {
		return nil, err
	}
	return &full[0], nil
}

// List returns one page of recipes. An unknown tag slug is ErrUnknownTag.
func (s *Service) List(ctx context.Context, q ListQuery) ([]FullRecipe, int64, error) {
	if err := s.checkSlugs(ctx, q.TagSlugs); err != nil {
		return nil, 0, err
	}

	f := Filter{
		AuthorID: q.AuthorID,
		TagSlugs: q.TagSlugs,
		Offset:   q.Offset,
		Limit:    q.Limit,
	}
	if q.ViewerID != 0 {
		if q.Favorited {
			f.FavoritedBy = q.ViewerID
		}
		if q.InCart {
			f.InCartOf = q.ViewerID
		}
	}

	recipes, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	full, err := s.hydrate(ctx, q.ViewerID, recipes)
	if err != nil {
		return nil, 0, err
	}
	return full, total, nil
}

func (s *Service) checkSlugs(ctx context.Context, slugs []string) error {
	if len(slugs) == 0 {
		return nil
	}
	unique := make(map[string]struct{}, len(slugs))
	for _, slug := range slugs {
		unique[slug] = struct{}{}
	}

	tags, err := s.catalog.TagsBySlugs(ctx, slugs)
	if err != nil {
		return err
	}
	if len(tags) != len(unique) {
		return ErrUnknownTag
	}
	return nil
}

// AuthorRecipes returns the author's most recent recipes as short
// summaries (all of them when limit <= 0) and the author's total count.
func (s *Service) AuthorRecipes(ctx context.Context, authorID int64, limit int) ([]ShortSummary, int64, error) {
	recipes, err := s.repo.ListByAuthor(ctx, authorID, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.repo.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, 0, err
	}

	out := make([]ShortSummary, 0, len(recipes))
	for i := range recipes {
		out = append(out, toShortSummary(&recipes[i]))
	}
	return out, count, nil
}

func (s *Service) hydrate(ctx context.Context, viewerID int64, recipes []Recipe) ([]FullRecipe, error) {
	out := make([]FullRecipe, 0, len(recipes))
	if len(recipes) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(recipes))
	authorIDs := make([]int64, 0, len(recipes))
	seenAuthor := make(map[int64]bool)
	for _, r := range recipes {
		ids = append(ids, r.ID)
		if !seenAuthor[r.AuthorID] {
			seenAuthor[r.AuthorID] = true
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	lines, err := s.repo.Lines(ctx, ids)
	if err != nil {
		return nil, err
	}
	tags, err := s.repo.Tags(ctx, ids)
	if err != nil {
		return nil, err
	}
	authors, err := s.profiles.ProfilesByIDs(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}
	favorited, err := s.favorites.Marked(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	inCart, err := s.cart.Marked(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		r := &recipes[i]
		out = append(out, toFullRecipe(r, authors[r.AuthorID], tags[r.ID], lines[r.ID], favorited[r.ID], inCart[r.ID]))
	}
	return out, nil
}
