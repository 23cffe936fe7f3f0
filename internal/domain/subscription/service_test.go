package subscription

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain/auth"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/recipe"
)

type fixture struct {
	db    *gorm.DB
	svc   *Service
	users *auth.Service
	alice int64
	bob   int64
	carol int64
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(fmt.Sprintf("file:subscription_test_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)

	models := append([]any{&auth.User{}, &catalog.Tag{}, &catalog.Ingredient{}, &Subscription{}}, recipe.Models()...)
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)

	users := []auth.User{
		{Email: "carol@example.com", Username: "carol", FirstName: "C", LastName: "C", PasswordHash: "x"},
		{Email: "alice@example.com", Username: "alice", FirstName: "A", LastName: "A", PasswordHash: "x"},
		{Email: "bob@example.com", Username: "bob", FirstName: "B", LastName: "B", PasswordHash: "x"},
	}
	require.NoError(t, db.Create(&users).Error)

	repo := NewRepository(db)
	userSvc := auth.NewService(auth.NewRepository(db), nil, repo)

	recipeRepo := recipe.NewRepository(db)
	recipes := recipe.NewService(
		recipeRepo,
		catalog.NewRepository(db),
		userSvc,
		recipe.NewFavorites(db, recipeRepo),
		recipe.NewShoppingCart(db, recipeRepo),
	)

	return &fixture{
		db:    db,
		svc:   NewService(repo, userSvc, recipes),
		users: userSvc,
		carol: users[0].ID,
		alice: users[1].ID,
		bob:   users[2].ID,
	}
}

func (f *fixture) addRecipes(t *testing.T, authorID int64, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, f.db.Create(&recipe.Recipe{
			AuthorID: authorID, Name: name, Image: name + ".png", Text: "t", CookingTime: 5,
		}).Error)
	}
}

func (f *fixture) countSubscriptions(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&Subscription{}).Count(&n).Error)
	return n
}

func intPtr(n int) *int { return &n }

func TestFollow_Self(t *testing.T) {
	f := setupFixture(t)

	_, err := f.svc.Follow(context.Background(), f.alice, f.alice, nil)
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.Zero(t, f.countSubscriptions(t))
}

func TestFollow_Twice(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.svc.Follow(ctx, f.alice, f.bob, nil)
	require.NoError(t, err)

	_, err = f.svc.Follow(ctx, f.alice, f.bob, nil)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)
	assert.Equal(t, int64(1), f.countSubscriptions(t))
}

func TestFollow_UnknownAuthor(t *testing.T) {
	f := setupFixture(t)

	_, err := f.svc.Follow(context.Background(), f.alice, 999, nil)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
	assert.ErrorIs(t, f.svc.Unfollow(context.Background(), f.alice, 999), ErrAuthorNotFound)
}

func TestFollow_AuthorProfile(t *testing.T) {
	f := setupFixture(t)
	f.addRecipes(t, f.bob, "one", "two", "three")

	p, err := f.svc.Follow(context.Background(), f.alice, f.bob, intPtr(2))
	require.NoError(t, err)

	assert.Equal(t, "bob", p.Username)
	assert.True(t, p.IsSubscribed)
	assert.Equal(t, int64(3), p.RecipesCount)
	require.Len(t, p.Recipes, 2)
	assert.Equal(t, "three", p.Recipes[0].Name)

	profile, err := f.users.Profile(context.Background(), f.alice, f.bob)
	require.NoError(t, err)
	assert.True(t, profile.IsSubscribed)
}

func TestUnfollow(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.svc.Follow(ctx, f.alice, f.bob, nil)
	require.NoError(t, err)

	require.NoError(t, f.svc.Unfollow(ctx, f.alice, f.bob))
	assert.ErrorIs(t, f.svc.Unfollow(ctx, f.alice, f.bob), ErrNotFollowing)

	ok, err := f.svc.IsSubscribed(ctx, f.alice, f.bob)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListSubscriptions_ByUsername(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.addRecipes(t, f.carol, "c1")

	for _, author := range []int64{f.carol, f.bob} {
		_, err := f.svc.Follow(ctx, f.alice, author, nil)
		require.NoError(t, err)
	}

	page, total, err := f.svc.ListSubscriptions(ctx, f.alice, 0, 10, intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 2)
	assert.Equal(t, "bob", page[0].Username)
	assert.Equal(t, "carol", page[1].Username)
	assert.Equal(t, int64(1), page[1].RecipesCount)
	assert.Empty(t, page[1].Recipes)

	page, total, err = f.svc.ListSubscriptions(ctx, f.alice, 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 1)
	assert.Equal(t, "carol", page[0].Username)
	assert.Len(t, page[0].Recipes, 1)
}

func TestPurgeUser_BothSides(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.svc.Follow(ctx, f.alice, f.bob, nil)
	require.NoError(t, err)
	_, err = f.svc.Follow(ctx, f.bob, f.alice, nil)
	require.NoError(t, err)
	_, err = f.svc.Follow(ctx, f.bob, f.carol, nil)
	require.NoError(t, err)

	repo := NewRepository(f.db)
	require.NoError(t, f.db.Transaction(func(tx *gorm.DB) error {
		return repo.PurgeUser(tx, f.alice)
	}))
	assert.Equal(t, int64(1), f.countSubscriptions(t))
}
