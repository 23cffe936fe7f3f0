package catalog

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(fmt.Sprintf("file:catalog_test_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Tag{}, &Ingredient{}))
	return db
}

func setupTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewRepository(setupTestDB(t)))
}

func TestImportIngredients_SkipsExisting(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	added, err := svc.ImportIngredients(ctx, strings.NewReader(`[
		{"name": "sugar", "measurement_unit": "g"},
		{"name": "milk", "measurement_unit": "ml"}
	]`))
	require.NoError(t, err)
	assert.Equal(t, int64(2), added)

	added, err = svc.ImportIngredients(ctx, strings.NewReader(`[
		{"name": "sugar", "measurement_unit": "g"},
		{"name": "sugar", "measurement_unit": "tbsp"}
	]`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), added)

	all, err := svc.SearchIngredients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestImportIngredients_RejectsBlankFields(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.ImportIngredients(context.Background(), strings.NewReader(`[{"name": "salt"}]`))
	assert.ErrorIs(t, err, ErrInvalidImport)

	_, err = svc.ImportIngredients(context.Background(), strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestImportTags_RejectsBadSlug(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for _, body := range []string{
		`[{"name": "Bad", "slug": "not a slug!"}]`,
		`[{"name": "Ok", "slug": "ok"}, {"name": "Dots", "slug": "a.b"}]`,
		`[{"name": "", "slug": "empty-name"}]`,
	} {
		added, err := svc.ImportTags(ctx, strings.NewReader(body))
		assert.ErrorIs(t, err, ErrInvalidImport, body)
		assert.Zero(t, added)
	}

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)

	added, err := svc.ImportTags(ctx, strings.NewReader(`[{"name": "Main course", "slug": " main_course-2 "}]`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), added)
}

func TestSearchIngredients_Prefix(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.ImportIngredients(ctx, strings.NewReader(`[
		{"name": "Butter", "measurement_unit": "g"},
		{"name": "buttermilk", "measurement_unit": "ml"},
		{"name": "peanut butter", "measurement_unit": "g"},
		{"name": "100%_juice", "measurement_unit": "ml"}
	]`))
	require.NoError(t, err)

	got, err := svc.SearchIngredients(ctx, "BUTT")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Butter", got[0].Name)
	assert.Equal(t, "buttermilk", got[1].Name)

	// LIKE wildcards in the query are literal
	got, err = svc.SearchIngredients(ctx, "1%")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTags(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	added, err := svc.ImportTags(ctx, strings.NewReader(`[
		{"name": "Breakfast", "slug": "breakfast"},
		{"name": "Dinner", "slug": "dinner"}
	]`))
	require.NoError(t, err)
	assert.Equal(t, int64(2), added)

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	tag, err := svc.GetTag(ctx, tags[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "dinner", tag.Slug)

	_, err = svc.GetTag(ctx, 999)
	assert.ErrorIs(t, err, ErrTagNotFound)

	_, err = svc.GetIngredient(ctx, 999)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}
