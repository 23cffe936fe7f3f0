package recipe

import "time"

type Recipe struct {
	ID          int64     `gorm:"primaryKey"`
	AuthorID    int64     `gorm:"not null;index"`
	Name        string    `gorm:"size:256;not null;index"`
	Image       string    `gorm:"not null"`
	Text        string    `gorm:"type:text;not null"`
	CookingTime int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient is one line of a recipe's composition. Lines keep
// insertion order through their primary key.
type RecipeIngredient struct {
	ID           int64 `gorm:"primaryKey"`
	RecipeID     int64 `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64 `gorm:"not null;uniqueIndex:idx_recipe_ingredient;index"`
	Amount       int   `gorm:"not null"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

type RecipeTag struct {
	ID       int64 `gorm:"primaryKey"`
	RecipeID int64 `gorm:"not null;uniqueIndex:idx_recipe_tag"`
	TagID    int64 `gorm:"not null;uniqueIndex:idx_recipe_tag;index"`
}

func (RecipeTag) TableName() string { return "recipe_tags" }

type Favorite struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_favorite_pair"`
	RecipeID  int64 `gorm:"not null;uniqueIndex:idx_favorite_pair;index"`
	CreatedAt time.Time
}

func (Favorite) TableName() string { return "favorites" }

type ShoppingListEntry struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_cart_pair"`
	RecipeID  int64 `gorm:"not null;uniqueIndex:idx_cart_pair;index"`
	CreatedAt time.Time
}

func (ShoppingListEntry) TableName() string { return "shopping_cart_entries" }

// Models lists every table owned by this package, for migrations.
func Models() []any {
	return []any{&Recipe{}, &RecipeIngredient{}, &RecipeTag{}, &Favorite{}, &ShoppingListEntry{}}
}
