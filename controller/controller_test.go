package controller

import (
	"context"
	"testing"

	"recipehub/db"
	"recipehub/model"
	"recipehub/repository"
	"recipehub/util"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory store with the full schema. A single
// connection keeps every query on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

type fixtures struct {
	gdb *gorm.DB
	t   *testing.T
}

func newFixtures(t *testing.T, gdb *gorm.DB) *fixtures {
	return &fixtures{gdb: gdb, t: t}
}

func (f *fixtures) user(username, email string) *model.User {
	f.t.Helper()
	hash, err := util.HashPassword("sup3rsecret")
	require.NoError(f.t, err)
	u := &model.User{
		Email:     email,
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  hash,
	}
	require.NoError(f.t, f.gdb.Create(u).Error)
	return u
}

func (f *fixtures) tag(name, color, slug string) *model.Tag {
	f.t.Helper()
	tag := &model.Tag{Name: name, Color: color, Slug: slug}
	require.NoError(f.t, f.gdb.Create(tag).Error)
	return tag
}

func (f *fixtures) ingredient(name, unit string) *model.Ingredient {
	f.t.Helper()
	ing := &model.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(f.t, f.gdb.Create(ing).Error)
	return ing
}

// recipe creates a recipe with the given (ingredient, amount) line items.
func (f *fixtures) recipe(author *model.User, name string, items ...model.RecipeIngredient) *model.Recipe {
	f.t.Helper()
	r := &model.Recipe{
		Name:        name,
		Image:       "media/" + name + ".png",
		Text:        "test recipe",
		CookingTime: 10,
		AuthorID:    author.ID,
	}
	require.NoError(f.t, f.gdb.Create(r).Error)
	for i := range items {
		items[i].RecipeID = r.ID
		require.NoError(f.t, f.gdb.Create(&items[i]).Error)
	}
	return r
}

func (f *fixtures) lineItem(ing *model.Ingredient, amount int) model.RecipeIngredient {
	return model.RecipeIngredient{IngredientID: ing.ID, Amount: amount}
}

func newListController(gdb *gorm.DB) (ShoppingListController, *repository.ShoppingListRepository) {
	listRepo := repository.NewShoppingListRepository(gdb)
	recipeRepo := repository.NewRecipeRepository(gdb)
	return NewShoppingListController(listRepo, recipeRepo), listRepo
}

func testCtx() context.Context { return context.Background() }
