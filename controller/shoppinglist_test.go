package controller

import (
	"testing"

	"recipehub/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWithoutListFails(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	ctrl, _ := newListController(gdb)

	_, err := ctrl.Export(testCtx(), user.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAddRecipeReturnsSummary(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	flour := f.ingredient("Flour", "g")
	recipe := f.recipe(user, "bread", f.lineItem(flour, 100))
	ctrl, _ := newListController(gdb)

	summary, err := ctrl.AddRecipe(testCtx(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, summary.ID)
	assert.Equal(t, "bread", summary.Name)
	assert.Equal(t, recipe.Image, summary.Image)
	assert.Equal(t, 10, summary.CookingTime)
}

func TestAddMissingRecipeFails(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	ctrl, _ := newListController(gdb)

	_, err := ctrl.AddRecipe(testCtx(), user.ID, 9999)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAddDuplicateConflicts(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	flour := f.ingredient("Flour", "g")
	recipe := f.recipe(user, "bread", f.lineItem(flour, 100))
	ctrl, listRepo := newListController(gdb)

	_, err := ctrl.AddRecipe(testCtx(), user.ID, recipe.ID)
	require.NoError(t, err)
	_, err = ctrl.AddRecipe(testCtx(), user.ID, recipe.ID)
	assert.ErrorIs(t, err, entity.ErrConflict)

	list, err := listRepo.GetListByOwner(testCtx(), user.ID)
	require.NoError(t, err)
	count, err := listRepo.CountEntries(testCtx(), list.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "membership count must be unchanged after the conflict")
}

func TestRemoveWithoutAddFails(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	flour := f.ingredient("Flour", "g")
	recipe := f.recipe(user, "bread", f.lineItem(flour, 100))
	ctrl, _ := newListController(gdb)

	err := ctrl.RemoveRecipe(testCtx(), user.ID, recipe.ID)
	assert.ErrorIs(t, err, entity.ErrAbsentEdge)
}

func TestRemoveIsNotIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	flour := f.ingredient("Flour", "g")
	recipe := f.recipe(user, "bread", f.lineItem(flour, 100))
	ctrl, _ := newListController(gdb)

	_, err := ctrl.AddRecipe(testCtx(), user.ID, recipe.ID)
	require.NoError(t, err)
	require.NoError(t, ctrl.RemoveRecipe(testCtx(), user.ID, recipe.ID))
	err = ctrl.RemoveRecipe(testCtx(), user.ID, recipe.ID)
	assert.ErrorIs(t, err, entity.ErrAbsentEdge)
}

func TestRemoveMissingRecipeFails(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	ctrl, _ := newListController(gdb)

	err := ctrl.RemoveRecipe(testCtx(), user.ID, 9999)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

// Two distinct catalog rows named "Flour"/"g" must fold into a single summary
// row: the grouping key is (name, unit), not ingredient id.
func TestExportMergesCatalogDuplicates(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	flour := f.ingredient("Flour", "g")
	flourDup := f.ingredient("Flour", "g")
	require.NotEqual(t, flour.ID, flourDup.ID)

	r1 := f.recipe(user, "bread", f.lineItem(flour, 100))
	r2 := f.recipe(user, "cake", f.lineItem(flourDup, 50))
	ctrl, _ := newListController(gdb)

	_, err := ctrl.AddRecipe(testCtx(), user.ID, r1.ID)
	require.NoError(t, err)
	_, err = ctrl.AddRecipe(testCtx(), user.ID, r2.ID)
	require.NoError(t, err)

	rows, err := ctrl.Export(testCtx(), user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, entity.SummaryRow{Name: "Flour", MeasurementUnit: "g", Amount: 150}, rows[0])
}

// Same ingredient name with different units stays separate.
func TestExportKeepsUnitsApart(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	milkML := f.ingredient("Milk", "ml")
	milkCup := f.ingredient("Milk", "cup")

	r1 := f.recipe(user, "pudding", f.lineItem(milkML, 200), f.lineItem(milkCup, 1))
	ctrl, _ := newListController(gdb)

	_, err := ctrl.AddRecipe(testCtx(), user.ID, r1.ID)
	require.NoError(t, err)

	rows, err := ctrl.Export(testCtx(), user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entity.SummaryRow{Name: "Milk", MeasurementUnit: "ml", Amount: 200}, rows[0])
	assert.Equal(t, entity.SummaryRow{Name: "Milk", MeasurementUnit: "cup", Amount: 1}, rows[1])
}

// Recipes are enumerated in the order they were added to the list, so the
// merged rows come out in first-seen order across recipes.
func TestExportEndToEnd(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	flour := f.ingredient("Flour", "g")
	sugar := f.ingredient("Sugar", "g")
	egg := f.ingredient("Egg", "pcs")

	r1 := f.recipe(user, "bread", f.lineItem(flour, 200), f.lineItem(sugar, 50))
	r2 := f.recipe(user, "omelette", f.lineItem(flour, 100), f.lineItem(egg, 2))
	ctrl, _ := newListController(gdb)

	_, err := ctrl.AddRecipe(testCtx(), user.ID, r1.ID)
	require.NoError(t, err)
	_, err = ctrl.AddRecipe(testCtx(), user.ID, r2.ID)
	require.NoError(t, err)

	rows, err := ctrl.Export(testCtx(), user.ID)
	require.NoError(t, err)
	require.Equal(t, []entity.SummaryRow{
		{Name: "Flour", MeasurementUnit: "g", Amount: 300},
		{Name: "Sugar", MeasurementUnit: "g", Amount: 50},
		{Name: "Egg", MeasurementUnit: "pcs", Amount: 2},
	}, rows)
}

// An empty list that exists (recipe added then removed) exports an empty row
// set, unlike a list that never existed.
func TestExportEmptiedListYieldsNoRows(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	flour := f.ingredient("Flour", "g")
	recipe := f.recipe(user, "bread", f.lineItem(flour, 100))
	ctrl, _ := newListController(gdb)

	_, err := ctrl.AddRecipe(testCtx(), user.ID, recipe.ID)
	require.NoError(t, err)
	require.NoError(t, ctrl.RemoveRecipe(testCtx(), user.ID, recipe.ID))

	rows, err := ctrl.Export(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
