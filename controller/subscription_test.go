package controller

import (
	"testing"

	"recipehub/entity"
	"recipehub/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubscriptionController(gdb *gorm.DB) SubscriptionController {
	return NewSubscriptionController(
		repository.NewSubscriptionRepository(gdb),
		repository.NewUserRepository(gdb),
		repository.NewRecipeRepository(gdb),
	)
}

func TestSubscribeToSelfFails(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	user := f.user("alice", "alice@example.com")
	ctrl := newSubscriptionController(gdb)

	_, err := ctrl.Subscribe(testCtx(), user.ID, user.ID)
	assert.ErrorIs(t, err, entity.ErrSelfReference)
}

func TestSubscribeDuplicateConflicts(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	alice := f.user("alice", "alice@example.com")
	bob := f.user("bob", "bob@example.com")
	ctrl := newSubscriptionController(gdb)

	_, err := ctrl.Subscribe(testCtx(), alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = ctrl.Subscribe(testCtx(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, entity.ErrConflict)
}

// Following is one-directional: the reverse edge is a distinct pair.
func TestSubscribeReverseDirectionSucceeds(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	alice := f.user("alice", "alice@example.com")
	bob := f.user("bob", "bob@example.com")
	ctrl := newSubscriptionController(gdb)

	_, err := ctrl.Subscribe(testCtx(), alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = ctrl.Subscribe(testCtx(), bob.ID, alice.ID)
	require.NoError(t, err)

	forward, err := ctrl.IsSubscribed(testCtx(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, forward)
}

func TestIsSubscribedIsAsymmetric(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	alice := f.user("alice", "alice@example.com")
	bob := f.user("bob", "bob@example.com")
	ctrl := newSubscriptionController(gdb)

	_, err := ctrl.Subscribe(testCtx(), alice.ID, bob.ID)
	require.NoError(t, err)

	forward, err := ctrl.IsSubscribed(testCtx(), alice.ID, bob.ID)
	require.NoError(t, err)
	backward, err := ctrl.IsSubscribed(testCtx(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, forward)
	assert.False(t, backward)
}

func TestUnsubscribeAbsentEdgeFails(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	alice := f.user("alice", "alice@example.com")
	bob := f.user("bob", "bob@example.com")
	ctrl := newSubscriptionController(gdb)

	err := ctrl.Unsubscribe(testCtx(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, entity.ErrAbsentEdge)
}

func TestSubscribeMissingUserFails(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	alice := f.user("alice", "alice@example.com")
	ctrl := newSubscriptionController(gdb)

	_, err := ctrl.Subscribe(testCtx(), alice.ID, 9999)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListSubscriptionsCarriesRecipes(t *testing.T) {
	gdb := newTestDB(t)
	f := newFixtures(t, gdb)
	alice := f.user("alice", "alice@example.com")
	bob := f.user("bob", "bob@example.com")
	flour := f.ingredient("Flour", "g")
	f.recipe(bob, "bread", f.lineItem(flour, 100))
	f.recipe(bob, "cake", f.lineItem(flour, 200))
	ctrl := newSubscriptionController(gdb)

	_, err := ctrl.Subscribe(testCtx(), alice.ID, bob.ID)
	require.NoError(t, err)

	entries, err := ctrl.ListSubscriptions(testCtx(), alice.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, bob.ID, entries[0].ID)
	assert.True(t, entries[0].IsSubscribed)
	assert.Equal(t, 2, entries[0].RecipesCount)
	assert.Len(t, entries[0].Recipes, 2)
}
