package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recipehub/db"
	"recipehub/entity"
	"recipehub/model"
	"recipehub/route"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testImageData = "data:image/png;base64,ZmFrZXBuZw=="

type apiTest struct {
	t      *testing.T
	engine *gin.Engine
	gdb    *gorm.DB
	token  string
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gdb))

	cfg := &entity.Config{
		JWTSecretKey: "testsecret",
		MediaDir:     t.TempDir(),
		FontDir:      "../assets/font",
	}
	engine := gin.New()
	route.SetupRoutes(engine, cfg, gdb)
	return &apiTest{t: t, engine: engine, gdb: gdb}
}

func (a *apiTest) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

// register creates an account and logs in, keeping the token for later calls.
func (a *apiTest) register(username, email string) {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/users", gin.H{
		"email":      email,
		"username":   username,
		"first_name": "Test",
		"last_name":  "User",
		"password":   "sup3rsecret",
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(http.MethodPost, "/auth/token/login", gin.H{
		"email":    email,
		"password": "sup3rsecret",
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	var body struct {
		AuthToken string `json:"auth_token"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(a.t, body.AuthToken)
	a.token = body.AuthToken
}

// seedCatalog inserts a tag and ingredients directly; the catalog is
// admin-managed, not part of the public API flow under test.
func (a *apiTest) seedCatalog() (tagID uint, ingredientIDs []uint) {
	a.t.Helper()
	tag := &model.Tag{Name: "dinner", Color: "#FF0000", Slug: "dinner"}
	require.NoError(a.t, a.gdb.Create(tag).Error)
	for _, spec := range []struct{ name, unit string }{
		{"Flour", "g"}, {"Sugar", "g"},
	} {
		ing := &model.Ingredient{Name: spec.name, MeasurementUnit: spec.unit}
		require.NoError(a.t, a.gdb.Create(ing).Error)
		ingredientIDs = append(ingredientIDs, ing.ID)
	}
	return tag.ID, ingredientIDs
}

func (a *apiTest) createRecipe(name string, tagID uint, items []gin.H) uint {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/recipes", gin.H{
		"name":         name,
		"image":        testImageData,
		"text":         "mix and bake",
		"cooking_time": 30,
		"tags":         []uint{tagID},
		"ingredients":  items,
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	var body struct {
		ID uint `json:"id"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.ID
}

func TestShoppingCartFlow(t *testing.T) {
	a := newAPITest(t)
	a.register("alice", "alice@example.com")
	tagID, ingredients := a.seedCatalog()
	recipeID := a.createRecipe("bread", tagID, []gin.H{
		{"id": ingredients[0], "amount": 100},
		{"id": ingredients[1], "amount": 50},
	})

	cartPath := fmt.Sprintf("/recipes/%d/shopping_cart", recipeID)

	rec := a.do(http.MethodPost, cartPath, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var summary struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, recipeID, summary.ID)
	assert.Equal(t, "bread", summary.Name)

	// Adding the same recipe again is a conflict, reported as 400.
	rec = a.do(http.MethodPost, cartPath, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")

	rec = a.do(http.MethodGet, "/recipes/download_shopping_cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="shopping_list.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = a.do(http.MethodDelete, cartPath, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Removal is not idempotent.
	rec = a.do(http.MethodDelete, cartPath, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadWithoutListFails(t *testing.T) {
	a := newAPITest(t)
	a.register("alice", "alice@example.com")

	rec := a.do(http.MethodGet, "/recipes/download_shopping_cart", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartRequiresAuthentication(t *testing.T) {
	a := newAPITest(t)

	rec := a.do(http.MethodPost, "/recipes/1/shopping_cart", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodGet, "/recipes/download_shopping_cart", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFavoriteEndpoints(t *testing.T) {
	a := newAPITest(t)
	a.register("alice", "alice@example.com")
	tagID, ingredients := a.seedCatalog()
	recipeID := a.createRecipe("bread", tagID, []gin.H{{"id": ingredients[0], "amount": 100}})

	favoritePath := fmt.Sprintf("/recipes/%d/favorite", recipeID)

	rec := a.do(http.MethodPost, favoritePath, nil)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(http.MethodPost, favoritePath, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, fmt.Sprintf("/recipes/%d", recipeID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail struct {
		IsFavorited bool `json:"is_favorited"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.True(t, detail.IsFavorited)

	rec = a.do(http.MethodDelete, favoritePath, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodDelete, favoritePath, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscribeEndpoints(t *testing.T) {
	a := newAPITest(t)
	a.register("bob", "bob@example.com")
	bobToken := a.token
	a.register("alice", "alice@example.com")

	var bob model.User
	require.NoError(t, a.gdb.Where("username = ?", "bob").First(&bob).Error)
	var alice model.User
	require.NoError(t, a.gdb.Where("username = ?", "alice").First(&alice).Error)

	subscribePath := fmt.Sprintf("/users/%d/subscribe", bob.ID)

	rec := a.do(http.MethodPost, subscribePath, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var entry struct {
		ID           uint `json:"id"`
		IsSubscribed bool `json:"is_subscribed"`
		RecipesCount int  `json:"recipes_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, bob.ID, entry.ID)
	assert.True(t, entry.IsSubscribed)

	// Self-subscription is rejected.
	rec = a.do(http.MethodPost, fmt.Sprintf("/users/%d/subscribe", alice.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/users/subscriptions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)

	// The edge is directed; bob does not follow alice.
	a.token = bobToken
	rec = a.do(http.MethodGet, "/users/subscriptions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Empty(t, entries)
}

func TestAnonymousRecipeRead(t *testing.T) {
	a := newAPITest(t)
	a.register("alice", "alice@example.com")
	tagID, ingredients := a.seedCatalog()
	recipeID := a.createRecipe("bread", tagID, []gin.H{{"id": ingredients[0], "amount": 100}})

	a.token = ""
	rec := a.do(http.MethodGet, fmt.Sprintf("/recipes/%d", recipeID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail struct {
		Name             string `json:"name"`
		IsFavorited      bool   `json:"is_favorited"`
		IsInShoppingCart bool   `json:"is_in_shopping_cart"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "bread", detail.Name)
	assert.False(t, detail.IsFavorited)
	assert.False(t, detail.IsInShoppingCart)
}

func TestUpdateByNonAuthorIsForbidden(t *testing.T) {
	a := newAPITest(t)
	a.register("alice", "alice@example.com")
	tagID, ingredients := a.seedCatalog()
	recipeID := a.createRecipe("bread", tagID, []gin.H{{"id": ingredients[0], "amount": 100}})

	a.register("bob", "bob@example.com")
	rec := a.do(http.MethodDelete, fmt.Sprintf("/recipes/%d", recipeID), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
