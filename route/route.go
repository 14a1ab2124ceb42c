package route

import (
	"recipehub/controller"
	"recipehub/entity"
	"recipehub/export"
	"recipehub/handler"
	"recipehub/middleware"
	"recipehub/repository"
	"recipehub/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, controllers and handlers onto the engine.
// The database handle is passed in so tests can run the full stack against a
// throwaway store.
func SetupRoutes(r *gin.Engine, cfg *entity.Config, gormDB *gorm.DB) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	userRepository := repository.NewUserRepository(gormDB)
	tagRepository := repository.NewTagRepository(gormDB)
	ingredientRepository := repository.NewIngredientRepository(gormDB)
	recipeRepository := repository.NewRecipeRepository(gormDB)
	favoriteRepository := repository.NewFavoriteRepository(gormDB)
	listRepository := repository.NewShoppingListRepository(gormDB)
	subscriptionRepository := repository.NewSubscriptionRepository(gormDB)

	userController := controller.NewUserController(userRepository, subscriptionRepository)
	tagController := controller.NewTagController(tagRepository)
	ingredientController := controller.NewIngredientController(ingredientRepository)
	recipeController := controller.NewRecipeController(
		recipeRepository, tagRepository, ingredientRepository,
		userRepository, favoriteRepository, listRepository,
		subscriptionRepository, cfg.MediaDir,
	)
	favoriteController := controller.NewFavoriteController(favoriteRepository, recipeRepository)
	listController := controller.NewShoppingListController(listRepository, recipeRepository)
	subscriptionController := controller.NewSubscriptionController(subscriptionRepository, userRepository, recipeRepository)

	authService := service.NewAuthService(userController, cfg)
	renderer := export.NewPDFRenderer(cfg.FontDir)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userController, subscriptionController)
	tagHandler := handler.NewTagHandler(tagController)
	ingredientHandler := handler.NewIngredientHandler(ingredientController)
	recipeHandler := handler.NewRecipeHandler(recipeController, favoriteController, listController, renderer)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionController)

	secret := []byte(cfg.JWTSecretKey)

	public := r.Group("/")
	public.POST("/auth/token/login", authHandler.Login)
	public.POST("/users", userHandler.Create)

	// Read endpoints open to anonymous clients; viewer-relative flags are
	// filled in when a valid token is present.
	readable := r.Group("/")
	readable.Use(middleware.OptionalJWT(secret))
	readable.GET("/recipes", recipeHandler.ListRecipes)
	readable.GET("/recipes/:id", recipeHandler.GetRecipe)

	protected := r.Group("/")
	protected.Use(middleware.AuthenticateJWT(secret))
	protected.POST("/auth/token/logout", authHandler.Logout)

	protected.GET("/users", userHandler.ListUsers)
	protected.GET("/users/me", userHandler.Me)
	protected.GET("/users/subscriptions", userHandler.Subscriptions)
	protected.POST("/users/set_password", userHandler.SetPassword)
	protected.GET("/users/:id", userHandler.GetUser)
	protected.POST("/users/:id/subscribe", subscriptionHandler.Subscribe)
	protected.DELETE("/users/:id/subscribe", subscriptionHandler.Unsubscribe)

	protected.GET("/tags", tagHandler.ListTags)
	protected.GET("/tags/:id", tagHandler.GetTag)

	protected.GET("/ingredients", ingredientHandler.ListIngredients)
	protected.GET("/ingredients/:id", ingredientHandler.GetIngredient)

	protected.POST("/recipes", recipeHandler.Create)
	protected.PUT("/recipes/:id", recipeHandler.UpdateRecipe)
	protected.DELETE("/recipes/:id", recipeHandler.DeleteRecipe)
	protected.POST("/recipes/:id/favorite", recipeHandler.Favorite)
	protected.DELETE("/recipes/:id/favorite", recipeHandler.Unfavorite)
	protected.POST("/recipes/:id/shopping_cart", recipeHandler.AddToCart)
	protected.DELETE("/recipes/:id/shopping_cart", recipeHandler.RemoveFromCart)
	protected.GET("/recipes/download_shopping_cart", recipeHandler.DownloadShoppingCart)
}
