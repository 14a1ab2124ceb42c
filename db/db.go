package db

import (
	"fmt"

	"recipehub/entity"
	"recipehub/logger"
	"recipehub/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the PostgreSQL connection. TranslateError is on so that
// unique-constraint violations surface as gorm.ErrDuplicatedKey, which the
// controller layer re-maps to the domain Conflict error.
func InitDB(c *entity.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresConfig.Host, c.PostgresConfig.User, c.PostgresConfig.Password,
		c.PostgresConfig.DBName, c.PostgresConfig.Port, c.PostgresConfig.SSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established")
	return nil
}

// Migrate creates or updates the schema, including the unique indexes backing
// the membership-edge uniqueness rules and the ON DELETE CASCADE foreign keys.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.RecipeTag{},
		&model.RecipeIngredient{},
		&model.Favorite{},
		&model.ShoppingList{},
		&model.RecipeShoppingList{},
		&model.Subscription{},
	)
}

func Close() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Warn("failed to retrieve sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("error closing the database connection", zap.Error(err))
	}
}

func GetDBInstance() *gorm.DB {
	return DB
}
