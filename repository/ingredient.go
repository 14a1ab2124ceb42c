package repository

import (
	"context"
	"strings"

	"recipehub/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IngredientRepository holds the database connection for the ingredient
// catalog.
type IngredientRepository struct {
	DB *gorm.DB
}

// NewIngredientRepository creates and returns a new IngredientRepository.
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

// CreateIngredient inserts a catalog row. Names are not unique; duplicates
// are legal (catalog imports).
func (r *IngredientRepository) CreateIngredient(ctx context.Context, ing *model.Ingredient) error {
	return r.DB.WithContext(ctx).Create(ing).Error
}

// GetIngredientByID fetches a catalog row by primary key.
func (r *IngredientRepository) GetIngredientByID(ctx context.Context, id uint) (*model.Ingredient, error) {
	var ing model.Ingredient
	if err := r.DB.WithContext(ctx).First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// GetIngredientsByIDs fetches catalog rows for the given ids.
func (r *IngredientRepository) GetIngredientsByIDs(ctx context.Context, ids []uint) ([]model.Ingredient, error) {
	var ings []model.Ingredient
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&ings).Error
	return ings, err
}

// likePattern escapes the LIKE wildcards in a user query so "%" and "_"
// match themselves.
func likePattern(q string) string {
	q = strings.ReplaceAll(q, `\`, `\\`)
	q = strings.ReplaceAll(q, "%", `\%`)
	q = strings.ReplaceAll(q, "_", `\_`)
	return q
}

// SearchIngredients returns catalog rows whose name contains the query.
// Prefix matches sort before mid-string matches, then by name and id. The
// whole ordering lives in one expression; stacking plain Order calls on top
// would merge into the same ORDER BY and drop the CASE.
func (r *IngredientRepository) SearchIngredients(ctx context.Context, name string, limit, offset int) ([]model.Ingredient, error) {
	q := r.DB.WithContext(ctx).Model(&model.Ingredient{})
	if name != "" {
		pattern := likePattern(name)
		q = q.Where(`name LIKE ? ESCAPE '\'`, "%"+pattern+"%").
			Order(clause.OrderBy{Expression: gorm.Expr(
				`CASE WHEN name LIKE ? ESCAPE '\' THEN 0 ELSE 1 END, name ASC, id ASC`, pattern+"%")})
	} else {
		q = q.Order("name ASC").Order("id ASC")
	}
	var ings []model.Ingredient
	err := q.Limit(limit).Offset(offset).Find(&ings).Error
	return ings, err
}
