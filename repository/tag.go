package repository

import (
	"context"

	"recipehub/model"

	"gorm.io/gorm"
)

// TagRepository holds the database connection for tags.
type TagRepository struct {
	DB *gorm.DB
}

// NewTagRepository creates and returns a new TagRepository.
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{DB: db}
}

// CreateTag inserts a tag. Duplicate name, color or slug surfaces as
// gorm.ErrDuplicatedKey.
func (r *TagRepository) CreateTag(ctx context.Context, tag *model.Tag) error {
	return r.DB.WithContext(ctx).Create(tag).Error
}

// GetTagByID fetches a tag by primary key.
func (r *TagRepository) GetTagByID(ctx context.Context, id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.DB.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTagsByIDs fetches the tags for the given ids; missing ids simply produce
// a shorter result, which the caller checks.
func (r *TagRepository) GetTagsByIDs(ctx context.Context, ids []uint) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

// ListTags returns all tags newest first.
func (r *TagRepository) ListTags(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.WithContext(ctx).Order("id DESC").Find(&tags).Error
	return tags, err
}
