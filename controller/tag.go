package controller

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"recipehub/entity"
	"recipehub/mapper"
	"recipehub/model"
	"recipehub/repository"

	"gorm.io/gorm"
)

var hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6})$`)

// TagController exposes the tag dictionary. Tags are read-only through the
// API; CreateTag exists for seeding and admin tooling.
type TagController interface {
	CreateTag(ctx context.Context, tag *entity.Tag) (*entity.Tag, error)
	GetTag(ctx context.Context, id uint) (*entity.Tag, error)
	ListTags(ctx context.Context) ([]entity.Tag, error)
}

type tagController struct {
	tagRepository *repository.TagRepository
}

// NewTagController creates and returns a new TagController.
func NewTagController(tagRepository *repository.TagRepository) TagController {
	return &tagController{tagRepository: tagRepository}
}

// CreateTag validates the color pattern and inserts the tag.
func (c *tagController) CreateTag(ctx context.Context, tag *entity.Tag) (*entity.Tag, error) {
	if !hexColorPattern.MatchString(tag.Color) {
		return nil, entity.NewValidationError("color", "value is not a hex color code")
	}
	if tag.Name == "" {
		return nil, entity.NewValidationError("name", "required field")
	}
	if tag.Slug == "" {
		return nil, entity.NewValidationError("slug", "required field")
	}
	m := &model.Tag{Name: tag.Name, Color: tag.Color, Slug: tag.Slug}
	err := c.tagRepository.CreateTag(ctx, m)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("tag %w", entity.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return mapper.TagModelToEntity(m), nil
}

// GetTag fetches one tag.
func (c *tagController) GetTag(ctx context.Context, id uint) (*entity.Tag, error) {
	tag, err := c.tagRepository.GetTagByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("tag %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return mapper.TagModelToEntity(tag), nil
}

// ListTags returns all tags.
func (c *tagController) ListTags(ctx context.Context) ([]entity.Tag, error) {
	tags, err := c.tagRepository.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Tag, 0, len(tags))
	for i := range tags {
		out = append(out, *mapper.TagModelToEntity(&tags[i]))
	}
	return out, nil
}
