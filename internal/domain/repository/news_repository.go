package repository

import (
	"context"
	"errors"

	"bizconnect/internal/domain/entity"
)

// ErrNewsNotFound is returned when an article does not exist.
var ErrNewsNotFound = errors.New("news article not found")

// ErrCategoryNotFound is returned when a news category does not exist.
var ErrCategoryNotFound = errors.New("news category not found")

// NewsRepository defines persistence operations for news articles.
type NewsRepository interface {
	// List retrieves all articles with their category names, newest first.
	List(ctx context.Context) ([]entity.NewsArticle, error)

	// FindByID retrieves a single article with its category name.
	FindByID(ctx context.Context, id uint) (*entity.NewsArticle, error)

	// Count returns the total number of articles.
	Count(ctx context.Context) (int64, error)

	// Create persists a new article.
	Create(ctx context.Context, article *entity.NewsArticle) error

	// Update modifies an existing article.
	Update(ctx context.Context, article *entity.NewsArticle) error

	// Delete removes an article.
	Delete(ctx context.Context, id uint) error
}

// NewsCategoryRepository defines persistence operations for news categories.
type NewsCategoryRepository interface {
	// FindByName retrieves a category by its exact name.
	FindByName(ctx context.Context, name string) (*entity.NewsCategory, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.NewsCategory) error
}
