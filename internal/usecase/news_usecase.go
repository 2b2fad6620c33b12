// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"bizconnect/internal/domain/entity"
)

// --- Input DTOs ---

// ListNewsInput carries optional server-side filters for the news listing.
type ListNewsInput struct {
	Category string
	Query    string
}

// CreateNewsInput defines the data required to publish a news article.
// Category is free text; the matching category row is resolved or created.
type CreateNewsInput struct {
	Title    string
	Summary  string
	Content  string
	Author   string
	Date     time.Time
	Category string
	Image    string
}

// UpdateNewsInput defines the mutable fields of a news article.
// Nil pointers leave the stored value untouched.
type UpdateNewsInput struct {
	Title    *string
	Summary  *string
	Content  *string
	Author   *string
	Date     *time.Time
	Category *string
	Image    *string
}

// NewsUsecase defines the interface for news-related business operations.
type NewsUsecase interface {
	ListNews(ctx context.Context, input *ListNewsInput) ([]entity.NewsArticle, error)
	GetNews(ctx context.Context, id uint) (*entity.NewsArticle, error)
	CreateNews(ctx context.Context, input *CreateNewsInput) (*entity.NewsArticle, error)
	UpdateNews(ctx context.Context, id uint, input *UpdateNewsInput) (*entity.NewsArticle, error)
	DeleteNews(ctx context.Context, id uint) error
}
