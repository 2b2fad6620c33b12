// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bizconnect/internal/delivery/context"
	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/repository"
	"bizconnect/internal/usecase"
	"bizconnect/internal/util"

	"github.com/pkg/errors"
)

// newsService implements the NewsUsecase interface.
type newsService struct {
	newsRepo     repository.NewsRepository
	categoryRepo repository.NewsCategoryRepository
	logger       *slog.Logger
}

// NewNewsService is the constructor for newsService.
func NewNewsService(
	newsRepo repository.NewsRepository,
	categoryRepo repository.NewsCategoryRepository,
	logger *slog.Logger,
) usecase.NewsUsecase {
	return &newsService{
		newsRepo:     newsRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (srv *newsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNews returns all articles, newest first, optionally narrowed by
// category tab and free-text query. Query matches are wrapped in <mark> on
// the returned copies, the way the search rendering expects them.
func (srv *newsService) ListNews(ctx context.Context, input *usecase.ListNewsInput) ([]entity.NewsArticle, error) {
	articles, err := srv.newsRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news articles")
	}

	if input == nil || (input.Category == "" && input.Query == "") {
		return articles, nil
	}

	filtered := make([]entity.NewsArticle, 0, len(articles))
	for _, article := range articles {
		if input.Category != "" && !util.CategoryMatches(article.CategoryName, input.Category) {
			continue
		}
		if input.Query != "" && !newsMatchesQuery(&article, input.Query) {
			continue
		}
		if input.Query != "" {
			article.Title = util.HighlightMatches(article.Title, input.Query)
			article.Summary = util.HighlightMatches(article.Summary, input.Query)
		}
		filtered = append(filtered, article)
	}

	return filtered, nil
}

func newsMatchesQuery(article *entity.NewsArticle, query string) bool {
	return util.ContainsFold(article.Title, query) ||
		util.ContainsFold(article.Summary, query) ||
		util.ContainsFold(article.Content, query) ||
		util.ContainsFold(article.Author, query)
}

// GetNews retrieves a single article.
func (srv *newsService) GetNews(ctx context.Context, id uint) (*entity.NewsArticle, error) {
	article, err := srv.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNewsNotFound, "news article not found")
		}

		return nil, errors.Wrap(err, "failed to find news article")
	}

	return article, nil
}

// CreateNews resolves the free-text category, creating the row when absent,
// then inserts the article. The two writes run sequentially, not in one
// transaction: a category left behind by a failed insert is harmless and
// gets reused on retry.
func (srv *newsService) CreateNews(ctx context.Context, input *usecase.CreateNewsInput) (*entity.NewsArticle, error) {
	srv.log(ctx).Info("Creating news article", slog.String("title", input.Title))

	category, err := srv.resolveCategory(ctx, input.Category)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	article := &entity.NewsArticle{
		Title:        input.Title,
		Summary:      input.Summary,
		Content:      input.Content,
		Author:       input.Author,
		Date:         date,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Image:        input.Image,
	}

	if err := srv.newsRepo.Create(ctx, article); err != nil {
		srv.log(ctx).Error("Failed to create news article", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create news article")
	}

	return article, nil
}

// UpdateNews applies the non-nil fields to an existing article.
func (srv *newsService) UpdateNews(ctx context.Context, id uint, input *usecase.UpdateNewsInput) (*entity.NewsArticle, error) {
	srv.log(ctx).Info("Updating news article", slog.Any("newsID", id))

	article, err := srv.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNewsNotFound, "news article not found")
		}

		return nil, errors.Wrap(err, "failed to find news article")
	}

	if input.Category != nil {
		category, err := srv.resolveCategory(ctx, *input.Category)
		if err != nil {
			return nil, err
		}
		article.CategoryID = category.ID
		article.CategoryName = category.Name
	}
	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Summary != nil {
		article.Summary = *input.Summary
	}
	if input.Content != nil {
		article.Content = *input.Content
	}
	if input.Author != nil {
		article.Author = *input.Author
	}
	if input.Date != nil {
		article.Date = *input.Date
	}
	if input.Image != nil {
		article.Image = *input.Image
	}

	if err := srv.newsRepo.Update(ctx, article); err != nil {
		srv.log(ctx).Error("Failed to update news article", slog.Any("newsID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update news article")
	}

	return article, nil
}

// DeleteNews removes an article.
func (srv *newsService) DeleteNews(ctx context.Context, id uint) error {
	srv.log(ctx).Info("Deleting news article", slog.Any("newsID", id))

	if err := srv.newsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return errors.Wrap(domainerrors.ErrNewsNotFound, "news article not found")
		}

		return errors.Wrap(err, "failed to delete news article")
	}

	return nil
}

func (srv *newsService) resolveCategory(ctx context.Context, name string) (*entity.NewsCategory, error) {
	if name == "" {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("Kategori wajib diisi"),
			"empty category",
		)
	}

	category, err := srv.categoryRepo.FindByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, errors.Wrap(err, "failed to look up news category")
	}

	srv.log(ctx).Debug("Creating news category", slog.String("name", name))

	category = &entity.NewsCategory{Name: name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create news category")
	}

	return category, nil
}
