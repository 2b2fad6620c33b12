package mysql

import (
	"context"

	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/repository"
	"bizconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// newsRepository implements the domain.NewsRepository interface using GORM.
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

// List retrieves all articles with their category names, newest first.
func (repo *newsRepository) List(ctx context.Context) ([]entity.NewsArticle, error) {
	var rows []model.NewsArticleModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Order("date DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news articles")
	}

	articles := make([]entity.NewsArticle, 0, len(rows))
	for i := range rows {
		articles = append(articles, *rows[i].ToEntity())
	}

	return articles, nil
}

// FindByID retrieves a single article with its category name.
func (repo *newsRepository) FindByID(ctx context.Context, id uint) (*entity.NewsArticle, error) {
	var row model.NewsArticleModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to find news article")
	}

	return row.ToEntity(), nil
}

// Count returns the total number of articles.
func (repo *newsRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.NewsArticleModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count news articles")
	}

	return count, nil
}

// Create persists a new article.
func (repo *newsRepository) Create(ctx context.Context, article *entity.NewsArticle) error {
	row := model.NewsArticleModelFromEntity(article)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("news category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create news article")
	}

	article.ID = row.ID
	article.CreatedAt = row.CreatedAt
	article.UpdatedAt = row.UpdatedAt

	return nil
}

// Update modifies an existing article.
func (repo *newsRepository) Update(ctx context.Context, article *entity.NewsArticle) error {
	row := model.NewsArticleModelFromEntity(article)

	if err := repo.db.WithContext(ctx).Save(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("news category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update news article")
	}

	article.UpdatedAt = row.UpdatedAt

	return nil
}

// Delete removes an article.
func (repo *newsRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.NewsArticleModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete news article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsNotFound
	}

	return nil
}

// newsCategoryRepository implements the domain.NewsCategoryRepository interface using GORM.
type newsCategoryRepository struct {
	db *gorm.DB
}

// NewNewsCategoryRepository is the constructor for newsCategoryRepository.
func NewNewsCategoryRepository(db *gorm.DB) repository.NewsCategoryRepository {
	return &newsCategoryRepository{db: db}
}

// FindByName retrieves a category by its exact name.
func (repo *newsCategoryRepository) FindByName(ctx context.Context, name string) (*entity.NewsCategory, error) {
	var row model.NewsCategoryModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find news category")
	}

	return row.ToEntity(), nil
}

// Create persists a new category.
func (repo *newsCategoryRepository) Create(ctx context.Context, category *entity.NewsCategory) error {
	row := &model.NewsCategoryModel{Name: category.Name}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("news category already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create news category")
	}

	category.ID = row.ID
	category.CreatedAt = row.CreatedAt

	return nil
}
