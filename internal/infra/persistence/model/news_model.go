package model

import (
	"time"

	"bizconnect/internal/domain/entity"
)

// NewsCategoryModel mirrors the 'news_categories' table.
type NewsCategoryModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsCategoryModel) TableName() string {
	return "news_categories"
}

// ToEntity converts the row into the domain entity.
func (m *NewsCategoryModel) ToEntity() *entity.NewsCategory {
	return &entity.NewsCategory{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// NewsArticleModel mirrors the 'news_articles' table.
type NewsArticleModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Title      string `gorm:"type:varchar(255);not null"`
	Summary    string `gorm:"type:text"`
	Content    string `gorm:"type:longtext;not null"`
	Author     string `gorm:"type:varchar(100)"`
	Date       time.Time
	CategoryID uint   `gorm:"index;not null"`
	Image      string `gorm:"type:varchar(500)"`
	Views      int    `gorm:"not null;default:0"`
	Likes      int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *NewsCategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (NewsArticleModel) TableName() string {
	return "news_articles"
}

// ToEntity converts the row into the domain entity. The category name is
// filled from the preloaded association when present.
func (m *NewsArticleModel) ToEntity() *entity.NewsArticle {
	article := &entity.NewsArticle{
		ID:         m.ID,
		Title:      m.Title,
		Summary:    m.Summary,
		Content:    m.Content,
		Author:     m.Author,
		Date:       m.Date,
		CategoryID: m.CategoryID,
		Image:      m.Image,
		Views:      m.Views,
		Likes:      m.Likes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Category != nil {
		article.CategoryName = m.Category.Name
	}

	return article
}

// NewsArticleModelFromEntity converts the domain entity into a row.
func NewsArticleModelFromEntity(article *entity.NewsArticle) *NewsArticleModel {
	return &NewsArticleModel{
		ID:         article.ID,
		Title:      article.Title,
		Summary:    article.Summary,
		Content:    article.Content,
		Author:     article.Author,
		Date:       article.Date,
		CategoryID: article.CategoryID,
		Image:      article.Image,
		Views:      article.Views,
		Likes:      article.Likes,
		CreatedAt:  article.CreatedAt,
		UpdatedAt:  article.UpdatedAt,
	}
}
