package entity

import "time"

// NewsCategory is a lazily created lookup row. Admin news writes reference
// categories by free-text name and create missing ones on the fly.
type NewsCategory struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewsArticle is a single campus news entry. CategoryName is denormalized
// from the joined category row for read paths.
type NewsArticle struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	Date         time.Time `json:"date"`
	CategoryID   uint      `json:"categoryId"`
	CategoryName string    `json:"category"`
	Image        string    `json:"image,omitempty"`
	Views        int       `json:"views"`
	Likes        int       `json:"likes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
