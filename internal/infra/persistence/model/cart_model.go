package model

import "time"

// CartLineModel mirrors the 'cart_lines' table. One row per (user, store,
// catalog item); the monotonically increasing ID preserves first-insertion
// order of store groups.
type CartLineModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	UserID        uint   `gorm:"uniqueIndex:uq_cart_line,priority:1;not null"`
	StoreID       uint   `gorm:"uniqueIndex:uq_cart_line,priority:2;not null"`
	StoreName     string `gorm:"type:varchar(150);not null"`
	StoreOwner    string `gorm:"type:varchar(100)"`
	StoreImage    string `gorm:"type:varchar(500)"`
	CatalogItemID uint   `gorm:"uniqueIndex:uq_cart_line,priority:3;not null"`
	ItemName      string `gorm:"type:varchar(150);not null"`
	Description   string `gorm:"type:text"`
	Price         float64
	Image         string `gorm:"type:varchar(500)"`
	Quantity      int    `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
