package model

import (
	"time"

	"bizconnect/internal/domain/entity"
)

// UMKMModel mirrors the 'umkm' table.
type UMKMModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(150);not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(100);index"`
	Owner       string `gorm:"type:varchar(100)"`
	Faculty     string `gorm:"type:varchar(100)"`
	Semester    string `gorm:"type:varchar(20)"`
	PriceRange  string `gorm:"type:varchar(100)"`
	Price       string `gorm:"type:varchar(100)"`
	Contact     string `gorm:"type:varchar(255)"`
	Email       string `gorm:"type:varchar(255)"`
	Hours       string `gorm:"type:varchar(100)"`
	Location    string `gorm:"type:varchar(255)"`
	Image       string `gorm:"type:varchar(500)"`
	Delivery    bool   `gorm:"not null;default:false"`
	Pickup      bool   `gorm:"not null;default:false"`
	Status      string `gorm:"type:varchar(20);not null;default:pending;index"`
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CatalogItems []CatalogItemModel `gorm:"foreignKey:UMKMID"`
}

// TableName explicitly sets the table name for GORM.
func (UMKMModel) TableName() string {
	return "umkm"
}

// ToEntity converts the row into the domain entity, splitting the preloaded
// catalog into products and services.
func (m *UMKMModel) ToEntity() *entity.UMKM {
	umkm := &entity.UMKM{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Owner:       m.Owner,
		Faculty:     m.Faculty,
		Semester:    m.Semester,
		PriceRange:  m.PriceRange,
		Price:       m.Price,
		Contact:     m.Contact,
		Email:       m.Email,
		Hours:       m.Hours,
		Location:    m.Location,
		Image:       m.Image,
		Delivery:    m.Delivery,
		Pickup:      m.Pickup,
		Status:      entity.UMKMStatus(m.Status),
		ApprovedAt:  m.ApprovedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	items := make([]entity.CatalogItem, 0, len(m.CatalogItems))
	for i := range m.CatalogItems {
		items = append(items, *m.CatalogItems[i].ToEntity())
	}
	umkm.SplitCatalog(items)

	return umkm
}

// UMKMModelFromEntity converts the domain entity into a row.
func UMKMModelFromEntity(umkm *entity.UMKM) *UMKMModel {
	return &UMKMModel{
		ID:          umkm.ID,
		Name:        umkm.Name,
		Description: umkm.Description,
		Category:    umkm.Category,
		Owner:       umkm.Owner,
		Faculty:     umkm.Faculty,
		Semester:    umkm.Semester,
		PriceRange:  umkm.PriceRange,
		Price:       umkm.Price,
		Contact:     umkm.Contact,
		Email:       umkm.Email,
		Hours:       umkm.Hours,
		Location:    umkm.Location,
		Image:       umkm.Image,
		Delivery:    umkm.Delivery,
		Pickup:      umkm.Pickup,
		Status:      string(umkm.Status),
		ApprovedAt:  umkm.ApprovedAt,
		CreatedAt:   umkm.CreatedAt,
		UpdatedAt:   umkm.UpdatedAt,
	}
}

// CatalogItemModel mirrors the 'catalog_items' table. The kind column
// discriminates products from services.
type CatalogItemModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	UMKMID      uint   `gorm:"column:umkm_id;index;not null"`
	Kind        string `gorm:"type:varchar(10);not null;index"`
	Name        string `gorm:"type:varchar(150);not null"`
	Description string `gorm:"type:text"`
	Price       float64
	Image       string `gorm:"type:varchar(500)"`
	Stock       *int
	Duration    string `gorm:"type:varchar(50)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CatalogItemModel) TableName() string {
	return "catalog_items"
}

// ToEntity converts the row into the domain entity.
func (m *CatalogItemModel) ToEntity() *entity.CatalogItem {
	return &entity.CatalogItem{
		ID:          m.ID,
		UMKMID:      m.UMKMID,
		Kind:        entity.CatalogKind(m.Kind),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		Stock:       m.Stock,
		Duration:    m.Duration,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CatalogItemModelFromEntity converts the domain entity into a row.
func CatalogItemModelFromEntity(item *entity.CatalogItem) *CatalogItemModel {
	return &CatalogItemModel{
		ID:          item.ID,
		UMKMID:      item.UMKMID,
		Kind:        string(item.Kind),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Stock:       item.Stock,
		Duration:    item.Duration,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
