package entity

import "time"

// UMKMStatus is the moderation state of a store listing.
type UMKMStatus string

const (
	// UMKMStatusPending marks a store awaiting admin review.
	UMKMStatusPending UMKMStatus = "pending"
	// UMKMStatusApproved marks a store visible on the public directory.
	UMKMStatusApproved UMKMStatus = "approved"
)

// IsValid checks if the status is a known value.
func (s UMKMStatus) IsValid() bool {
	switch s {
	case UMKMStatusPending, UMKMStatusApproved:
		return true
	default:
		return false
	}
}

// UMKM is a student micro-business listing. Only approved stores appear in
// the public directory.
type UMKM struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Owner       string        `json:"owner"`
	Faculty     string        `json:"faculty,omitempty"`
	Semester    string        `json:"semester,omitempty"`
	PriceRange  string        `json:"priceRange,omitempty"`
	Price       string        `json:"price,omitempty"`
	Contact     string        `json:"contact"`
	Email       string        `json:"email,omitempty"`
	Hours       string        `json:"hours,omitempty"`
	Location    string        `json:"location,omitempty"`
	Image       string        `json:"image,omitempty"`
	Delivery    bool          `json:"delivery"`
	Pickup      bool          `json:"pickup"`
	Status      UMKMStatus    `json:"status"`
	Products    []CatalogItem `json:"products"`
	Services    []CatalogItem `json:"services"`
	CreatedAt   time.Time     `json:"createdAt"`
	ApprovedAt  *time.Time    `json:"approvedAt,omitempty"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// SplitCatalog partitions the given items into the Products and Services
// slices by kind, preserving order.
func (u *UMKM) SplitCatalog(items []CatalogItem) {
	u.Products = make([]CatalogItem, 0, len(items))
	u.Services = make([]CatalogItem, 0)
	for _, item := range items {
		if item.Kind == CatalogKindService {
			u.Services = append(u.Services, item)
		} else {
			u.Products = append(u.Products, item)
		}
	}
}

// CatalogKind discriminates a store's offerings. It replaces membership
// scans over separate product and service id sets: every catalog row knows
// what it is.
type CatalogKind string

const (
	// CatalogKindProduct marks a physical product with stock.
	CatalogKindProduct CatalogKind = "product"
	// CatalogKindService marks a service with a duration.
	CatalogKindService CatalogKind = "service"
)

// IsValid checks if the kind is a known value.
func (k CatalogKind) IsValid() bool {
	switch k {
	case CatalogKindProduct, CatalogKindService:
		return true
	default:
		return false
	}
}

// CatalogItem is a single product or service offered by a store.
type CatalogItem struct {
	ID          uint        `json:"id"`
	UMKMID      uint        `json:"umkmId"`
	Kind        CatalogKind `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       float64     `json:"price"`
	Image       string      `json:"image,omitempty"`
	Stock       *int        `json:"stock,omitempty"`
	Duration    string      `json:"duration,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
