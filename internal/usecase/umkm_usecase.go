// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bizconnect/internal/domain/entity"
)

// --- Input DTOs ---

// ListUMKMInput carries optional filters for the public UMKM listing.
type ListUMKMInput struct {
	Category string
	Query    string
}

// CreateUMKMInput defines the data required to register a UMKM entry.
type CreateUMKMInput struct {
	Name        string
	Description string
	Category    string
	Owner       string
	Faculty     string
	Semester    string
	PriceRange  string
	Price       string
	Contact     string
	Email       string
	Hours       string
	Location    string
	Image       string
	Delivery    bool
	Pickup      bool
	Status      entity.UMKMStatus
}

// UpdateUMKMInput defines the mutable fields of a UMKM entry.
// Nil pointers leave the stored value untouched.
type UpdateUMKMInput struct {
	Name        *string
	Description *string
	Category    *string
	Owner       *string
	Faculty     *string
	Semester    *string
	PriceRange  *string
	Price       *string
	Contact     *string
	Email       *string
	Hours       *string
	Location    *string
	Image       *string
	Delivery    *bool
	Pickup      *bool
	Status      *entity.UMKMStatus
}

// CatalogItemInput defines the data for a product or service entry attached
// to a UMKM. Kind distinguishes the two; Stock applies to products and
// Duration to services.
type CatalogItemInput struct {
	Kind        entity.CatalogKind
	Name        string
	Description string
	Price       float64
	Image       string
	Stock       *int
	Duration    string
}

// UpdateCatalogItemInput defines the mutable fields of a catalog item.
// A nil Kind keeps the stored discriminator.
type UpdateCatalogItemInput struct {
	Kind        *entity.CatalogKind
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Stock       *int
	Duration    *string
}

// UMKMUsecase defines the interface for UMKM directory business operations,
// covering both the public listing and the admin management surface.
type UMKMUsecase interface {
	// ListApproved returns the public directory: approved entries only,
	// newest first, each with its catalog attached.
	ListApproved(ctx context.Context, input *ListUMKMInput) ([]entity.UMKM, error)

	ListAll(ctx context.Context) ([]entity.UMKM, error)
	GetUMKM(ctx context.Context, id uint) (*entity.UMKM, error)
	CreateUMKM(ctx context.Context, input *CreateUMKMInput) (*entity.UMKM, error)
	UpdateUMKM(ctx context.Context, id uint, input *UpdateUMKMInput) (*entity.UMKM, error)
	DeleteUMKM(ctx context.Context, id uint) error
	ApproveUMKM(ctx context.Context, id uint) (*entity.UMKM, error)

	AddCatalogItem(ctx context.Context, umkmID uint, input *CatalogItemInput) (*entity.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, umkmID, itemID uint, input *UpdateCatalogItemInput) (*entity.CatalogItem, error)

	// DeleteCatalogItem removes the item only when the (itemID, umkmID) pair
	// matches exactly. A nil kind means the caller did not say which side of
	// the catalog the item lives on; the stored row decides.
	DeleteCatalogItem(ctx context.Context, umkmID, itemID uint, kind *entity.CatalogKind) error
}
