package repository

import (
	"context"
	"errors"

	"bizconnect/internal/domain/entity"
)

// ErrUMKMNotFound is returned when a store listing does not exist.
var ErrUMKMNotFound = errors.New("umkm not found")

// ErrCatalogItemNotFound is returned when a catalog item does not exist for
// the given (id, umkm) pair.
var ErrCatalogItemNotFound = errors.New("catalog item not found")

// UMKMRepository defines persistence operations for store listings.
type UMKMRepository interface {
	// ListApproved retrieves approved stores with their catalog attached,
	// newest first. This feeds the public directory.
	ListApproved(ctx context.Context) ([]entity.UMKM, error)

	// ListAll retrieves every store regardless of status, newest first.
	ListAll(ctx context.Context) ([]entity.UMKM, error)

	// FindByID retrieves a single store with its catalog attached.
	FindByID(ctx context.Context, id uint) (*entity.UMKM, error)

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the number of stores in the given status.
	CountByStatus(ctx context.Context, status entity.UMKMStatus) (int64, error)

	// Create persists a new store.
	Create(ctx context.Context, umkm *entity.UMKM) error

	// Update modifies an existing store.
	Update(ctx context.Context, umkm *entity.UMKM) error

	// Approve marks a store approved and stamps the approval time.
	Approve(ctx context.Context, id uint) error

	// Delete removes a store. Catalog items are deleted first by the caller.
	Delete(ctx context.Context, id uint) error
}

// CatalogItemRepository defines persistence operations for store offerings.
type CatalogItemRepository interface {
	// ListByUMKM retrieves all catalog items of a store.
	ListByUMKM(ctx context.Context, umkmID uint) ([]entity.CatalogItem, error)

	// FindByID retrieves a catalog item regardless of owner.
	FindByID(ctx context.Context, id uint) (*entity.CatalogItem, error)

	// FindByIDAndUMKM retrieves the item only when it belongs to the store.
	FindByIDAndUMKM(ctx context.Context, id, umkmID uint) (*entity.CatalogItem, error)

	// Create persists a new catalog item.
	Create(ctx context.Context, item *entity.CatalogItem) error

	// Update modifies an existing catalog item.
	Update(ctx context.Context, item *entity.CatalogItem) error

	// DeleteByIDAndUMKM removes the item only when the (id, umkm) pair
	// matches exactly. Returns ErrCatalogItemNotFound otherwise.
	DeleteByIDAndUMKM(ctx context.Context, id, umkmID uint) error

	// DeleteByUMKM removes every catalog item of a store.
	DeleteByUMKM(ctx context.Context, umkmID uint) error
}
