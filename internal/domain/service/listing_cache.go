package service

import (
	"context"

	"bizconnect/internal/domain/entity"
)

// ListingCache caches the public approved-store listing. Implementations
// must treat a miss and a backend failure the same way: return ok=false and
// let the caller fall through to the database.
type ListingCache interface {
	// GetApprovedUMKM returns the cached listing, if any.
	GetApprovedUMKM(ctx context.Context) (listing []entity.UMKM, ok bool)

	// SetApprovedUMKM stores the listing with the configured TTL.
	SetApprovedUMKM(ctx context.Context, listing []entity.UMKM)

	// InvalidateApprovedUMKM drops the cached listing after admin mutations.
	InvalidateApprovedUMKM(ctx context.Context)
}
