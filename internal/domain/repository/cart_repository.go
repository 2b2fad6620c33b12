package repository

import (
	"context"

	"bizconnect/internal/domain/entity"
)

// CartRepository persists each user's cart. Implementations must return the
// store groups in first-insertion order.
type CartRepository interface {
	// Load retrieves the user's cart. A user with no lines gets an empty
	// cart, never an error.
	Load(ctx context.Context, userID uint) (*entity.Cart, error)

	// Save replaces the user's cart lines with the given state.
	Save(ctx context.Context, cart *entity.Cart) error

	// ClearStore removes every line of one store group.
	ClearStore(ctx context.Context, userID, storeID uint) error
}
