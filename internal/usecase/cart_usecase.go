// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bizconnect/internal/domain/entity"
)

// --- Input DTOs ---

// AddCartItemInput identifies a catalog item to put in the caller's cart.
// The item and store snapshots are read from the directory, never trusted
// from the client.
type AddCartItemInput struct {
	StoreID  uint
	ItemID   uint
	Quantity int
}

// UpdateCartItemInput sets the quantity of an existing cart line.
// A quantity of zero or less removes the line.
type UpdateCartItemInput struct {
	StoreID  uint
	ItemID   uint
	Quantity int
}

// CheckoutInput defines the data required to convert one store group of the
// cart into a transaction.
type CheckoutInput struct {
	StoreID       uint
	PaymentMethod string
	Customer      *CustomerInfoInput
}

// --- Output DTOs ---

// CheckoutOutput returns the recorded transaction together with the WhatsApp
// handoff artifacts: the deep link to the store owner and a QR code PNG of
// that link, base64 encoded.
type CheckoutOutput struct {
	Transaction  *entity.Transaction
	WhatsAppLink string
	QRCodePNG    string
}

// CartUsecase defines the interface for the server-side shopping cart.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uint) (*entity.Cart, error)
	AddItem(ctx context.Context, userID uint, input *AddCartItemInput) (*entity.Cart, error)
	UpdateItem(ctx context.Context, userID uint, input *UpdateCartItemInput) (*entity.Cart, error)
	RemoveItem(ctx context.Context, userID uint, storeID, itemID uint) (*entity.Cart, error)

	// Checkout enforces the single-store rule, records the transaction
	// atomically and clears the checked-out store group from the cart.
	Checkout(ctx context.Context, userID uint, input *CheckoutInput) (*CheckoutOutput, error)
}
