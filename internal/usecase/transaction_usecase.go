// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bizconnect/internal/domain/entity"
)

// --- Input DTOs ---

// TransactionItemInput is one immutable line of a transaction payload.
type TransactionItemInput struct {
	ItemID   uint
	ItemName string
	Price    float64
	Quantity int
}

// CustomerInfoInput is the buyer snapshot attached to a transaction.
// Name, Email, Phone and Address are mandatory at checkout.
type CustomerInfoInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// CreateTransactionInput defines the data required to record a transaction.
// When TotalAmount is nil the total is computed from the item lines.
type CreateTransactionInput struct {
	StoreID       uint
	StoreName     string
	StoreOwner    string
	Items         []TransactionItemInput
	TotalAmount   *float64
	PaymentMethod string
	Customer      *CustomerInfoInput
}

// TransactionUsecase defines the interface for transaction business operations.
type TransactionUsecase interface {
	// CreateTransaction writes the transaction, its item rows and the customer
	// snapshot atomically: either all rows land or none do.
	CreateTransaction(ctx context.Context, userID uint, input *CreateTransactionInput) (*entity.Transaction, error)

	// ListMyTransactions returns the caller's history, newest first, with item
	// lines and customer info attached.
	ListMyTransactions(ctx context.Context, userID uint) ([]entity.Transaction, error)

	// ListAllTransactions returns every transaction for admin reporting.
	ListAllTransactions(ctx context.Context) ([]entity.Transaction, error)
}
