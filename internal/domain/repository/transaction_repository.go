package repository

import (
	"context"
	"errors"

	"bizconnect/internal/domain/entity"
)

// ErrTransactionNotFound is returned when an order does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines persistence operations for orders.
type TransactionRepository interface {
	// Create persists the order header row.
	Create(ctx context.Context, tx *entity.Transaction) error

	// CreateItems persists the immutable line snapshots of an order.
	CreateItems(ctx context.Context, items []entity.TransactionItem) error

	// CreateCustomer persists the buyer snapshot of an order.
	CreateCustomer(ctx context.Context, customer *entity.TransactionCustomer) error

	// ListByUser retrieves a user's orders with items and customer info,
	// newest first.
	ListByUser(ctx context.Context, userID uint) ([]entity.Transaction, error)

	// ListAll retrieves every order with items, newest first.
	ListAll(ctx context.Context) ([]entity.Transaction, error)
}
