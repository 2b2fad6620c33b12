package service

import (
	"context"
)

// TransactionEvent is published after a checkout commits, for downstream
// consumers (order dashboards, notification fan-out).
type TransactionEvent struct {
	RequestID     string  `json:"request_id,omitempty"` // For distributed tracing
	TransactionID uint    `json:"transaction_id"`
	UserID        uint    `json:"user_id"`
	StoreID       uint    `json:"store_id"`
	StoreName     string  `json:"store_name"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
	ItemCount     int     `json:"item_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTransactionEvent publishes a transaction-created event for async processing
	PublishTransactionEvent(ctx context.Context, event *TransactionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
