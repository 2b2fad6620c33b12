package entity

import "time"

// TransactionStatus is the lifecycle state of an order.
type TransactionStatus string

const (
	// TransactionStatusPending marks a freshly created order.
	TransactionStatusPending TransactionStatus = "pending"
	// TransactionStatusCompleted marks a fulfilled order.
	TransactionStatusCompleted TransactionStatus = "completed"
	// TransactionStatusCancelled marks a cancelled order.
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// IsValid checks if the status is a known value.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusCancelled:
		return true
	default:
		return false
	}
}

// Transaction is an order snapshot. Store fields are denormalized at
// creation time so later edits to the UMKM never rewrite order history.
type Transaction struct {
	ID            uint                 `json:"id"`
	UserID        uint                 `json:"userId"`
	StoreID       uint                 `json:"storeId"`
	StoreName     string               `json:"storeName"`
	StoreOwner    string               `json:"storeOwner,omitempty"`
	TotalAmount   float64              `json:"totalAmount"`
	PaymentMethod string               `json:"paymentMethod"`
	Status        TransactionStatus    `json:"status"`
	Items         []TransactionItem    `json:"items"`
	Customer      *TransactionCustomer `json:"customerInfo,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ComputeTotal returns the sum of the item subtotals.
func (t *Transaction) ComputeTotal() float64 {
	var total float64
	for _, item := range t.Items {
		total += item.Subtotal()
	}

	return total
}

// TransactionItem is an immutable line snapshot. Name and price are copied
// from the catalog row at order time.
type TransactionItem struct {
	ID            uint    `json:"id"`
	TransactionID uint    `json:"transactionId"`
	ItemID        uint    `json:"itemId"`
	ItemName      string  `json:"itemName"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
}

// Subtotal returns price times quantity for the line.
func (i *TransactionItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// TransactionCustomer is the one-to-one buyer snapshot taken at checkout.
type TransactionCustomer struct {
	ID            uint   `json:"id"`
	TransactionID uint   `json:"transactionId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes,omitempty"`
}
