package model

import (
	"time"

	"bizconnect/internal/domain/entity"
)

// TransactionModel mirrors the 'transactions' table. Store fields are
// denormalized snapshots taken at order time.
type TransactionModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	UserID        uint   `gorm:"index;not null"`
	StoreID       uint   `gorm:"not null"`
	StoreName     string `gorm:"type:varchar(150);not null"`
	StoreOwner    string `gorm:"type:varchar(100)"`
	TotalAmount   float64
	PaymentMethod string `gorm:"type:varchar(50)"`
	Status        string `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items    []TransactionItemModel    `gorm:"foreignKey:TransactionID"`
	Customer *TransactionCustomerModel `gorm:"foreignKey:TransactionID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts the row and its preloaded associations into the domain entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	tx := &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		StoreID:       m.StoreID,
		StoreName:     m.StoreName,
		StoreOwner:    m.StoreOwner,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: m.PaymentMethod,
		Status:        entity.TransactionStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	tx.Items = make([]entity.TransactionItem, 0, len(m.Items))
	for i := range m.Items {
		tx.Items = append(tx.Items, *m.Items[i].ToEntity())
	}
	if m.Customer != nil {
		tx.Customer = m.Customer.ToEntity()
	}

	return tx
}

// TransactionModelFromEntity converts the domain entity into a header row.
// Items and customer rows are written separately inside the transaction.
func TransactionModelFromEntity(tx *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            tx.ID,
		UserID:        tx.UserID,
		StoreID:       tx.StoreID,
		StoreName:     tx.StoreName,
		StoreOwner:    tx.StoreOwner,
		TotalAmount:   tx.TotalAmount,
		PaymentMethod: tx.PaymentMethod,
		Status:        string(tx.Status),
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
}

// TransactionItemModel mirrors the 'transaction_items' table.
type TransactionItemModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	TransactionID uint   `gorm:"index;not null"`
	ItemID        uint   `gorm:"not null"`
	ItemName      string `gorm:"type:varchar(150);not null"`
	Price         float64
	Quantity      int
	Subtotal      float64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionItemModel) TableName() string {
	return "transaction_items"
}

// ToEntity converts the row into the domain entity.
func (m *TransactionItemModel) ToEntity() *entity.TransactionItem {
	return &entity.TransactionItem{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		ItemID:        m.ItemID,
		ItemName:      m.ItemName,
		Price:         m.Price,
		Quantity:      m.Quantity,
	}
}

// TransactionItemModelFromEntity converts the domain entity into a row. The
// subtotal is snapshotted alongside price and quantity.
func TransactionItemModelFromEntity(item *entity.TransactionItem) *TransactionItemModel {
	return &TransactionItemModel{
		ID:            item.ID,
		TransactionID: item.TransactionID,
		ItemID:        item.ItemID,
		ItemName:      item.ItemName,
		Price:         item.Price,
		Quantity:      item.Quantity,
		Subtotal:      item.Subtotal(),
	}
}

// TransactionCustomerModel mirrors the 'transaction_customers' table.
type TransactionCustomerModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	TransactionID uint   `gorm:"uniqueIndex;not null"`
	Name          string `gorm:"type:varchar(100);not null"`
	Email         string `gorm:"type:varchar(100);not null"`
	Phone         string `gorm:"type:varchar(30);not null"`
	Address       string `gorm:"type:varchar(255);not null"`
	Notes         string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionCustomerModel) TableName() string {
	return "transaction_customers"
}

// ToEntity converts the row into the domain entity.
func (m *TransactionCustomerModel) ToEntity() *entity.TransactionCustomer {
	return &entity.TransactionCustomer{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		Notes:         m.Notes,
	}
}

// TransactionCustomerModelFromEntity converts the domain entity into a row.
func TransactionCustomerModelFromEntity(customer *entity.TransactionCustomer) *TransactionCustomerModel {
	return &TransactionCustomerModel{
		ID:            customer.ID,
		TransactionID: customer.TransactionID,
		Name:          customer.Name,
		Email:         customer.Email,
		Phone:         customer.Phone,
		Address:       customer.Address,
		Notes:         customer.Notes,
	}
}
