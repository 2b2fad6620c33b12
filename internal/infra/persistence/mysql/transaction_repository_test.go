package mysql

import (
	"context"
	"testing"

	"bizconnect/internal/domain/entity"
	"bizconnect/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTransactionTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	return newTestDB(t,
		&model.TransactionModel{},
		&model.TransactionItemModel{},
		&model.TransactionCustomerModel{},
	)
}

func TestTransactionRepository_CreateItems_PersistsSubtotal(t *testing.T) {
	db := newTransactionTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	items := []entity.TransactionItem{
		{TransactionID: 1, ItemID: 10, ItemName: "Kopi Susu", Price: 10000, Quantity: 2},
		{TransactionID: 1, ItemID: 11, ItemName: "Roti Bakar", Price: 5000, Quantity: 3},
	}
	require.NoError(t, repo.CreateItems(ctx, items))

	var rows []model.TransactionItemModel
	require.NoError(t, db.Order("item_id ASC").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, float64(20000), rows[0].Subtotal)
	assert.Equal(t, float64(15000), rows[1].Subtotal)
}

func TestTransactionRepository_CreateCustomer_PersistsContactFields(t *testing.T) {
	db := newTransactionTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	customer := &entity.TransactionCustomer{
		TransactionID: 1,
		Name:          "Sari",
		Email:         "sari@student.ac.id",
		Phone:         "081234567890",
		Address:       "Jl. Ganesha No. 10, Bandung",
		Notes:         "Tanpa gula",
	}
	require.NoError(t, repo.CreateCustomer(ctx, customer))
	assert.NotZero(t, customer.ID)

	var row model.TransactionCustomerModel
	require.NoError(t, db.Where("transaction_id = ?", 1).First(&row).Error)
	assert.Equal(t, "Sari", row.Name)
	assert.Equal(t, "sari@student.ac.id", row.Email)
	assert.Equal(t, "081234567890", row.Phone)
	assert.Equal(t, "Jl. Ganesha No. 10, Bandung", row.Address)
}

func TestTransactionRepository_ListByUser_RoundTrip(t *testing.T) {
	db := newTransactionTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	order := &entity.Transaction{
		UserID:        7,
		StoreID:       3,
		StoreName:     "Kopi Sudut",
		TotalAmount:   20000,
		PaymentMethod: "cash",
		Status:        entity.TransactionStatusPending,
	}
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.CreateItems(ctx, []entity.TransactionItem{
		{TransactionID: order.ID, ItemID: 10, ItemName: "Kopi Susu", Price: 10000, Quantity: 2},
	}))
	require.NoError(t, repo.CreateCustomer(ctx, &entity.TransactionCustomer{
		TransactionID: order.ID,
		Name:          "Sari",
		Email:         "sari@student.ac.id",
		Phone:         "081234567890",
		Address:       "Jl. Ganesha No. 10, Bandung",
	}))

	txs, err := repo.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Len(t, txs[0].Items, 1)
	assert.Equal(t, float64(20000), txs[0].Items[0].Subtotal())
	require.NotNil(t, txs[0].Customer)
	assert.Equal(t, "sari@student.ac.id", txs[0].Customer.Email)
}
