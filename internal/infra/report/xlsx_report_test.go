package report

import (
	"testing"
	"time"

	"bizconnect/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsWorkbook(t *testing.T) {
	svc := NewReportService()

	now := time.Now()
	transactions := []entity.Transaction{
		{
			ID:            1,
			UserID:        7,
			StoreName:     "Warung Kopi Mahasiswa",
			StoreOwner:    "Andi",
			TotalAmount:   25000,
			PaymentMethod: "whatsapp",
			Status:        entity.TransactionStatusPending,
			CreatedAt:     now,
			Items: []entity.TransactionItem{
				{ItemID: 10, ItemName: "Kopi Susu", Price: 10000, Quantity: 2},
				{ItemID: 11, ItemName: "Roti Bakar", Price: 5000, Quantity: 1},
			},
		},
	}

	data, err := svc.TransactionsWorkbook(transactions)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// xlsx files are zip archives: PK magic number.
	assert.Equal(t, byte('P'), data[0])
	assert.Equal(t, byte('K'), data[1])
}

func TestTransactionsWorkbook_Empty(t *testing.T) {
	svc := NewReportService()

	data, err := svc.TransactionsWorkbook(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
