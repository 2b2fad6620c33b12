package impl

import (
	"context"
	"testing"

	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	mockRepo "bizconnect/internal/mocks/repository"
	"bizconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransactionService(t *testing.T) (usecase.TransactionUsecase, *mockRepo.MockTransactionRepository) {
	transactionRepo := mockRepo.NewMockTransactionRepository(t)

	srv := NewTransactionService(TransactionServiceParams{
		TxManager:       &fakeTxManager{factory: &fakeRepoFactory{transactionRepo: transactionRepo}},
		TransactionRepo: transactionRepo,
		Logger:          newDiscardLogger(),
	})

	return srv, transactionRepo
}

func TestTransactionService_CreateTransaction_ComputesTotal(t *testing.T) {
	srv, transactionRepo := newTransactionService(t)
	ctx := context.Background()

	transactionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Transaction).ID = 42
	}).Return(nil)
	transactionRepo.On("CreateItems", ctx, mock.AnythingOfType("[]entity.TransactionItem")).Return(nil)
	transactionRepo.On("CreateCustomer", ctx, mock.AnythingOfType("*entity.TransactionCustomer")).Return(nil)

	order, err := srv.CreateTransaction(ctx, 7, &usecase.CreateTransactionInput{
		StoreID:   3,
		StoreName: "Kopi Sudut",
		Items: []usecase.TransactionItemInput{
			{ItemID: 1, ItemName: "Kopi Susu", Price: 10000, Quantity: 2},
			{ItemID: 2, ItemName: "Roti Bakar", Price: 5000, Quantity: 1},
		},
		PaymentMethod: "cash",
		Customer: &usecase.CustomerInfoInput{
			Name:    "Sari",
			Email:   "sari@student.ac.id",
			Phone:   "081234567890",
			Address: "Jl. Ganesha No. 10, Bandung",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, float64(25000), order.TotalAmount)
	assert.Equal(t, entity.TransactionStatusPending, order.Status)
	for _, item := range order.Items {
		assert.Equal(t, uint(42), item.TransactionID)
	}
	assert.Equal(t, uint(42), order.Customer.TransactionID)
	assert.Equal(t, "sari@student.ac.id", order.Customer.Email)
}

func TestTransactionService_CreateTransaction_ExplicitTotalWins(t *testing.T) {
	srv, transactionRepo := newTransactionService(t)
	ctx := context.Background()

	transactionRepo.On("Create", ctx, mock.Anything).Return(nil)
	transactionRepo.On("CreateItems", ctx, mock.Anything).Return(nil)

	total := 20000.0
	order, err := srv.CreateTransaction(ctx, 7, &usecase.CreateTransactionInput{
		StoreID:     3,
		Items:       []usecase.TransactionItemInput{{ItemID: 1, ItemName: "Kopi Susu", Price: 10000, Quantity: 2}},
		TotalAmount: &total,
	})
	require.NoError(t, err)
	assert.Equal(t, 20000.0, order.TotalAmount)
}

func TestTransactionService_CreateTransaction_EmptyItemsRejected(t *testing.T) {
	srv, transactionRepo := newTransactionService(t)

	_, err := srv.CreateTransaction(context.Background(), 7, &usecase.CreateTransactionInput{StoreID: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	transactionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransactionService_CreateTransaction_ItemFailureRollsUp(t *testing.T) {
	srv, transactionRepo := newTransactionService(t)
	ctx := context.Background()

	transactionRepo.On("Create", ctx, mock.Anything).Return(nil)
	transactionRepo.On("CreateItems", ctx, mock.Anything).Return(errors.New("deadlock"))

	_, err := srv.CreateTransaction(ctx, 7, &usecase.CreateTransactionInput{
		StoreID: 3,
		Items:   []usecase.TransactionItemInput{{ItemID: 1, ItemName: "Kopi Susu", Price: 10000, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
}

func TestTransactionService_ListMyTransactions(t *testing.T) {
	srv, transactionRepo := newTransactionService(t)
	ctx := context.Background()

	history := []entity.Transaction{
		{ID: 2, UserID: 7, Items: []entity.TransactionItem{{ItemID: 1, ItemName: "Kopi Susu"}}},
		{ID: 1, UserID: 7},
	}
	transactionRepo.On("ListByUser", ctx, uint(7)).Return(history, nil)

	transactions, err := srv.ListMyTransactions(ctx, 7)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "Kopi Susu", transactions[0].Items[0].ItemName)
}
