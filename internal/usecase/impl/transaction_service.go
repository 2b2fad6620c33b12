// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizconnect/internal/delivery/context"
	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/repository"
	"bizconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	txManager       repository.TransactionManager
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// TransactionServiceParams holds dependencies for transactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		txManager:       params.TxManager,
		transactionRepo: params.TransactionRepo,
		logger:          params.Logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTransaction records an order. Header, item snapshots and the
// customer snapshot land in one database transaction; a failure on any row
// rolls back all of them.
func (srv *transactionService) CreateTransaction(ctx context.Context, userID uint, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	srv.log(ctx).Info("Creating transaction", slog.Any("userID", userID), slog.Any("storeID", input.StoreID))

	if len(input.Items) == 0 {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("Transaksi harus memiliki minimal satu item"),
			"empty transaction items",
		)
	}

	order := buildTransaction(userID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txRepo := repoFactory.NewTransactionRepository()

		return persistTransaction(ctx, txRepo, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute transaction creation", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTransactionFailed, "failed to execute transaction creation")
	}

	srv.log(ctx).Debug("Transaction recorded", slog.Any("transactionID", order.ID), slog.Float64("totalAmount", order.TotalAmount))

	return order, nil
}

// buildTransaction assembles the order snapshot. A missing total is computed
// from the item lines.
func buildTransaction(userID uint, input *usecase.CreateTransactionInput) *entity.Transaction {
	order := &entity.Transaction{
		UserID:        userID,
		StoreID:       input.StoreID,
		StoreName:     input.StoreName,
		StoreOwner:    input.StoreOwner,
		PaymentMethod: input.PaymentMethod,
		Status:        entity.TransactionStatusPending,
	}

	for _, item := range input.Items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		order.Items = append(order.Items, entity.TransactionItem{
			ItemID:   item.ItemID,
			ItemName: item.ItemName,
			Price:    item.Price,
			Quantity: quantity,
		})
	}

	if input.TotalAmount != nil {
		order.TotalAmount = *input.TotalAmount
	} else {
		order.TotalAmount = order.ComputeTotal()
	}

	if input.Customer != nil {
		order.Customer = &entity.TransactionCustomer{
			Name:    input.Customer.Name,
			Email:   input.Customer.Email,
			Phone:   input.Customer.Phone,
			Address: input.Customer.Address,
			Notes:   input.Customer.Notes,
		}
	}

	return order
}

// persistTransaction writes the order rows in dependency order so the item
// and customer snapshots carry the generated order ID.
func persistTransaction(ctx context.Context, txRepo repository.TransactionRepository, order *entity.Transaction) error {
	if err := txRepo.Create(ctx, order); err != nil {
		return errors.Wrap(err, "failed to create transaction header")
	}

	for i := range order.Items {
		order.Items[i].TransactionID = order.ID
	}
	if err := txRepo.CreateItems(ctx, order.Items); err != nil {
		return errors.Wrap(err, "failed to create transaction items")
	}

	if order.Customer != nil {
		order.Customer.TransactionID = order.ID
		if err := txRepo.CreateCustomer(ctx, order.Customer); err != nil {
			return errors.Wrap(err, "failed to create transaction customer")
		}
	}

	return nil
}

// ListMyTransactions returns the caller's order history.
func (srv *transactionService) ListMyTransactions(ctx context.Context, userID uint) ([]entity.Transaction, error) {
	transactions, err := srv.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user transactions")
	}

	return transactions, nil
}

// ListAllTransactions returns every order for admin reporting.
func (srv *transactionService) ListAllTransactions(ctx context.Context) ([]entity.Transaction, error) {
	transactions, err := srv.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all transactions")
	}

	return transactions, nil
}
