package mysql

import (
	"context"

	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/repository"
	"bizconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transactionRepository implements the domain.TransactionRepository interface using GORM.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create persists the order header row.
func (repo *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	row := model.TransactionModelFromEntity(tx)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	tx.ID = row.ID
	tx.CreatedAt = row.CreatedAt
	tx.UpdatedAt = row.UpdatedAt

	return nil
}

// CreateItems persists the immutable line snapshots of an order.
func (repo *transactionRepository) CreateItems(ctx context.Context, items []entity.TransactionItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]model.TransactionItemModel, 0, len(items))
	for i := range items {
		rows = append(rows, *model.TransactionItemModelFromEntity(&items[i]))
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction items")
	}

	return nil
}

// CreateCustomer persists the buyer snapshot of an order.
func (repo *transactionRepository) CreateCustomer(ctx context.Context, customer *entity.TransactionCustomer) error {
	row := model.TransactionCustomerModelFromEntity(customer)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction customer")
	}

	customer.ID = row.ID

	return nil
}

// ListByUser retrieves a user's orders with items and customer info, newest first.
func (repo *transactionRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Transaction, error) {
	var rows []model.TransactionModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions by user")
	}

	txs := make([]entity.Transaction, 0, len(rows))
	for i := range rows {
		txs = append(txs, *rows[i].ToEntity())
	}

	return txs, nil
}

// ListAll retrieves every order with items, newest first.
func (repo *transactionRepository) ListAll(ctx context.Context) ([]entity.Transaction, error) {
	var rows []model.TransactionModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	txs := make([]entity.Transaction, 0, len(rows))
	for i := range rows {
		txs = append(txs, *rows[i].ToEntity())
	}

	return txs, nil
}
