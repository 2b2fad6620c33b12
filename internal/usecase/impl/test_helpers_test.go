package impl

import (
	"context"
	"io"
	"log/slog"

	"bizconnect/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTxManager runs the function directly against the given factory. The
// commit/rollback mechanics live in the GORM implementation and are out of
// scope for usecase tests.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeRepoFactory hands out the pre-wired mock repositories.
type fakeRepoFactory struct {
	userRepo        repository.UserRepository
	umkmRepo        repository.UMKMRepository
	catalogRepo     repository.CatalogItemRepository
	transactionRepo repository.TransactionRepository
	cartRepo        repository.CartRepository
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepoFactory) NewUMKMRepository() repository.UMKMRepository {
	return f.umkmRepo
}

func (f *fakeRepoFactory) NewCatalogItemRepository() repository.CatalogItemRepository {
	return f.catalogRepo
}

func (f *fakeRepoFactory) NewTransactionRepository() repository.TransactionRepository {
	return f.transactionRepo
}

func (f *fakeRepoFactory) NewCartRepository() repository.CartRepository {
	return f.cartRepo
}
