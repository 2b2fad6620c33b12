package mysql

import (
	"context"
	"testing"

	"bizconnect/internal/domain/entity"
	"bizconnect/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the same transaction settings
// as the production connection and migrates the given models.
func newTestDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))

	return db
}

func newCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	return newTestDB(t, &model.CartLineModel{})
}

func TestCartRepository_SaveAndLoad(t *testing.T) {
	repo := NewCartRepository(newCartTestDB(t))
	ctx := context.Background()

	cart := &entity.Cart{UserID: 4}
	cart.AddItem(
		entity.CartStore{StoreID: 2, StoreName: "Kopi Kenangan Kampus", StoreOwner: "Rina"},
		entity.CartItem{CatalogItemID: 9, Name: "Es Kopi Susu", Price: 12000, Quantity: 2},
	)

	require.NoError(t, repo.Save(ctx, cart))

	loaded, err := repo.Load(ctx, 4)
	require.NoError(t, err)
	require.Len(t, loaded.Stores, 1)
	require.Len(t, loaded.Stores[0].Items, 1)
	require.Equal(t, "Es Kopi Susu", loaded.Stores[0].Items[0].Name)
	require.Equal(t, 2, loaded.Stores[0].Items[0].Quantity)
}

func TestCartRepository_Save_EmptyCartClearsLines(t *testing.T) {
	repo := NewCartRepository(newCartTestDB(t))
	ctx := context.Background()

	cart := &entity.Cart{UserID: 4}
	cart.AddItem(
		entity.CartStore{StoreID: 2, StoreName: "Kopi Kenangan Kampus"},
		entity.CartItem{CatalogItemID: 9, Name: "Es Kopi Susu", Price: 12000, Quantity: 1},
	)
	require.NoError(t, repo.Save(ctx, cart))

	require.NoError(t, repo.Save(ctx, &entity.Cart{UserID: 4}))

	loaded, err := repo.Load(ctx, 4)
	require.NoError(t, err)
	require.True(t, loaded.IsEmpty())
}

func TestCartRepository_Save_FailedInsertKeepsPreviousLines(t *testing.T) {
	repo := NewCartRepository(newCartTestDB(t))
	ctx := context.Background()

	cart := &entity.Cart{UserID: 4}
	cart.AddItem(
		entity.CartStore{StoreID: 2, StoreName: "Kopi Kenangan Kampus", StoreOwner: "Rina"},
		entity.CartItem{CatalogItemID: 9, Name: "Es Kopi Susu", Price: 12000, Quantity: 2},
	)
	require.NoError(t, repo.Save(ctx, cart))

	// Two lines for the same (store, item) pair violate the unique index
	// on insert. The preceding clear must roll back with it.
	corrupt := &entity.Cart{
		UserID: 4,
		Stores: []entity.CartStore{{
			StoreID:   2,
			StoreName: "Kopi Kenangan Kampus",
			Items: []entity.CartItem{
				{CatalogItemID: 9, Name: "Es Kopi Susu", Price: 12000, Quantity: 1},
				{CatalogItemID: 9, Name: "Es Kopi Susu", Price: 12000, Quantity: 3},
			},
		}},
	}
	require.Error(t, repo.Save(ctx, corrupt))

	loaded, err := repo.Load(ctx, 4)
	require.NoError(t, err)
	require.Len(t, loaded.Stores, 1)
	require.Len(t, loaded.Stores[0].Items, 1)
	require.Equal(t, uint(9), loaded.Stores[0].Items[0].CatalogItemID)
	require.Equal(t, 2, loaded.Stores[0].Items[0].Quantity)
}
