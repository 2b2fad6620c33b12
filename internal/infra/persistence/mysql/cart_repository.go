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

// cartRepository implements the domain.CartRepository interface using GORM.
// Cart state is stored as one row per line; group order is reconstructed
// from the rows' insertion order.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Load retrieves the user's cart, grouping lines by store in first-insertion order.
func (repo *cartRepository) Load(ctx context.Context, userID uint) (*entity.Cart, error) {
	var rows []model.CartLineModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart := &entity.Cart{UserID: userID}
	for i := range rows {
		row := &rows[i]
		cart.AddItem(
			entity.CartStore{
				StoreID:    row.StoreID,
				StoreName:  row.StoreName,
				StoreOwner: row.StoreOwner,
				StoreImage: row.StoreImage,
			},
			entity.CartItem{
				CatalogItemID: row.CatalogItemID,
				Name:          row.ItemName,
				Description:   row.Description,
				Price:         row.Price,
				Image:         row.Image,
				Quantity:      row.Quantity,
			},
		)
	}

	return cart, nil
}

// Save replaces the user's cart lines with the given state. The clear and
// the insert run in one transaction so a failed insert never loses the
// previous lines.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	rows := make([]model.CartLineModel, 0)
	for si := range cart.Stores {
		store := &cart.Stores[si]
		for ii := range store.Items {
			item := &store.Items[ii]
			rows = append(rows, model.CartLineModel{
				UserID:        cart.UserID,
				StoreID:       store.StoreID,
				StoreName:     store.StoreName,
				StoreOwner:    store.StoreOwner,
				StoreImage:    store.StoreImage,
				CatalogItemID: item.CatalogItemID,
				ItemName:      item.Name,
				Description:   item.Description,
				Price:         item.Price,
				Image:         item.Image,
				Quantity:      item.Quantity,
			})
		}
	}

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("user_id = ?", cart.UserID).
			Delete(&model.CartLineModel{}).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.Create(&rows).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
		}

		return nil
	})
}

// ClearStore removes every line of one store group.
func (repo *cartRepository) ClearStore(ctx context.Context, userID, storeID uint) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		Delete(&model.CartLineModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart store")
	}

	return nil
}
