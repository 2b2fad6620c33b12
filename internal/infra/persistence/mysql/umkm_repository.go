package mysql

import (
	"context"
	"time"

	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/repository"
	"bizconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// umkmRepository implements the domain.UMKMRepository interface using GORM.
type umkmRepository struct {
	db *gorm.DB
}

// NewUMKMRepository is the constructor for umkmRepository.
func NewUMKMRepository(db *gorm.DB) repository.UMKMRepository {
	return &umkmRepository{db: db}
}

// ListApproved retrieves approved stores with their catalog attached, newest first.
func (repo *umkmRepository) ListApproved(ctx context.Context) ([]entity.UMKM, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("status = ?", string(entity.UMKMStatusApproved)))
}

// ListAll retrieves every store regardless of status, newest first.
func (repo *umkmRepository) ListAll(ctx context.Context) ([]entity.UMKM, error) {
	return repo.list(ctx, repo.db.WithContext(ctx))
}

func (repo *umkmRepository) list(_ context.Context, tx *gorm.DB) ([]entity.UMKM, error) {
	var rows []model.UMKMModel
	err := tx.
		Preload("CatalogItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("catalog_items.id ASC")
		}).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list umkm")
	}

	stores := make([]entity.UMKM, 0, len(rows))
	for i := range rows {
		stores = append(stores, *rows[i].ToEntity())
	}

	return stores, nil
}

// FindByID retrieves a single store with its catalog attached.
func (repo *umkmRepository) FindByID(ctx context.Context, id uint) (*entity.UMKM, error) {
	var row model.UMKMModel
	err := repo.db.WithContext(ctx).
		Preload("CatalogItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("catalog_items.id ASC")
		}).
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUMKMNotFound
		}

		return nil, errors.Wrap(err, "failed to find umkm")
	}

	return row.ToEntity(), nil
}

// Count returns the total number of stores.
func (repo *umkmRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UMKMModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count umkm")
	}

	return count, nil
}

// CountByStatus returns the number of stores in the given status.
func (repo *umkmRepository) CountByStatus(ctx context.Context, status entity.UMKMStatus) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UMKMModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count umkm by status")
	}

	return count, nil
}

// Create persists a new store.
func (repo *umkmRepository) Create(ctx context.Context, umkm *entity.UMKM) error {
	row := model.UMKMModelFromEntity(umkm)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create umkm")
	}

	umkm.ID = row.ID
	umkm.CreatedAt = row.CreatedAt
	umkm.UpdatedAt = row.UpdatedAt

	return nil
}

// Update modifies an existing store.
func (repo *umkmRepository) Update(ctx context.Context, umkm *entity.UMKM) error {
	row := model.UMKMModelFromEntity(umkm)

	if err := repo.db.WithContext(ctx).Save(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update umkm")
	}

	umkm.UpdatedAt = row.UpdatedAt

	return nil
}

// Approve marks a store approved and stamps the approval time.
func (repo *umkmRepository) Approve(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UMKMModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      string(entity.UMKMStatusApproved),
			"approved_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to approve umkm")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUMKMNotFound
	}

	return nil
}

// Delete removes a store. Catalog items are deleted first by the caller.
func (repo *umkmRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.UMKMModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete umkm")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUMKMNotFound
	}

	return nil
}

// catalogItemRepository implements the domain.CatalogItemRepository interface using GORM.
type catalogItemRepository struct {
	db *gorm.DB
}

// NewCatalogItemRepository is the constructor for catalogItemRepository.
func NewCatalogItemRepository(db *gorm.DB) repository.CatalogItemRepository {
	return &catalogItemRepository{db: db}
}

// ListByUMKM retrieves all catalog items of a store.
func (repo *catalogItemRepository) ListByUMKM(ctx context.Context, umkmID uint) ([]entity.CatalogItem, error) {
	var rows []model.CatalogItemModel
	err := repo.db.WithContext(ctx).
		Where("umkm_id = ?", umkmID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog items")
	}

	items := make([]entity.CatalogItem, 0, len(rows))
	for i := range rows {
		items = append(items, *rows[i].ToEntity())
	}

	return items, nil
}

// FindByID retrieves a catalog item regardless of owner.
func (repo *catalogItemRepository) FindByID(ctx context.Context, id uint) (*entity.CatalogItem, error) {
	var row model.CatalogItemModel
	if err := repo.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find catalog item")
	}

	return row.ToEntity(), nil
}

// FindByIDAndUMKM retrieves the item only when it belongs to the store.
func (repo *catalogItemRepository) FindByIDAndUMKM(ctx context.Context, id, umkmID uint) (*entity.CatalogItem, error) {
	var row model.CatalogItemModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND umkm_id = ?", id, umkmID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find catalog item")
	}

	return row.ToEntity(), nil
}

// Create persists a new catalog item.
func (repo *catalogItemRepository) Create(ctx context.Context, item *entity.CatalogItem) error {
	row := model.CatalogItemModelFromEntity(item)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUMKMNotFound.WrapMessage("umkm does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create catalog item")
	}

	item.ID = row.ID
	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt

	return nil
}

// Update modifies an existing catalog item.
func (repo *catalogItemRepository) Update(ctx context.Context, item *entity.CatalogItem) error {
	row := model.CatalogItemModelFromEntity(item)

	if err := repo.db.WithContext(ctx).Save(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update catalog item")
	}

	item.UpdatedAt = row.UpdatedAt

	return nil
}

// DeleteByIDAndUMKM removes the item only when the (id, umkm) pair matches exactly.
func (repo *catalogItemRepository) DeleteByIDAndUMKM(ctx context.Context, id, umkmID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND umkm_id = ?", id, umkmID).
		Delete(&model.CatalogItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete catalog item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCatalogItemNotFound
	}

	return nil
}

// DeleteByUMKM removes every catalog item of a store.
func (repo *catalogItemRepository) DeleteByUMKM(ctx context.Context, umkmID uint) error {
	err := repo.db.WithContext(ctx).
		Where("umkm_id = ?", umkmID).
		Delete(&model.CatalogItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete catalog items")
	}

	return nil
}
