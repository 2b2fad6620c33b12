// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizconnect/internal/delivery/context"
	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/repository"
	"bizconnect/internal/domain/service"
	"bizconnect/internal/usecase"
	"bizconnect/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// umkmService implements the UMKMUsecase interface.
type umkmService struct {
	umkmRepo     repository.UMKMRepository
	catalogRepo  repository.CatalogItemRepository
	listingCache service.ListingCache
	logger       *slog.Logger
}

// UMKMServiceParams holds dependencies for umkmService, injected by Fx.
type UMKMServiceParams struct {
	fx.In

	UMKMRepo     repository.UMKMRepository
	CatalogRepo  repository.CatalogItemRepository
	ListingCache service.ListingCache
	Logger       *slog.Logger
}

// NewUMKMService is the constructor for umkmService.
func NewUMKMService(params UMKMServiceParams) usecase.UMKMUsecase {
	return &umkmService{
		umkmRepo:     params.UMKMRepo,
		catalogRepo:  params.CatalogRepo,
		listingCache: params.ListingCache,
		logger:       params.Logger,
	}
}

func (srv *umkmService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListApproved returns the public directory. The unfiltered approved listing
// is served from the cache when warm; category and query narrowing always
// run on the returned copy.
func (srv *umkmService) ListApproved(ctx context.Context, input *usecase.ListUMKMInput) ([]entity.UMKM, error) {
	listing, ok := srv.listingCache.GetApprovedUMKM(ctx)
	if !ok {
		var err error
		listing, err = srv.umkmRepo.ListApproved(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list approved umkm")
		}
		srv.listingCache.SetApprovedUMKM(ctx, listing)
	}

	if input == nil || (input.Category == "" && input.Query == "") {
		return listing, nil
	}

	filtered := make([]entity.UMKM, 0, len(listing))
	for _, store := range listing {
		if input.Category != "" && !util.CategoryMatches(store.Category, input.Category) {
			continue
		}
		if input.Query != "" && !umkmMatchesQuery(&store, input.Query) {
			continue
		}
		if input.Query != "" {
			store.Name = util.HighlightMatches(store.Name, input.Query)
			store.Description = util.HighlightMatches(store.Description, input.Query)
		}
		filtered = append(filtered, store)
	}

	return filtered, nil
}

func umkmMatchesQuery(store *entity.UMKM, query string) bool {
	return util.ContainsFold(store.Name, query) ||
		util.ContainsFold(store.Description, query) ||
		util.ContainsFold(store.Category, query) ||
		util.ContainsFold(store.Owner, query) ||
		util.ContainsFold(store.Location, query)
}

// ListAll returns every store regardless of status, for the admin panel.
func (srv *umkmService) ListAll(ctx context.Context) ([]entity.UMKM, error) {
	stores, err := srv.umkmRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list umkm")
	}

	return stores, nil
}

// GetUMKM retrieves a single store with its catalog.
func (srv *umkmService) GetUMKM(ctx context.Context, id uint) (*entity.UMKM, error) {
	store, err := srv.umkmRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUMKMNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUMKMNotFound, "umkm not found")
		}

		return nil, errors.Wrap(err, "failed to find umkm")
	}

	return store, nil
}

// CreateUMKM registers a store entry. Admin-created entries may land
// approved directly; everything else starts pending.
func (srv *umkmService) CreateUMKM(ctx context.Context, input *usecase.CreateUMKMInput) (*entity.UMKM, error) {
	srv.log(ctx).Info("Creating umkm", slog.String("name", input.Name))

	status := input.Status
	if status == "" {
		status = entity.UMKMStatusPending
	}
	if !status.IsValid() {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("Status tidak dikenal"),
			"invalid umkm status",
		)
	}

	store := &entity.UMKM{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Owner:       input.Owner,
		Faculty:     input.Faculty,
		Semester:    input.Semester,
		PriceRange:  input.PriceRange,
		Price:       input.Price,
		Contact:     input.Contact,
		Email:       input.Email,
		Hours:       input.Hours,
		Location:    input.Location,
		Image:       input.Image,
		Delivery:    input.Delivery,
		Pickup:      input.Pickup,
		Status:      status,
	}

	if err := srv.umkmRepo.Create(ctx, store); err != nil {
		srv.log(ctx).Error("Failed to create umkm", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create umkm")
	}

	srv.listingCache.InvalidateApprovedUMKM(ctx)

	return store, nil
}

// UpdateUMKM applies the non-nil fields to an existing store.
func (srv *umkmService) UpdateUMKM(ctx context.Context, id uint, input *usecase.UpdateUMKMInput) (*entity.UMKM, error) {
	srv.log(ctx).Info("Updating umkm", slog.Any("umkmID", id))

	store, err := srv.umkmRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUMKMNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUMKMNotFound, "umkm not found")
		}

		return nil, errors.Wrap(err, "failed to find umkm")
	}

	applyUMKMUpdate(store, input)

	if input.Status != nil && !input.Status.IsValid() {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("Status tidak dikenal"),
			"invalid umkm status",
		)
	}

	if err := srv.umkmRepo.Update(ctx, store); err != nil {
		srv.log(ctx).Error("Failed to update umkm", slog.Any("umkmID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update umkm")
	}

	srv.listingCache.InvalidateApprovedUMKM(ctx)

	return store, nil
}

func applyUMKMUpdate(store *entity.UMKM, input *usecase.UpdateUMKMInput) {
	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.Category != nil {
		store.Category = *input.Category
	}
	if input.Owner != nil {
		store.Owner = *input.Owner
	}
	if input.Faculty != nil {
		store.Faculty = *input.Faculty
	}
	if input.Semester != nil {
		store.Semester = *input.Semester
	}
	if input.PriceRange != nil {
		store.PriceRange = *input.PriceRange
	}
	if input.Price != nil {
		store.Price = *input.Price
	}
	if input.Contact != nil {
		store.Contact = *input.Contact
	}
	if input.Email != nil {
		store.Email = *input.Email
	}
	if input.Hours != nil {
		store.Hours = *input.Hours
	}
	if input.Location != nil {
		store.Location = *input.Location
	}
	if input.Image != nil {
		store.Image = *input.Image
	}
	if input.Delivery != nil {
		store.Delivery = *input.Delivery
	}
	if input.Pickup != nil {
		store.Pickup = *input.Pickup
	}
	if input.Status != nil {
		store.Status = *input.Status
	}
}

// DeleteUMKM removes a store and its entire catalog. The catalog rows go
// first; the schema has no ON DELETE CASCADE.
func (srv *umkmService) DeleteUMKM(ctx context.Context, id uint) error {
	srv.log(ctx).Info("Deleting umkm", slog.Any("umkmID", id))

	if _, err := srv.umkmRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUMKMNotFound) {
			return errors.Wrap(domainerrors.ErrUMKMNotFound, "umkm not found")
		}

		return errors.Wrap(err, "failed to find umkm")
	}

	if err := srv.catalogRepo.DeleteByUMKM(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete umkm catalog")
	}

	if err := srv.umkmRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete umkm")
	}

	srv.listingCache.InvalidateApprovedUMKM(ctx)

	return nil
}

// ApproveUMKM flips a pending store to approved and stamps the time.
func (srv *umkmService) ApproveUMKM(ctx context.Context, id uint) (*entity.UMKM, error) {
	srv.log(ctx).Info("Approving umkm", slog.Any("umkmID", id))

	if err := srv.umkmRepo.Approve(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUMKMNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUMKMNotFound, "umkm not found")
		}

		return nil, errors.Wrap(err, "failed to approve umkm")
	}

	srv.listingCache.InvalidateApprovedUMKM(ctx)

	store, err := srv.umkmRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload approved umkm")
	}

	return store, nil
}

// AddCatalogItem attaches a product or service to a store.
func (srv *umkmService) AddCatalogItem(ctx context.Context, umkmID uint, input *usecase.CatalogItemInput) (*entity.CatalogItem, error) {
	srv.log(ctx).Info("Adding catalog item", slog.Any("umkmID", umkmID), slog.Any("kind", input.Kind))

	if !input.Kind.IsValid() {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("Tipe item harus product atau service"),
			"invalid catalog kind",
		)
	}

	if _, err := srv.umkmRepo.FindByID(ctx, umkmID); err != nil {
		if errors.Is(err, repository.ErrUMKMNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUMKMNotFound, "umkm not found")
		}

		return nil, errors.Wrap(err, "failed to find umkm")
	}

	item := &entity.CatalogItem{
		UMKMID:      umkmID,
		Kind:        input.Kind,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Stock:       input.Stock,
		Duration:    input.Duration,
	}

	if err := srv.catalogRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to create catalog item", slog.Any("umkmID", umkmID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create catalog item")
	}

	srv.listingCache.InvalidateApprovedUMKM(ctx)

	return item, nil
}

// UpdateCatalogItem applies the non-nil fields to a catalog item. The item
// must belong to the given store; the stored row keeps its kind unless the
// caller sends one.
func (srv *umkmService) UpdateCatalogItem(ctx context.Context, umkmID, itemID uint, input *usecase.UpdateCatalogItemInput) (*entity.CatalogItem, error) {
	srv.log(ctx).Info("Updating catalog item", slog.Any("umkmID", umkmID), slog.Any("itemID", itemID))

	item, err := srv.catalogRepo.FindByIDAndUMKM(ctx, itemID, umkmID)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogItemNotFound) {
			return nil, errors.Wrap(catalogNotFoundError(input.Kind), "catalog item not found")
		}

		return nil, errors.Wrap(err, "failed to find catalog item")
	}

	if input.Kind != nil {
		if !input.Kind.IsValid() {
			return nil, errors.Wrap(
				domainerrors.ErrValidationFailed.WithDetails("Tipe item harus product atau service"),
				"invalid catalog kind",
			)
		}
		item.Kind = *input.Kind
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if input.Stock != nil {
		item.Stock = input.Stock
	}
	if input.Duration != nil {
		item.Duration = *input.Duration
	}

	if err := srv.catalogRepo.Update(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to update catalog item", slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update catalog item")
	}

	srv.listingCache.InvalidateApprovedUMKM(ctx)

	return item, nil
}

// DeleteCatalogItem removes a catalog item. The delete hits the exact
// (itemID, umkmID) pair; an item of another store is never touched.
func (srv *umkmService) DeleteCatalogItem(ctx context.Context, umkmID, itemID uint, kind *entity.CatalogKind) error {
	srv.log(ctx).Info("Deleting catalog item", slog.Any("umkmID", umkmID), slog.Any("itemID", itemID))

	if err := srv.catalogRepo.DeleteByIDAndUMKM(ctx, itemID, umkmID); err != nil {
		if errors.Is(err, repository.ErrCatalogItemNotFound) {
			return errors.Wrap(catalogNotFoundError(kind), "catalog item not found")
		}

		return errors.Wrap(err, "failed to delete catalog item")
	}

	srv.listingCache.InvalidateApprovedUMKM(ctx)

	return nil
}

func catalogNotFoundError(kind *entity.CatalogKind) error {
	if kind != nil && *kind == entity.CatalogKindService {
		return domainerrors.ErrServiceNotFound
	}

	return domainerrors.ErrProductNotFound
}
