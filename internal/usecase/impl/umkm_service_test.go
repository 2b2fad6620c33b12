package impl

import (
	"context"
	"testing"

	"bizconnect/internal/domain/entity"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/domain/repository"
	mockRepo "bizconnect/internal/mocks/repository"
	mockSvc "bizconnect/internal/mocks/service"
	"bizconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUMKMService(t *testing.T) (usecase.UMKMUsecase, *mockRepo.MockUMKMRepository, *mockRepo.MockCatalogItemRepository, *mockSvc.MockListingCache) {
	umkmRepo := mockRepo.NewMockUMKMRepository(t)
	catalogRepo := mockRepo.NewMockCatalogItemRepository(t)
	listingCache := mockSvc.NewMockListingCache(t)

	srv := NewUMKMService(UMKMServiceParams{
		UMKMRepo:     umkmRepo,
		CatalogRepo:  catalogRepo,
		ListingCache: listingCache,
		Logger:       newDiscardLogger(),
	})

	return srv, umkmRepo, catalogRepo, listingCache
}

func TestUMKMService_ListApproved_CacheMissHitsDatabase(t *testing.T) {
	srv, umkmRepo, _, listingCache := newUMKMService(t)
	ctx := context.Background()

	approved := []entity.UMKM{
		{ID: 1, Name: "Kopi Sudut", Status: entity.UMKMStatusApproved},
		{ID: 2, Name: "Jahit Cepat", Status: entity.UMKMStatusApproved},
	}

	listingCache.On("GetApprovedUMKM", ctx).Return(nil, false)
	umkmRepo.On("ListApproved", ctx).Return(approved, nil)
	listingCache.On("SetApprovedUMKM", ctx, approved).Return()

	listing, err := srv.ListApproved(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listing, 2)
	for _, store := range listing {
		assert.Equal(t, entity.UMKMStatusApproved, store.Status)
	}
}

func TestUMKMService_ListApproved_CacheHitSkipsDatabase(t *testing.T) {
	srv, umkmRepo, _, listingCache := newUMKMService(t)
	ctx := context.Background()

	cached := []entity.UMKM{{ID: 1, Name: "Kopi Sudut", Status: entity.UMKMStatusApproved}}
	listingCache.On("GetApprovedUMKM", ctx).Return(cached, true)

	listing, err := srv.ListApproved(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, listing, 1)
	umkmRepo.AssertNotCalled(t, "ListApproved", mock.Anything)
}

func TestUMKMService_ListApproved_CategoryAndQueryFilter(t *testing.T) {
	srv, _, _, listingCache := newUMKMService(t)
	ctx := context.Background()

	cached := []entity.UMKM{
		{ID: 1, Name: "Kopi Sudut", Category: "Makanan & Minuman", Status: entity.UMKMStatusApproved},
		{ID: 2, Name: "Jahit Cepat", Category: "Jasa", Status: entity.UMKMStatusApproved},
	}
	listingCache.On("GetApprovedUMKM", ctx).Return(cached, true)

	listing, err := srv.ListApproved(ctx, &usecase.ListUMKMInput{Category: "makanan-&-minuman", Query: "kopi"})
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, uint(1), listing[0].ID)
	assert.Contains(t, listing[0].Name, "<mark>Kopi</mark>")
}

func TestUMKMService_ApproveUMKM_InvalidatesListing(t *testing.T) {
	srv, umkmRepo, _, listingCache := newUMKMService(t)
	ctx := context.Background()

	umkmRepo.On("Approve", ctx, uint(5)).Return(nil)
	listingCache.On("InvalidateApprovedUMKM", ctx).Return()
	umkmRepo.On("FindByID", ctx, uint(5)).Return(&entity.UMKM{ID: 5, Status: entity.UMKMStatusApproved}, nil)

	store, err := srv.ApproveUMKM(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, entity.UMKMStatusApproved, store.Status)
}

func TestUMKMService_ApproveUMKM_NotFound(t *testing.T) {
	srv, umkmRepo, _, _ := newUMKMService(t)
	ctx := context.Background()

	umkmRepo.On("Approve", ctx, uint(99)).Return(repository.ErrUMKMNotFound)

	_, err := srv.ApproveUMKM(ctx, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUMKMNotFound))
}

func TestUMKMService_DeleteUMKM_CascadesCatalogFirst(t *testing.T) {
	srv, umkmRepo, catalogRepo, listingCache := newUMKMService(t)
	ctx := context.Background()

	umkmRepo.On("FindByID", ctx, uint(4)).Return(&entity.UMKM{ID: 4}, nil)
	catalogRepo.On("DeleteByUMKM", ctx, uint(4)).Return(nil)
	umkmRepo.On("Delete", ctx, uint(4)).Return(nil)
	listingCache.On("InvalidateApprovedUMKM", ctx).Return()

	require.NoError(t, srv.DeleteUMKM(ctx, 4))
}

func TestUMKMService_DeleteCatalogItem_ExactPairMatch(t *testing.T) {
	srv, _, catalogRepo, listingCache := newUMKMService(t)
	ctx := context.Background()

	catalogRepo.On("DeleteByIDAndUMKM", ctx, uint(10), uint(4)).Return(nil)
	listingCache.On("InvalidateApprovedUMKM", ctx).Return()

	require.NoError(t, srv.DeleteCatalogItem(ctx, 4, 10, nil))
}

func TestUMKMService_DeleteCatalogItem_WrongStoreIs404(t *testing.T) {
	srv, _, catalogRepo, _ := newUMKMService(t)
	ctx := context.Background()

	// Item 10 exists but belongs to another store; the exact-pair delete
	// must not touch it.
	catalogRepo.On("DeleteByIDAndUMKM", ctx, uint(10), uint(5)).Return(repository.ErrCatalogItemNotFound)

	err := srv.DeleteCatalogItem(ctx, 5, 10, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestUMKMService_DeleteCatalogItem_ServiceKindMessage(t *testing.T) {
	srv, _, catalogRepo, _ := newUMKMService(t)
	ctx := context.Background()

	kind := entity.CatalogKindService
	catalogRepo.On("DeleteByIDAndUMKM", ctx, uint(10), uint(5)).Return(repository.ErrCatalogItemNotFound)

	err := srv.DeleteCatalogItem(ctx, 5, 10, &kind)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}

func TestUMKMService_AddCatalogItem_InvalidKind(t *testing.T) {
	srv, _, _, _ := newUMKMService(t)

	_, err := srv.AddCatalogItem(context.Background(), 4, &usecase.CatalogItemInput{Kind: "bundle", Name: "Paket"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUMKMService_CreateUMKM_DefaultsToPending(t *testing.T) {
	srv, umkmRepo, _, listingCache := newUMKMService(t)
	ctx := context.Background()

	umkmRepo.On("Create", ctx, mock.AnythingOfType("*entity.UMKM")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.UMKM).ID = 8
	}).Return(nil)
	listingCache.On("InvalidateApprovedUMKM", ctx).Return()

	store, err := srv.CreateUMKM(ctx, &usecase.CreateUMKMInput{Name: "Kopi Sudut", Owner: "Budi"})
	require.NoError(t, err)
	assert.Equal(t, entity.UMKMStatusPending, store.Status)
	assert.Equal(t, uint(8), store.ID)
}
