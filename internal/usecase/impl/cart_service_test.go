package impl

import (
	"context"
	"encoding/base64"
	"testing"

	"bizconnect/config"
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

type cartServiceMocks struct {
	cartRepo    *mockRepo.MockCartRepository
	umkmRepo    *mockRepo.MockUMKMRepository
	catalogRepo *mockRepo.MockCatalogItemRepository
	txRepo      *mockRepo.MockTransactionRepository
	qrService   *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
}

func newCartService(t *testing.T) (usecase.CartUsecase, *cartServiceMocks) {
	m := &cartServiceMocks{
		cartRepo:    mockRepo.NewMockCartRepository(t),
		umkmRepo:    mockRepo.NewMockUMKMRepository(t),
		catalogRepo: mockRepo.NewMockCatalogItemRepository(t),
		txRepo:      mockRepo.NewMockTransactionRepository(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	srv := NewCartService(CartServiceParams{
		TxManager: &fakeTxManager{factory: &fakeRepoFactory{
			transactionRepo: m.txRepo,
			cartRepo:        m.cartRepo,
		}},
		CartRepo:    m.cartRepo,
		UMKMRepo:    m.umkmRepo,
		CatalogRepo: m.catalogRepo,
		QRService:   m.qrService,
		Publisher:   m.publisher,
		Config: &config.Config{
			Checkout: &config.CheckoutConfig{FallbackPhone: "6281234567890"},
		},
		Logger: newDiscardLogger(),
	})

	return srv, m
}

func approvedStore(id uint, name string) *entity.UMKM {
	return &entity.UMKM{ID: id, Name: name, Owner: "Budi", Contact: "0812-3456-789", Status: entity.UMKMStatusApproved}
}

func TestCartService_AddItem_SnapshotsFromCatalog(t *testing.T) {
	srv, m := newCartService(t)
	ctx := context.Background()

	m.umkmRepo.On("FindByID", ctx, uint(3)).Return(approvedStore(3, "Kopi Sudut"), nil)
	m.catalogRepo.On("FindByIDAndUMKM", ctx, uint(10), uint(3)).Return(&entity.CatalogItem{
		ID: 10, UMKMID: 3, Kind: entity.CatalogKindProduct, Name: "Kopi Susu", Price: 10000,
	}, nil)
	m.cartRepo.On("Load", ctx, uint(7)).Return(&entity.Cart{UserID: 7}, nil)
	m.cartRepo.On("Save", ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := srv.AddItem(ctx, 7, &usecase.AddCartItemInput{StoreID: 3, ItemID: 10, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Stores, 1)
	assert.Equal(t, "Kopi Sudut", cart.Stores[0].StoreName)
	require.Len(t, cart.Stores[0].Items, 1)
	// Price comes from the catalog row, never from the client.
	assert.Equal(t, float64(10000), cart.Stores[0].Items[0].Price)
	assert.Equal(t, 2, cart.Stores[0].Items[0].Quantity)
}

func TestCartService_AddItem_PendingStoreRejected(t *testing.T) {
	srv, m := newCartService(t)
	ctx := context.Background()

	pending := &entity.UMKM{ID: 3, Status: entity.UMKMStatusPending}
	m.umkmRepo.On("FindByID", ctx, uint(3)).Return(pending, nil)

	_, err := srv.AddItem(ctx, 7, &usecase.AddCartItemInput{StoreID: 3, ItemID: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUMKMNotFound))
}

func TestCartService_AddItem_UnknownItem(t *testing.T) {
	srv, m := newCartService(t)
	ctx := context.Background()

	m.umkmRepo.On("FindByID", ctx, uint(3)).Return(approvedStore(3, "Kopi Sudut"), nil)
	m.catalogRepo.On("FindByIDAndUMKM", ctx, uint(99), uint(3)).Return(nil, repository.ErrCatalogItemNotFound)

	_, err := srv.AddItem(ctx, 7, &usecase.AddCartItemInput{StoreID: 3, ItemID: 99})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_UpdateItem_UnknownLine(t *testing.T) {
	srv, m := newCartService(t)
	ctx := context.Background()

	m.cartRepo.On("Load", ctx, uint(7)).Return(&entity.Cart{UserID: 7}, nil)

	_, err := srv.UpdateItem(ctx, 7, &usecase.UpdateCartItemInput{StoreID: 3, ItemID: 10, Quantity: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func cartWithStores(stores ...entity.CartStore) *entity.Cart {
	return &entity.Cart{UserID: 7, Stores: stores}
}

func checkoutCustomer() *usecase.CustomerInfoInput {
	return &usecase.CustomerInfoInput{
		Name:    "Sari",
		Email:   "sari@student.ac.id",
		Phone:   "081234567890",
		Address: "Jl. Ganesha No. 10, Bandung",
	}
}

func TestCartService_Checkout_MixedStoresBlocked(t *testing.T) {
	srv, m := newCartService(t)
	ctx := context.Background()

	cart := cartWithStores(
		entity.CartStore{StoreID: 3, StoreName: "Kopi Sudut", Items: []entity.CartItem{{CatalogItemID: 10, Quantity: 1, Price: 10000}}},
		entity.CartStore{StoreID: 4, StoreName: "Jahit Cepat", Items: []entity.CartItem{{CatalogItemID: 20, Quantity: 1, Price: 15000}}},
	)
	m.cartRepo.On("Load", ctx, uint(7)).Return(cart, nil)

	_, err := srv.Checkout(ctx, 7, &usecase.CheckoutInput{StoreID: 3, PaymentMethod: "cash", Customer: checkoutCustomer()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartMixedStores))
	m.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCartService_Checkout_EmptyCartBlocked(t *testing.T) {
	srv, m := newCartService(t)
	ctx := context.Background()

	m.cartRepo.On("Load", ctx, uint(7)).Return(&entity.Cart{UserID: 7}, nil)

	_, err := srv.Checkout(ctx, 7, &usecase.CheckoutInput{StoreID: 3, Customer: checkoutCustomer()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCartService_Checkout_Success(t *testing.T) {
	srv, m := newCartService(t)
	ctx := context.Background()

	cart := cartWithStores(entity.CartStore{
		StoreID:    3,
		StoreName:  "Kopi Sudut",
		StoreOwner: "Budi",
		Items: []entity.CartItem{
			{CatalogItemID: 10, Name: "Kopi Susu", Price: 10000, Quantity: 2},
			{CatalogItemID: 11, Name: "Roti Bakar", Price: 5000, Quantity: 1},
		},
	})
	m.cartRepo.On("Load", ctx, uint(7)).Return(cart, nil)

	m.txRepo.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Transaction).ID = 42
	}).Return(nil)
	m.txRepo.On("CreateItems", ctx, mock.Anything).Return(nil)
	var savedCustomer *entity.TransactionCustomer
	m.txRepo.On("CreateCustomer", ctx, mock.AnythingOfType("*entity.TransactionCustomer")).Run(func(args mock.Arguments) {
		savedCustomer = args.Get(1).(*entity.TransactionCustomer)
	}).Return(nil)
	m.cartRepo.On("ClearStore", ctx, uint(7), uint(3)).Return(nil)

	m.publisher.On("PublishTransactionEvent", ctx, mock.AnythingOfType("*service.TransactionEvent")).Return(nil)
	m.umkmRepo.On("FindByID", ctx, uint(3)).Return(approvedStore(3, "Kopi Sudut"), nil)
	m.qrService.On("GenerateOrderQR", mock.AnythingOfType("string")).Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	output, err := srv.Checkout(ctx, 7, &usecase.CheckoutInput{
		StoreID:       3,
		PaymentMethod: "cash",
		Customer:      checkoutCustomer(),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(25000), output.Transaction.TotalAmount)
	require.NotNil(t, savedCustomer)
	assert.Equal(t, "Sari", savedCustomer.Name)
	assert.Equal(t, "sari@student.ac.id", savedCustomer.Email)
	assert.Equal(t, "Jl. Ganesha No. 10, Bandung", savedCustomer.Address)
	// The contact "0812-3456-789" normalizes to country code form.
	assert.Contains(t, output.WhatsAppLink, "https://wa.me/628123456789")
	decoded, decodeErr := base64.StdEncoding.DecodeString(output.QRCodePNG)
	require.NoError(t, decodeErr)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, decoded)
}

func TestCartService_Checkout_PersistFailureKeepsCart(t *testing.T) {
	srv, m := newCartService(t)
	ctx := context.Background()

	cart := cartWithStores(entity.CartStore{
		StoreID:   3,
		StoreName: "Kopi Sudut",
		Items:     []entity.CartItem{{CatalogItemID: 10, Name: "Kopi Susu", Price: 10000, Quantity: 1}},
	})
	m.cartRepo.On("Load", ctx, uint(7)).Return(cart, nil)
	m.txRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := srv.Checkout(ctx, 7, &usecase.CheckoutInput{StoreID: 3, PaymentMethod: "cash", Customer: checkoutCustomer()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
	m.cartRepo.AssertNotCalled(t, "ClearStore", mock.Anything, mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "PublishTransactionEvent", mock.Anything, mock.Anything)
}

func TestCartService_Checkout_MissingCustomerRejected(t *testing.T) {
	srv, m := newCartService(t)
	ctx := context.Background()

	_, err := srv.Checkout(ctx, 7, &usecase.CheckoutInput{StoreID: 3, PaymentMethod: "cash"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	m.cartRepo.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	m.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCartService_Checkout_IncompleteCustomerRejected(t *testing.T) {
	srv, m := newCartService(t)
	ctx := context.Background()

	customer := checkoutCustomer()
	customer.Email = ""

	_, err := srv.Checkout(ctx, 7, &usecase.CheckoutInput{StoreID: 3, PaymentMethod: "cash", Customer: customer})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	m.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
