// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"bizconnect/config"
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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager     repository.TransactionManager
	cartRepo      repository.CartRepository
	umkmRepo      repository.UMKMRepository
	catalogRepo   repository.CatalogItemRepository
	qrService     service.QRCodeService
	publisher     service.EventPublisher
	fallbackPhone string
	logger        *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	UMKMRepo    repository.UMKMRepository
	CatalogRepo repository.CatalogItemRepository
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	fallbackPhone := ""
	if params.Config != nil && params.Config.Checkout != nil {
		fallbackPhone = params.Config.Checkout.FallbackPhone
	}

	return &cartService{
		txManager:     params.TxManager,
		cartRepo:      params.CartRepo,
		umkmRepo:      params.UMKMRepo,
		catalogRepo:   params.CatalogRepo,
		qrService:     params.QRService,
		publisher:     params.Publisher,
		fallbackPhone: fallbackPhone,
		logger:        params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the caller's cart. A user without lines gets an empty cart.
func (srv *cartService) GetCart(ctx context.Context, userID uint) (*entity.Cart, error) {
	cart, err := srv.cartRepo.Load(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// AddItem puts a catalog item into the cart. The store and item snapshots
// are read from the directory so a tampered payload can never fake prices.
func (srv *cartService) AddItem(ctx context.Context, userID uint, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	srv.log(ctx).Debug("Adding cart item", slog.Any("userID", userID), slog.Any("itemID", input.ItemID))

	store, err := srv.umkmRepo.FindByID(ctx, input.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrUMKMNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUMKMNotFound, "store not found")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}
	if store.Status != entity.UMKMStatusApproved {
		return nil, errors.Wrap(domainerrors.ErrUMKMNotFound, "store not approved")
	}

	item, err := srv.catalogRepo.FindByIDAndUMKM(ctx, input.ItemID, input.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "catalog item not found")
		}

		return nil, errors.Wrap(err, "failed to find catalog item")
	}

	cart, err := srv.cartRepo.Load(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.AddItem(
		entity.CartStore{
			StoreID:    store.ID,
			StoreName:  store.Name,
			StoreOwner: store.Owner,
			StoreImage: store.Image,
		},
		entity.CartItem{
			CatalogItemID: item.ID,
			Name:          item.Name,
			Description:   item.Description,
			Price:         item.Price,
			Image:         item.Image,
			Quantity:      input.Quantity,
		},
	)

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		srv.log(ctx).Error("Failed to save cart", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// UpdateItem sets the quantity of a cart line. Zero or less removes it.
func (srv *cartService) UpdateItem(ctx context.Context, userID uint, input *usecase.UpdateCartItemInput) (*entity.Cart, error) {
	cart, err := srv.cartRepo.Load(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if !cart.UpdateQuantity(input.StoreID, input.ItemID, input.Quantity) {
		return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart line not found")
	}

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// RemoveItem drops a cart line. An emptied store group goes with it.
func (srv *cartService) RemoveItem(ctx context.Context, userID uint, storeID, itemID uint) (*entity.Cart, error) {
	cart, err := srv.cartRepo.Load(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if !cart.RemoveItem(storeID, itemID) {
		return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart line not found")
	}

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// Checkout converts the requested store group into an order. The cart must
// hold lines from exactly one store; the order rows and the cart clear
// commit together. The response carries the WhatsApp deep link to the store
// owner and a QR code of that link.
func (srv *cartService) Checkout(ctx context.Context, userID uint, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("userID", userID), slog.Any("storeID", input.StoreID))

	if err := validateCustomerInfo(input.Customer); err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.Load(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if cart.IsEmpty() {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "checkout rejected")
	}
	if !cart.SingleStore() {
		srv.log(ctx).Warn("Checkout rejected, mixed stores", slog.Any("userID", userID), slog.Int("storeGroups", len(cart.Stores)))

		return nil, errors.Wrap(domainerrors.ErrCartMixedStores, "checkout rejected")
	}

	group := cart.Store(input.StoreID)
	if group == nil {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "no lines for the requested store")
	}

	order := buildOrderFromGroup(userID, group, input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txRepo := repoFactory.NewTransactionRepository()
		cartRepo := repoFactory.NewCartRepository()

		if err := persistTransaction(ctx, txRepo, order); err != nil {
			return err
		}

		return cartRepo.ClearStore(ctx, userID, input.StoreID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute checkout transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTransactionFailed, "failed to execute checkout transaction")
	}

	srv.publishCheckoutEvent(ctx, order)

	link := srv.buildWhatsAppLink(ctx, order)

	output := &usecase.CheckoutOutput{
		Transaction:  order,
		WhatsAppLink: link,
	}

	// Handoff artifacts are best effort; the order is already committed.
	qrPNG, err := srv.qrService.GenerateOrderQR(link)
	if err != nil {
		srv.log(ctx).Warn("Failed to render order QR", slog.Any("transactionID", order.ID), slog.Any("error", err))
	} else {
		output.QRCodePNG = base64.StdEncoding.EncodeToString(qrPNG)
	}

	srv.log(ctx).Debug("Checkout completed", slog.Any("transactionID", order.ID), slog.Float64("totalAmount", order.TotalAmount))

	return output, nil
}

func buildOrderFromGroup(userID uint, group *entity.CartStore, input *usecase.CheckoutInput) *entity.Transaction {
	order := &entity.Transaction{
		UserID:        userID,
		StoreID:       group.StoreID,
		StoreName:     group.StoreName,
		StoreOwner:    group.StoreOwner,
		PaymentMethod: input.PaymentMethod,
		Status:        entity.TransactionStatusPending,
	}

	for _, line := range group.Items {
		order.Items = append(order.Items, entity.TransactionItem{
			ItemID:   line.CatalogItemID,
			ItemName: line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}
	order.TotalAmount = order.ComputeTotal()

	order.Customer = &entity.TransactionCustomer{
		Name:    input.Customer.Name,
		Email:   input.Customer.Email,
		Phone:   input.Customer.Phone,
		Address: input.Customer.Address,
		Notes:   input.Customer.Notes,
	}

	return order
}

// validateCustomerInfo rejects a checkout without the full contact block.
// The HTTP layer validates the same fields; this guards direct callers.
func validateCustomerInfo(customer *usecase.CustomerInfoInput) error {
	if customer == nil || customer.Name == "" || customer.Email == "" || customer.Phone == "" || customer.Address == "" {
		return errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("Nama, email, nomor telepon, dan alamat pemesan wajib diisi"),
			"checkout rejected",
		)
	}

	return nil
}

// buildWhatsAppLink extracts the store owner's number from the contact field
// and encodes the order summary as the prefilled message.
func (srv *cartService) buildWhatsAppLink(ctx context.Context, order *entity.Transaction) string {
	contact := ""
	store, err := srv.umkmRepo.FindByID(ctx, order.StoreID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load store contact for checkout link", slog.Any("storeID", order.StoreID), slog.Any("error", err))
	} else {
		contact = store.Contact
	}

	phone := util.ExtractWhatsAppPhone(contact, srv.fallbackPhone)

	return util.WhatsAppLink(phone, buildOrderMessage(order))
}

func buildOrderMessage(order *entity.Transaction) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Halo %s, saya ingin memesan:\n", order.StoreName))
	for _, item := range order.Items {
		sb.WriteString(fmt.Sprintf("- %dx %s (Rp%.0f)\n", item.Quantity, item.ItemName, item.Price))
	}
	sb.WriteString(fmt.Sprintf("Total: Rp%.0f\n", order.TotalAmount))
	sb.WriteString(fmt.Sprintf("Metode pembayaran: %s", order.PaymentMethod))
	if order.Customer != nil && order.Customer.Name != "" {
		sb.WriteString(fmt.Sprintf("\nAtas nama: %s", order.Customer.Name))
	}

	return sb.String()
}

// publishCheckoutEvent emits the transaction-created event. Publish failures
// are logged, never surfaced: the order is already committed.
func (srv *cartService) publishCheckoutEvent(ctx context.Context, order *entity.Transaction) {
	event := &service.TransactionEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		TransactionID: order.ID,
		UserID:        order.UserID,
		StoreID:       order.StoreID,
		StoreName:     order.StoreName,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		ItemCount:     len(order.Items),
	}

	if err := srv.publisher.PublishTransactionEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish transaction event", slog.Any("transactionID", order.ID), slog.Any("error", err))
	}
}
