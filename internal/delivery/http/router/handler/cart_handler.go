package handler

import (
	"log/slog"

	"bizconnect/internal/delivery/http/response"
	"bizconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the caller's server-side shopping cart.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

type addCartItemRequest struct {
	StoreID  uint `json:"storeId" validate:"required"`
	ItemID   uint `json:"itemId" validate:"required"`
	Quantity int  `json:"quantity"`
}

type updateCartItemRequest struct {
	StoreID  uint `json:"storeId" validate:"required"`
	ItemID   uint `json:"itemId" validate:"required"`
	Quantity int  `json:"quantity"`
}

type customerInfoRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,max=30"`
	Address string `json:"address" validate:"required,max=255"`
	Notes   string `json:"notes"`
}

type checkoutRequest struct {
	StoreID       uint                 `json:"storeId" validate:"required"`
	PaymentMethod string               `json:"paymentMethod" validate:"required"`
	Customer      *customerInfoRequest `json:"customerInfo" validate:"required"`
}

// Get returns the caller's cart grouped by store.
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, cart, "Keranjang")
}

// AddItem puts a catalog item in the cart. The price and name snapshots are
// read from the directory, never from the client.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req addCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.AddItem(c.Request().Context(), userID, &usecase.AddCartItemInput{
		StoreID:  req.StoreID,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, cart, "Item ditambahkan ke keranjang")
}

// UpdateItem sets the quantity of a cart line; zero removes it.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.UpdateItem(c.Request().Context(), userID, &usecase.UpdateCartItemInput{
		StoreID:  req.StoreID,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, cart, "Keranjang diperbarui")
}

// RemoveItem drops a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	storeID, err := pathID(c, "storeId")
	if err != nil {
		return errors.WithStack(err)
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), userID, storeID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, cart, "Item dihapus dari keranjang")
}

// Checkout converts one store group into a transaction and returns the
// WhatsApp handoff link plus its QR code.
func (h *CartHandler) Checkout(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req checkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CheckoutInput{
		StoreID:       req.StoreID,
		PaymentMethod: req.PaymentMethod,
		Customer: &usecase.CustomerInfoInput{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
			Notes:   req.Customer.Notes,
		},
	}

	output, err := h.uc.Checkout(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, map[string]any{
		"transaction":  output.Transaction,
		"whatsappLink": output.WhatsAppLink,
		"qrCode":       output.QRCodePNG,
	}, "Checkout berhasil")
}
