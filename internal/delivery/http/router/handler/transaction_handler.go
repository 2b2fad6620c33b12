package handler

import (
	"log/slog"

	"bizconnect/internal/delivery/http/response"
	"bizconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TransactionHandler records orders and serves the caller's history.
type TransactionHandler struct {
	uc     usecase.TransactionUsecase
	logger *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.TransactionUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{uc: uc, logger: logger}
}

type transactionItemRequest struct {
	ItemID   uint    `json:"itemId" validate:"required"`
	ItemName string  `json:"itemName" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0"`
	Quantity int     `json:"quantity" validate:"gt=0"`
}

type createTransactionRequest struct {
	StoreID       uint                     `json:"storeId" validate:"required"`
	StoreName     string                   `json:"storeName" validate:"required"`
	StoreOwner    string                   `json:"storeOwner"`
	Items         []transactionItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount   *float64                 `json:"totalAmount" validate:"omitempty,gt=0"`
	PaymentMethod string                   `json:"paymentMethod" validate:"required"`
	Customer      *customerInfoRequest     `json:"customerInfo"`
}

// Create records a transaction with its item lines and customer snapshot in
// a single database transaction.
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateTransactionInput{
		StoreID:       req.StoreID,
		StoreName:     req.StoreName,
		StoreOwner:    req.StoreOwner,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.TransactionItemInput{
			ItemID:   item.ItemID,
			ItemName: item.ItemName,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	if req.Customer != nil {
		input.Customer = &usecase.CustomerInfoInput{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
			Notes:   req.Customer.Notes,
		}
	}

	transaction, err := h.uc.CreateTransaction(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, transaction, "Transaksi berhasil dibuat")
}

// ListMine returns the caller's history, newest first.
func (h *TransactionHandler) ListMine(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	transactions, err := h.uc.ListMyTransactions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, transactions, "Riwayat transaksi")
}
