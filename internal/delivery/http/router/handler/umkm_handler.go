package handler

import (
	"log/slog"

	"bizconnect/internal/delivery/http/response"
	"bizconnect/internal/domain/entity"
	"bizconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UMKMHandler serves the public store directory and the admin management
// surface, including the per-store product and service catalog.
type UMKMHandler struct {
	uc     usecase.UMKMUsecase
	logger *slog.Logger
}

// NewUMKMHandler is the constructor for UMKMHandler, injected by Fx.
func NewUMKMHandler(uc usecase.UMKMUsecase, logger *slog.Logger) *UMKMHandler {
	return &UMKMHandler{uc: uc, logger: logger}
}

type createUMKMRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Owner       string `json:"owner" validate:"required,max=100"`
	Faculty     string `json:"faculty"`
	Semester    string `json:"semester"`
	PriceRange  string `json:"priceRange"`
	Price       string `json:"price"`
	Contact     string `json:"contact" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Hours       string `json:"hours"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Delivery    bool   `json:"delivery"`
	Pickup      bool   `json:"pickup"`
	Status      string `json:"status" validate:"omitempty,oneof=pending approved"`
}

type updateUMKMRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=150"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Owner       *string `json:"owner" validate:"omitempty,max=100"`
	Faculty     *string `json:"faculty"`
	Semester    *string `json:"semester"`
	PriceRange  *string `json:"priceRange"`
	Price       *string `json:"price"`
	Contact     *string `json:"contact"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Hours       *string `json:"hours"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`
	Delivery    *bool   `json:"delivery"`
	Pickup      *bool   `json:"pickup"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending approved"`
}

type catalogItemRequest struct {
	Kind        string  `json:"type" validate:"required,oneof=product service"`
	Name        string  `json:"name" validate:"required,max=150"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gt=0"`
	Image       string  `json:"image"`
	Stock       *int    `json:"stock"`
	Duration    string  `json:"duration"`
}

type updateCatalogItemRequest struct {
	Kind        *string  `json:"type" validate:"omitempty,oneof=product service"`
	Name        *string  `json:"name" validate:"omitempty,max=150"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
	Duration    *string  `json:"duration"`
}

// List returns the public directory: approved stores only, newest first,
// with products and services attached. Supports ?category= and ?q=.
func (h *UMKMHandler) List(c echo.Context) error {
	stores, err := h.uc.ListApproved(c.Request().Context(), &usecase.ListUMKMInput{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stores, "Daftar UMKM")
}

// ListAll returns every store regardless of status, for the admin panel.
func (h *UMKMHandler) ListAll(c echo.Context) error {
	stores, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stores, "Daftar UMKM")
}

// Get returns a single store with its catalog.
func (h *UMKMHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.GetUMKM(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, store, "UMKM ditemukan")
}

// Create registers a store entry. Status defaults to pending review.
func (h *UMKMHandler) Create(c echo.Context) error {
	var req createUMKMRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.CreateUMKM(c.Request().Context(), &usecase.CreateUMKMInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Owner:       req.Owner,
		Faculty:     req.Faculty,
		Semester:    req.Semester,
		PriceRange:  req.PriceRange,
		Price:       req.Price,
		Contact:     req.Contact,
		Email:       req.Email,
		Hours:       req.Hours,
		Location:    req.Location,
		Image:       req.Image,
		Delivery:    req.Delivery,
		Pickup:      req.Pickup,
		Status:      entity.UMKMStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, store, "UMKM berhasil dibuat")
}

// Update modifies a store entry; absent fields keep their stored values.
func (h *UMKMHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateUMKMRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateUMKMInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Owner:       req.Owner,
		Faculty:     req.Faculty,
		Semester:    req.Semester,
		PriceRange:  req.PriceRange,
		Price:       req.Price,
		Contact:     req.Contact,
		Email:       req.Email,
		Hours:       req.Hours,
		Location:    req.Location,
		Image:       req.Image,
		Delivery:    req.Delivery,
		Pickup:      req.Pickup,
	}
	if req.Status != nil {
		status := entity.UMKMStatus(*req.Status)
		input.Status = &status
	}

	store, err := h.uc.UpdateUMKM(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, store, "UMKM berhasil diperbarui")
}

// Delete removes a store together with its catalog.
func (h *UMKMHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteUMKM(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "UMKM berhasil dihapus")
}

// Approve publishes a pending store to the public directory.
func (h *UMKMHandler) Approve(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.ApproveUMKM(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, store, "UMKM berhasil disetujui")
}

// AddCatalogItem attaches a product or service to a store.
func (h *UMKMHandler) AddCatalogItem(c echo.Context) error {
	umkmID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req catalogItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.AddCatalogItem(c.Request().Context(), umkmID, &usecase.CatalogItemInput{
		Kind:        entity.CatalogKind(req.Kind),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
		Duration:    req.Duration,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, item, "Item katalog berhasil ditambahkan")
}

// UpdateCatalogItem modifies a catalog entry of a store.
func (h *UMKMHandler) UpdateCatalogItem(c echo.Context) error {
	umkmID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}
	itemID, err := pathID(c, "pid")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateCatalogItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateCatalogItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
		Duration:    req.Duration,
	}
	if req.Kind != nil {
		kind := entity.CatalogKind(*req.Kind)
		input.Kind = &kind
	}

	item, err := h.uc.UpdateCatalogItem(c.Request().Context(), umkmID, itemID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, item, "Item katalog berhasil diperbarui")
}

// DeleteCatalogItem removes a catalog entry; the (item, store) pair must
// match exactly.
func (h *UMKMHandler) DeleteCatalogItem(c echo.Context) error {
	umkmID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}
	itemID, err := pathID(c, "pid")
	if err != nil {
		return errors.WithStack(err)
	}

	var kind *entity.CatalogKind
	if raw := c.QueryParam("type"); raw != "" {
		k := entity.CatalogKind(raw)
		kind = &k
	}

	if err := h.uc.DeleteCatalogItem(c.Request().Context(), umkmID, itemID, kind); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Item katalog berhasil dihapus")
}
