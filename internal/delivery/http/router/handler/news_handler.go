package handler

import (
	"log/slog"
	"time"

	"bizconnect/internal/delivery/http/response"
	domainerrors "bizconnect/internal/domain/errors"
	"bizconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsHandler serves the public news feed and the admin news management
// endpoints.
type NewsHandler struct {
	uc     usecase.NewsUsecase
	logger *slog.Logger
}

// NewNewsHandler is the constructor for NewsHandler, injected by Fx.
func NewNewsHandler(uc usecase.NewsUsecase, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{uc: uc, logger: logger}
}

type createNewsRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Summary  string `json:"summary"`
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author" validate:"required,max=100"`
	Date     string `json:"date"`
	Category string `json:"category" validate:"required"`
	Image    string `json:"image"`
}

type updateNewsRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	Summary  *string `json:"summary"`
	Content  *string `json:"content"`
	Author   *string `json:"author" validate:"omitempty,max=100"`
	Date     *string `json:"date"`
	Category *string `json:"category"`
	Image    *string `json:"image"`
}

// List returns the public feed, date desc, optionally filtered by
// ?category= and ?q=. Matching fragments are wrapped in <mark> tags.
func (h *NewsHandler) List(c echo.Context) error {
	articles, err := h.uc.ListNews(c.Request().Context(), &usecase.ListNewsInput{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, articles, "Daftar berita")
}

// Get returns a single article by id.
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	article, err := h.uc.GetNews(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, article, "Berita ditemukan")
}

// Create publishes an article. The category row is resolved or created from
// the free-text category name.
func (h *NewsHandler) Create(c echo.Context) error {
	var req createNewsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	date, err := parseNewsDate(req.Date)
	if err != nil {
		return errors.WithStack(err)
	}

	article, err := h.uc.CreateNews(c.Request().Context(), &usecase.CreateNewsInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		Author:   req.Author,
		Date:     date,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, article, "Berita berhasil dibuat")
}

// Update modifies an article; absent fields keep their stored values.
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateNewsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateNewsInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		Image:    req.Image,
	}
	if req.Date != nil {
		date, err := parseNewsDate(*req.Date)
		if err != nil {
			return errors.WithStack(err)
		}
		input.Date = &date
	}

	article, err := h.uc.UpdateNews(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, article, "Berita berhasil diperbarui")
}

// Delete removes an article.
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteNews(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Berita berhasil dihapus")
}

// parseNewsDate accepts the date-only form the admin panel sends or a full
// RFC 3339 timestamp. An empty date means "now" and is resolved downstream.
func parseNewsDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if date, err := time.Parse("2006-01-02", raw); err == nil {
		return date, nil
	}
	if date, err := time.Parse(time.RFC3339, raw); err == nil {
		return date, nil
	}

	return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("Format tanggal harus YYYY-MM-DD")
}
