package handler

import (
	"log/slog"

	"bizconnect/internal/delivery/http/response"
	"bizconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, logger: logger}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// Submit accepts a contact form submission. Mail delivery is best effort;
// the endpoint succeeds even when the SMTP transport is down.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SubmitContact(c.Request().Context(), &usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Pesan berhasil dikirim")
}
