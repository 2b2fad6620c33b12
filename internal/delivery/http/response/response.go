// Package response renders the unified API envelope for handlers.
package response

import (
	"net/http"

	domainerrors "bizconnect/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// OK 200 response with payload
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Created 201 response with payload
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Berhasil"
	}

	return c.JSON(statusCode, domainerrors.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Message success response without payload
func Message(c echo.Context, message string) error {
	return Success(c, http.StatusOK, nil, message)
}
