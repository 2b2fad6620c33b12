// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	deliverycontext "bizconnect/internal/delivery/context"
	domainerrors "bizconnect/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the JSON body into dst and runs struct validation.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Format permintaan tidak valid")
	}

	return c.Validate(dst)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("Parameter " + name + " harus berupa angka")
	}

	return uint(id), nil
}

// callerID reads the authenticated user ID set by the auth middleware.
func callerID(c echo.Context) (uint, error) {
	id, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, domainerrors.ErrTokenInvalid
	}

	return id, nil
}
