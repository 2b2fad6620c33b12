package handler

import (
	"log/slog"
	"net/http"

	"bizconnect/internal/delivery/http/response"
	"bizconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminStatsHandler serves the admin dashboard counters and report exports.
type AdminStatsHandler struct {
	uc     usecase.AdminStatsUsecase
	logger *slog.Logger
}

// NewAdminStatsHandler is the constructor for AdminStatsHandler, injected by Fx.
func NewAdminStatsHandler(uc usecase.AdminStatsUsecase, logger *slog.Logger) *AdminStatsHandler {
	return &AdminStatsHandler{uc: uc, logger: logger}
}

// Stats returns the dashboard counters.
func (h *AdminStatsHandler) Stats(c echo.Context) error {
	stats, err := h.uc.GetDashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stats, "Statistik dashboard")
}

// TransactionsReport streams every transaction as an xlsx workbook.
func (h *AdminStatsHandler) TransactionsReport(c echo.Context) error {
	workbook, err := h.uc.ExportTransactionsReport(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="transactions.xlsx"`)

	return c.Blob(http.StatusOK, xlsxContentType, workbook)
}
