package service

import (
	"bizconnect/internal/domain/entity"
)

// ReportService defines the interface for building admin export files.
type ReportService interface {
	// TransactionsWorkbook renders all orders with their line items as an
	// xlsx workbook and returns the file bytes.
	TransactionsWorkbook(transactions []entity.Transaction) ([]byte, error)
}
