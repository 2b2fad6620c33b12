// Package usecase contains the application-specific business rules.
package usecase

import "context"

// DashboardStats holds the admin dashboard counters.
type DashboardStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalNews        int64 `json:"totalNews"`
	TotalUMKM        int64 `json:"totalUmkm"`
	PendingApprovals int64 `json:"pendingApprovals"`
}

// AdminStatsUsecase defines the interface for admin dashboard reporting.
type AdminStatsUsecase interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)

	// ExportTransactionsReport renders every transaction with its item lines
	// into an xlsx workbook.
	ExportTransactionsReport(ctx context.Context) ([]byte, error)
}
