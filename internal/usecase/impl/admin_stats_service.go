// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizconnect/internal/delivery/context"
	"bizconnect/internal/domain/entity"
	"bizconnect/internal/domain/repository"
	"bizconnect/internal/domain/service"
	"bizconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminStatsService implements the AdminStatsUsecase interface.
type adminStatsService struct {
	userRepo        repository.UserRepository
	newsRepo        repository.NewsRepository
	umkmRepo        repository.UMKMRepository
	transactionRepo repository.TransactionRepository
	reportService   service.ReportService
	logger          *slog.Logger
}

// AdminStatsServiceParams holds dependencies for adminStatsService, injected by Fx.
type AdminStatsServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	NewsRepo        repository.NewsRepository
	UMKMRepo        repository.UMKMRepository
	TransactionRepo repository.TransactionRepository
	ReportService   service.ReportService
	Logger          *slog.Logger
}

// NewAdminStatsService is the constructor for adminStatsService.
func NewAdminStatsService(params AdminStatsServiceParams) usecase.AdminStatsUsecase {
	return &adminStatsService{
		userRepo:        params.UserRepo,
		newsRepo:        params.NewsRepo,
		umkmRepo:        params.UMKMRepo,
		transactionRepo: params.TransactionRepo,
		reportService:   params.ReportService,
		logger:          params.Logger,
	}
}

func (srv *adminStatsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDashboardStats computes the dashboard counters server-side.
func (srv *adminStatsService) GetDashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalNews, err := srv.newsRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count news articles")
	}

	totalUMKM, err := srv.umkmRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count umkm")
	}

	pending, err := srv.umkmRepo.CountByStatus(ctx, entity.UMKMStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending umkm")
	}

	return &usecase.DashboardStats{
		TotalUsers:       totalUsers,
		TotalNews:        totalNews,
		TotalUMKM:        totalUMKM,
		PendingApprovals: pending,
	}, nil
}

// ExportTransactionsReport renders every order into an xlsx workbook.
func (srv *adminStatsService) ExportTransactionsReport(ctx context.Context) ([]byte, error) {
	srv.log(ctx).Info("Exporting transactions report")

	transactions, err := srv.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions for report")
	}

	workbook, err := srv.reportService.TransactionsWorkbook(transactions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render transactions workbook")
	}

	return workbook, nil
}
