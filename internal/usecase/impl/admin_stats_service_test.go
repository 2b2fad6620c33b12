package impl

import (
	"context"
	"testing"

	"bizconnect/internal/domain/entity"
	mockRepo "bizconnect/internal/mocks/repository"
	mockSvc "bizconnect/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStatsService_GetDashboardStats(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	newsRepo := mockRepo.NewMockNewsRepository(t)
	umkmRepo := mockRepo.NewMockUMKMRepository(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)
	reportService := mockSvc.NewMockReportService(t)

	srv := NewAdminStatsService(AdminStatsServiceParams{
		UserRepo:        userRepo,
		NewsRepo:        newsRepo,
		UMKMRepo:        umkmRepo,
		TransactionRepo: transactionRepo,
		ReportService:   reportService,
		Logger:          newDiscardLogger(),
	})

	ctx := context.Background()
	userRepo.On("Count", ctx).Return(int64(120), nil)
	newsRepo.On("Count", ctx).Return(int64(34), nil)
	umkmRepo.On("Count", ctx).Return(int64(18), nil)
	umkmRepo.On("CountByStatus", ctx, entity.UMKMStatusPending).Return(int64(3), nil)

	stats, err := srv.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(34), stats.TotalNews)
	assert.Equal(t, int64(18), stats.TotalUMKM)
	assert.Equal(t, int64(3), stats.PendingApprovals)
}

func TestAdminStatsService_ExportTransactionsReport(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	newsRepo := mockRepo.NewMockNewsRepository(t)
	umkmRepo := mockRepo.NewMockUMKMRepository(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)
	reportService := mockSvc.NewMockReportService(t)

	srv := NewAdminStatsService(AdminStatsServiceParams{
		UserRepo:        userRepo,
		NewsRepo:        newsRepo,
		UMKMRepo:        umkmRepo,
		TransactionRepo: transactionRepo,
		ReportService:   reportService,
		Logger:          newDiscardLogger(),
	})

	ctx := context.Background()
	orders := []entity.Transaction{{ID: 1, StoreName: "Kopi Sudut", TotalAmount: 25000}}
	transactionRepo.On("ListAll", ctx).Return(orders, nil)
	reportService.On("TransactionsWorkbook", orders).Return([]byte("PK\x03\x04"), nil)

	workbook, err := srv.ExportTransactionsReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK\x03\x04"), workbook)
}
