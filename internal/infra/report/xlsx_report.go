// Package report builds admin export files.
package report

import (
	"bytes"

	"bizconnect/internal/domain/entity"
	"bizconnect/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

const timeLayout = "2006-01-02 15:04:05"

// xlsxReportService renders admin reports as Excel workbooks.
type xlsxReportService struct{}

// NewReportService is the constructor for xlsxReportService.
func NewReportService() service.ReportService {
	return &xlsxReportService{}
}

// TransactionsWorkbook renders all orders with their line items. The first
// sheet holds one row per order, the second one row per line item.
func (s *xlsxReportService) TransactionsWorkbook(transactions []entity.Transaction) ([]byte, error) {
	file := xlsx.NewFile()

	orderSheet, err := file.AddSheet("Transaksi")
	if err != nil {
		return nil, errors.Wrap(err, "failed to add transactions sheet")
	}

	header := orderSheet.AddRow()
	for _, title := range []string{"ID", "User ID", "Toko", "Pemilik", "Total", "Metode Pembayaran", "Status", "Tanggal"} {
		header.AddCell().Value = title
	}

	for i := range transactions {
		tx := &transactions[i]
		row := orderSheet.AddRow()
		row.AddCell().SetInt(int(tx.ID))
		row.AddCell().SetInt(int(tx.UserID))
		row.AddCell().Value = tx.StoreName
		row.AddCell().Value = tx.StoreOwner
		row.AddCell().SetFloat(tx.TotalAmount)
		row.AddCell().Value = tx.PaymentMethod
		row.AddCell().Value = string(tx.Status)
		row.AddCell().Value = tx.CreatedAt.Format(timeLayout)
	}

	itemSheet, err := file.AddSheet("Item")
	if err != nil {
		return nil, errors.Wrap(err, "failed to add items sheet")
	}

	itemHeader := itemSheet.AddRow()
	for _, title := range []string{"Transaksi ID", "Item ID", "Nama Item", "Harga", "Jumlah", "Subtotal"} {
		itemHeader.AddCell().Value = title
	}

	for i := range transactions {
		tx := &transactions[i]
		for j := range tx.Items {
			item := &tx.Items[j]
			row := itemSheet.AddRow()
			row.AddCell().SetInt(int(tx.ID))
			row.AddCell().SetInt(int(item.ItemID))
			row.AddCell().Value = item.ItemName
			row.AddCell().SetFloat(item.Price)
			row.AddCell().SetInt(item.Quantity)
			row.AddCell().SetFloat(item.Subtotal())
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return buf.Bytes(), nil
}
