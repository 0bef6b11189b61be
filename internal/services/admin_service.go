package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/receipt"
	"github.com/example/geprek/internal/store"
)

const recentOrdersLimit = 5

// DashboardStore provides the aggregate queries behind the back office.
type DashboardStore interface {
	DashboardStats(ctx context.Context) (*store.DashboardStats, error)
	RecentOrders(ctx context.Context, limit int) ([]models.Order, error)
	ListOrders(ctx context.Context, userID *uuid.UUID) ([]models.Order, error)
}

// AdminService serves the dashboard figures and the order export.
type AdminService struct {
	store DashboardStore
}

func NewAdminService(store DashboardStore) *AdminService {
	return &AdminService{store: store}
}

func (s *AdminService) Stats(ctx context.Context) (*store.DashboardStats, error) {
	return s.store.DashboardStats(ctx)
}

func (s *AdminService) RecentOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.RecentOrders(ctx, recentOrdersLimit)
}

// ExportOrders writes every order as an XLSX workbook, one row per order line.
func (s *AdminService) ExportOrders(ctx context.Context, w io.Writer) error {
	orders, err := s.store.ListOrders(ctx, nil)
	if err != nil {
		return err
	}

	file, err := OrdersWorkbook(orders)
	if err != nil {
		return err
	}
	return file.Write(w)
}

var exportHeaders = []string{
	"ID Struk", "Order ID", "Tanggal", "Username", "No HP",
	"Status", "Produk", "Jumlah", "Harga", "Subtotal", "Total",
}

// OrdersWorkbook builds the export workbook. Orders without items still get
// one row so every order appears.
func OrdersWorkbook(orders []models.Order) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Pesanan")
	if err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetString(h)
	}

	for i := range orders {
		order := &orders[i]
		var username, phone string
		if order.User != nil {
			username = order.User.Username
			phone = order.User.Phone
		}

		addRow := func(product string, quantity int, price, subtotal int64) {
			row := sheet.AddRow()
			row.AddCell().SetString(receipt.ReceiptID(order))
			row.AddCell().SetString(order.ID.String())
			row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetString(username)
			row.AddCell().SetString(phone)
			row.AddCell().SetString(string(order.Status))
			row.AddCell().SetString(product)
			row.AddCell().SetInt(quantity)
			row.AddCell().SetInt64(price)
			row.AddCell().SetInt64(subtotal)
			row.AddCell().SetInt64(order.TotalAmount)
		}

		if len(order.Items) == 0 {
			addRow("", 0, 0, 0)
			continue
		}
		for j := range order.Items {
			item := &order.Items[j]
			addRow(item.ProductName(), item.Quantity, item.Price, item.Subtotal)
		}
	}

	return file, nil
}
