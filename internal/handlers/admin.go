package handlers

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Dashboard serves the back-office figures.
type Dashboard interface {
	Stats(ctx context.Context) (*store.DashboardStats, error)
	RecentOrders(ctx context.Context) ([]models.Order, error)
	ExportOrders(ctx context.Context, w io.Writer) error
}

// AdminHandler manages admin-only endpoints.
type AdminHandler struct {
	dashboard Dashboard
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(dashboard Dashboard) *AdminHandler {
	return &AdminHandler{dashboard: dashboard}
}

// DashboardStats returns aggregate statistics for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// RecentOrders returns the latest orders for the dashboard.
func (h *AdminHandler) RecentOrders(c *fiber.Ctx) error {
	orders, err := h.dashboard.RecentOrders(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// ExportOrders downloads every order as an Excel workbook.
func (h *AdminHandler) ExportOrders(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.dashboard.ExportOrders(c.UserContext(), &buf); err != nil {
		return err
	}

	filename := "pesanan-" + time.Now().Format("20060102") + ".xlsx"
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}
