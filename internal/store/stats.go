package store

import (
	"context"

	"github.com/example/geprek/internal/models"
)

// DashboardStats aggregates figures for the admin dashboard.
type DashboardStats struct {
	TotalUsers        int64                        `json:"totalUsers"`
	TotalProducts     int64                        `json:"totalProducts"`
	TotalOrders       int64                        `json:"totalOrders"`
	OrdersByStatus    map[models.OrderStatus]int64 `json:"ordersByStatus"`
	TotalRevenue      int64                        `json:"totalRevenue"`
	TodayRevenue      int64                        `json:"todayRevenue"`
	OutstandingPoints int64                        `json:"outstandingPoints"`
}

// DashboardStats computes the admin dashboard figures. Cancelled orders do
// not count towards revenue.
func (s *Store) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	db := s.db.WithContext(ctx)
	stats := &DashboardStats{OrdersByStatus: map[models.OrderStatus]int64{}}

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status models.OrderStatus
		Count  int64
	}
	var counts []statusCount
	if err := db.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	for _, status := range models.OrderStatuses {
		stats.OrdersByStatus[status] = 0
	}
	for _, sc := range counts {
		stats.OrdersByStatus[sc.Status] = sc.Count
	}

	if err := db.Model(&models.Order{}).
		Where("status <> ?", models.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Order{}).
		Where("status <> ? AND created_at::date = CURRENT_DATE", models.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TodayRevenue).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.User{}).
		Select("COALESCE(SUM(points), 0)").
		Scan(&stats.OutstandingPoints).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// RecentOrders returns the latest orders for the dashboard.
func (s *Store) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.orderQuery(ctx).Order("created_at desc").Limit(limit).Find(&orders).Error
	return orders, err
}
