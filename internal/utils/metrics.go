package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geprek_orders_created_total",
		Help: "Total number of orders created",
	})

	OrderStatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geprek_order_status_changes_total",
		Help: "Order status updates by target status",
	}, []string{"status"})

	LoyaltyPointsAwardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geprek_loyalty_points_awarded_total",
		Help: "Loyalty points credited to users on order completion",
	})

	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geprek_registrations_total",
		Help: "Successful registrations by role",
	}, []string{"role"})

	LoginFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geprek_login_failures_total",
		Help: "Rejected login attempts",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
