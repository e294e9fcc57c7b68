package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"ecommerce-insights/internal/errors"
	"ecommerce-insights/internal/services"
)

type APIHandlers struct {
	revenue *services.Revenue
	logger  *slog.Logger
}

func NewAPIHandlers(revenue *services.Revenue, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		revenue: revenue,
		logger:  logger,
	}
}

var cacheHeaders = map[string]string{
	"Cache-Control": "public, max-age=300",
}

// HandleSummary serves the headline figures: total revenue and average
// transaction value over completed transactions.
func (h *APIHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	report := h.revenue.Report()

	summary := map[string]any{
		"total_revenue":         report.TotalRevenue,
		"avg_transaction_value": report.AvgTransactionValue,
		"record_count":          report.RecordCount,
	}

	errors.WriteSuccessWithHeaders(w, summary, cacheHeaders)
}

func (h *APIHandlers) HandlePaymentRevenue(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.revenue.RevenueByPayment(), cacheHeaders)
}

func (h *APIHandlers) HandleDailyRevenue(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.revenue.DailyRevenue(), cacheHeaders)
}

func (h *APIHandlers) HandleStatusCounts(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.revenue.StatusCounts(), cacheHeaders)
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.revenue.Stats())
}
