package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"ecommerce-insights/internal/models"
	"ecommerce-insights/internal/services"
)

func createTestRevenue() *services.Revenue {
	r := services.NewRevenue()
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	r.SetData([]models.Transaction{
		{TransactionID: "t1", Amount: 100, Status: "completed", PaymentMethod: "paypal", Timestamp: day},
		{TransactionID: "t2", Amount: 50, Status: "pending", PaymentMethod: "credit_card", Timestamp: day},
		{TransactionID: "t3", Amount: 200, Status: "completed", PaymentMethod: "credit_card", Timestamp: day.Add(24 * time.Hour)},
	})
	return r
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewAPIHandlers(t *testing.T) {
	revenue := createTestRevenue()
	handlers := NewAPIHandlers(revenue, testLogger())

	if handlers == nil {
		t.Fatal("NewAPIHandlers() returned nil")
	}
	if handlers.revenue != revenue {
		t.Error("NewAPIHandlers() should set revenue field")
	}
}

func decodeSuccess(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if response["success"] != true {
		t.Errorf("expected success true, got %v", response["success"])
	}
	return response
}

func TestAPIHandlers_HandleSummary(t *testing.T) {
	handlers := NewAPIHandlers(createTestRevenue(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	w := httptest.NewRecorder()
	handlers.HandleSummary(w, req)

	response := decodeSuccess(t, w)
	data := response["data"].(map[string]any)

	if data["total_revenue"].(float64) != 300 {
		t.Errorf("expected total_revenue 300, got %v", data["total_revenue"])
	}
	if data["avg_transaction_value"].(float64) != 150 {
		t.Errorf("expected avg_transaction_value 150, got %v", data["avg_transaction_value"])
	}
}

func TestAPIHandlers_HandlePaymentRevenue(t *testing.T) {
	handlers := NewAPIHandlers(createTestRevenue(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/revenue-by-payment", nil)
	w := httptest.NewRecorder()
	handlers.HandlePaymentRevenue(w, req)

	response := decodeSuccess(t, w)
	data := response["data"].([]any)

	if len(data) != 2 {
		t.Fatalf("expected 2 payment rows, got %d", len(data))
	}
	first := data[0].(map[string]any)
	if first["payment_method"] != "credit_card" {
		t.Errorf("expected credit_card first (highest revenue), got %v", first["payment_method"])
	}

	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=300" {
		t.Errorf("expected cache header, got %q", cc)
	}
}

func TestAPIHandlers_HandleDailyRevenue(t *testing.T) {
	handlers := NewAPIHandlers(createTestRevenue(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/daily-revenue", nil)
	w := httptest.NewRecorder()
	handlers.HandleDailyRevenue(w, req)

	response := decodeSuccess(t, w)
	data := response["data"].([]any)

	if len(data) != 2 {
		t.Fatalf("expected 2 daily rows, got %d", len(data))
	}
	first := data[0].(map[string]any)
	if first["date"] != "2025-06-01" {
		t.Errorf("expected 2025-06-01 first, got %v", first["date"])
	}
}

func TestAPIHandlers_HandleStatusCounts(t *testing.T) {
	handlers := NewAPIHandlers(createTestRevenue(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/status-counts", nil)
	w := httptest.NewRecorder()
	handlers.HandleStatusCounts(w, req)

	response := decodeSuccess(t, w)
	data := response["data"].([]any)

	if len(data) != 2 {
		t.Fatalf("expected 2 status rows, got %d", len(data))
	}
	first := data[0].(map[string]any)
	if first["status"] != "completed" || first["count"].(float64) != 2 {
		t.Errorf("expected completed:2 first, got %v:%v", first["status"], first["count"])
	}
}

func TestAPIHandlers_HandleHealth(t *testing.T) {
	handlers := NewAPIHandlers(createTestRevenue(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handlers.HandleHealth(w, req)

	response := decodeSuccess(t, w)
	data := response["data"].(map[string]any)
	if data["status"] != "healthy" {
		t.Errorf("expected healthy, got %v", data["status"])
	}
}

func TestAPIHandlers_HandleStats(t *testing.T) {
	handlers := NewAPIHandlers(createTestRevenue(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	handlers.HandleStats(w, req)

	response := decodeSuccess(t, w)
	data := response["data"].(map[string]any)
	if data["record_count"].(float64) != 3 {
		t.Errorf("expected record_count 3, got %v", data["record_count"])
	}
}
