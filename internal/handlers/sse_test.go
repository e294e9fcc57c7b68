package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce-insights/internal/models"
)

func TestNewSSEHandlers(t *testing.T) {
	revenue := createTestRevenue()
	handlers := NewSSEHandlers(revenue, testLogger())

	if handlers == nil {
		t.Fatal("NewSSEHandlers() returned nil")
	}
	if handlers.revenue != revenue {
		t.Error("NewSSEHandlers() should set revenue field")
	}
}

func TestSSEHandlers_RenderPaymentTable(t *testing.T) {
	handlers := NewSSEHandlers(createTestRevenue(), testLogger())

	html, err := handlers.renderPaymentTable([]models.PaymentRevenue{
		{PaymentMethod: "credit_card", Revenue: 250},
		{PaymentMethod: "paypal", Revenue: 100},
	})
	if err != nil {
		t.Fatalf("renderPaymentTable() error: %v", err)
	}

	for _, want := range []string{
		`id="payment-content"`,
		"credit_card",
		"$250.00",
		"paypal",
		"$100.00",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("payment table missing %q", want)
		}
	}
}

func TestSSEHandlers_RenderStatusTable(t *testing.T) {
	handlers := NewSSEHandlers(createTestRevenue(), testLogger())

	html, err := handlers.renderStatusTable([]models.StatusSummary{
		{Status: "completed", Count: 2, TotalAmount: 300},
		{Status: "pending", Count: 1, TotalAmount: 50},
	})
	if err != nil {
		t.Fatalf("renderStatusTable() error: %v", err)
	}

	for _, want := range []string{
		`id="status-content"`,
		"completed",
		"$300.00",
		"pending",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("status table missing %q", want)
		}
	}
}

func TestSSEHandlers_HandlePaymentRevenue(t *testing.T) {
	handlers := NewSSEHandlers(createTestRevenue(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/revenue-by-payment", nil)
	w := httptest.NewRecorder()
	handlers.HandlePaymentRevenue(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Errorf("expected event-stream content type, got %s", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "credit_card") {
		t.Error("SSE body should contain the rendered payment table")
	}
}

func TestSSEHandlers_HandleStatusCounts(t *testing.T) {
	handlers := NewSSEHandlers(createTestRevenue(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/status-counts", nil)
	w := httptest.NewRecorder()
	handlers.HandleStatusCounts(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "completed") {
		t.Error("SSE body should contain the rendered status table")
	}
}

func TestSSEHandlers_HandleDailyRevenue(t *testing.T) {
	handlers := NewSSEHandlers(createTestRevenue(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/daily-revenue", nil)
	w := httptest.NewRecorder()
	handlers.HandleDailyRevenue(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "dailyData") {
		t.Error("SSE body should patch the dailyData signal")
	}
	if !strings.Contains(body, "2025-06-01") {
		t.Error("SSE body should carry the daily series")
	}
	if !strings.Contains(body, `id="daily-content"`) {
		t.Error("SSE body should patch the daily-content placeholder")
	}
}

func TestSSEHandlers_HandleRefreshAll(t *testing.T) {
	handlers := NewSSEHandlers(createTestRevenue(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/refresh-all", nil)
	w := httptest.NewRecorder()
	handlers.HandleRefreshAll(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		`id="payment-content"`,
		`id="status-content"`,
		"totalRevenue",
		"avgTransactionValue",
		"dailyData",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("refresh-all SSE body missing %q", want)
		}
	}
}
