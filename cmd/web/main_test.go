package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"ecommerce-insights/internal/models"
	"ecommerce-insights/internal/server"
	"ecommerce-insights/internal/services"
)

// Test helper to create a revenue service with a small dataset
func newTestRevenue() *services.Revenue {
	r := services.NewRevenue()
	r.SetData([]models.Transaction{
		{
			TransactionID: "T001",
			UserID:        "user_000001",
			ProductID:     "product_0001",
			Quantity:      1,
			UnitPrice:     100,
			Amount:        100,
			Timestamp:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			PaymentMethod: "credit_card",
			Status:        "completed",
		},
		{
			TransactionID: "T002",
			UserID:        "user_000002",
			ProductID:     "product_0002",
			Quantity:      2,
			UnitPrice:     25,
			Amount:        50,
			Timestamp:     time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
			PaymentMethod: "paypal",
			Status:        "completed",
		},
		{
			TransactionID: "T003",
			UserID:        "user_000003",
			ProductID:     "product_0003",
			Quantity:      1,
			UnitPrice:     75,
			Amount:        75,
			Timestamp:     time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC),
			PaymentMethod: "gift_card",
			Status:        "pending",
		},
	})
	return r
}

func newTestServer() *server.Server {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	templateHandlers := &server.TemplateHandlers{Dashboard: handleDashboard}
	return server.NewServer(newTestRevenue(), logger, templateHandlers)
}

// Integration tests for HTTP routes
func TestServer_Routes(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		path           string
		expectedStatus int
		contentType    string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/api/summary", http.StatusOK, "application/json"},
		{"/api/revenue-by-payment", http.StatusOK, "application/json"},
		{"/api/daily-revenue", http.StatusOK, "application/json"},
		{"/api/status-counts", http.StatusOK, "application/json"},
		{"/health", http.StatusOK, "application/json"},
		{"/admin/stats", http.StatusOK, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			ct := w.Header().Get("Content-Type")
			if !strings.Contains(ct, tt.contentType) {
				t.Errorf("content-type = %q, want %q", ct, tt.contentType)
			}

			// Validate JSON responses
			if tt.contentType == "application/json" {
				var result any
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Errorf("invalid json: %v", err)
				}
			}
		})
	}
}

// Test JSON API responses
func TestServer_JSONResponse(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/revenue-by-payment", nil)
	srv.ServeHTTP(w, r)

	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if success, ok := response["success"].(bool); !ok || !success {
		t.Error("expected success=true in response")
	}

	data, ok := response["data"].([]interface{})
	if !ok {
		t.Fatalf("expected data array in response")
	}

	// Only completed transactions count, so gift_card must be absent
	if len(data) != 2 {
		t.Fatalf("expected 2 payment rows, got %d", len(data))
	}

	first, ok := data[0].(map[string]interface{})
	if !ok {
		t.Fatal("invalid payment row structure")
	}
	if method, hasMethod := first["payment_method"].(string); !hasMethod || method != "credit_card" {
		t.Errorf("first payment_method = %v, want credit_card", first["payment_method"])
	}
	if revenue, hasRevenue := first["revenue"].(float64); !hasRevenue || revenue != 100 {
		t.Errorf("first revenue = %v, want 100", first["revenue"])
	}
}

// Test Server-Sent Events routes
func TestServer_SSERoutes(t *testing.T) {
	srv := newTestServer()

	sseRoutes := []string{
		"/sse/revenue-by-payment",
		"/sse/daily-revenue",
		"/sse/status-counts",
		"/sse/refresh-all",
	}

	for _, route := range sseRoutes {
		t.Run(route, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", route, nil)

			srv.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}

			// Check for SSE headers
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("content-type = %q, should contain 'text/event-stream'", ct)
			}

			if cc := w.Header().Get("Cache-Control"); cc != "no-cache" {
				t.Errorf("cache-control = %q, want 'no-cache'", cc)
			}
		})
	}
}

// Test health endpoint
func TestServer_HandleHealth(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode health JSON: %v", err)
	}

	if success, ok := response["success"].(bool); !ok || !success {
		t.Error("expected success=true in response")
	}

	healthData, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected health data in response")
	}

	if status, ok := healthData["status"].(string); !ok || status != "healthy" {
		t.Errorf("health status = %v, want 'healthy'", healthData["status"])
	}

	if _, ok := healthData["timestamp"]; !ok {
		t.Error("health response should include timestamp")
	}
}

// Test error handling for invalid methods
func TestServer_ErrorHandling(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"POST", "/api/summary", http.StatusMethodNotAllowed},
		{"PUT", "/", http.StatusMethodNotAllowed},
		{"DELETE", "/health", http.StatusMethodNotAllowed},
		{"PATCH", "/api/revenue-by-payment", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

// Test dashboard template rendering
func TestDashboardTemplate(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	handleDashboard(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	if !strings.Contains(body, "E-commerce Revenue Dashboard") {
		t.Error("dashboard should contain title")
	}

	expectedComponents := []string{
		"Revenue by Payment Method",
		"Daily Revenue",
		"Transactions by Status",
		"payment-content",
		"daily-content",
		"status-content",
	}

	for _, component := range expectedComponents {
		if !strings.Contains(body, component) {
			t.Errorf("dashboard should contain '%s'", component)
		}
	}
}
