package server

import (
	"log/slog"
	"net/http"

	"ecommerce-insights/internal/handlers"
	"ecommerce-insights/internal/services"
)

type Server struct {
	revenue     *services.Revenue
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(revenue *services.Revenue, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		revenue:     revenue,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(revenue, logger),
		sseHandlers: handlers.NewSSEHandlers(revenue, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard routes
	s.mux.HandleFunc("GET /", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/summary", s.apiHandlers.HandleSummary)
	s.mux.HandleFunc("GET /api/revenue-by-payment", s.apiHandlers.HandlePaymentRevenue)
	s.mux.HandleFunc("GET /api/daily-revenue", s.apiHandlers.HandleDailyRevenue)
	s.mux.HandleFunc("GET /api/status-counts", s.apiHandlers.HandleStatusCounts)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/revenue-by-payment", s.sseHandlers.HandlePaymentRevenue)
	s.mux.HandleFunc("GET /sse/daily-revenue", s.sseHandlers.HandleDailyRevenue)
	s.mux.HandleFunc("GET /sse/status-counts", s.sseHandlers.HandleStatusCounts)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
