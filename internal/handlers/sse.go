package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"ecommerce-insights/internal/models"
	"ecommerce-insights/internal/services"
	"github.com/starfederation/datastar-go/datastar"
)

const maxDailyRows = 60

var paymentTableTemplate = template.Must(template.New("paymentTable").Parse(`
<div id="payment-content">
<table class="modern-table">
<thead><tr><th>Payment Method</th><th>Revenue</th></tr></thead>
<tbody>
{{range .}}<tr>
<td><span class="category-badge">{{.PaymentMethod}}</span></td>
<td><strong>${{printf "%.2f" .Revenue}}</strong></td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var statusTableTemplate = template.Must(template.New("statusTable").Parse(`
<div id="status-content">
<table class="modern-table">
<thead><tr><th>Status</th><th>Count</th><th>Total Amount</th></tr></thead>
<tbody>
{{range .}}<tr>
<td><span class="category-badge">{{.Status}}</span></td>
<td>{{.Count}}</td>
<td><strong>${{printf "%.2f" .TotalAmount}}</strong></td>
</tr>{{end}}
</tbody>
</table>
</div>`))

type SSEHandlers struct {
	revenue *services.Revenue
	logger  *slog.Logger
}

func NewSSEHandlers(revenue *services.Revenue, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		revenue: revenue,
		logger:  logger,
	}
}

func (h *SSEHandlers) renderPaymentTable(data []models.PaymentRevenue) (string, error) {
	var buf strings.Builder
	err := paymentTableTemplate.Execute(&buf, data)
	return buf.String(), err
}

func (h *SSEHandlers) renderStatusTable(data []models.StatusSummary) (string, error) {
	var buf strings.Builder
	err := statusTableTemplate.Execute(&buf, data)
	return buf.String(), err
}

func (h *SSEHandlers) HandlePaymentRevenue(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderPaymentTable(h.revenue.RevenueByPayment())
	if err != nil {
		h.logger.Error("render payment table", "error", err)
		return
	}

	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleStatusCounts(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderStatusTable(h.revenue.StatusCounts())
	if err != nil {
		h.logger.Error("render status table", "error", err)
		return
	}

	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleDailyRevenue patches the daily revenue series as a signal so the
// chart on the dashboard can pick it up.
func (h *SSEHandlers) HandleDailyRevenue(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	data := h.revenue.DailyRevenue()
	if len(data) > maxDailyRows {
		data = data[:maxDailyRows]
	}

	jsonData, err := json.Marshal(map[string]any{
		"dailyData": data,
	})
	if err != nil {
		h.logger.Error("marshal daily data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="daily-content">✅ Daily revenue chart data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleRefreshAll pushes the full metric set in one SSE exchange.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	paymentHTML, err := h.renderPaymentTable(h.revenue.RevenueByPayment())
	if err != nil {
		h.logger.Error("render payment table", "error", err)
		return
	}
	sse.PatchElements(paymentHTML)

	statusHTML, err := h.renderStatusTable(h.revenue.StatusCounts())
	if err != nil {
		h.logger.Error("render status table", "error", err)
		return
	}
	sse.PatchElements(statusHTML)

	report := h.revenue.Report()
	daily := report.Daily
	if len(daily) > maxDailyRows {
		daily = daily[:maxDailyRows]
	}

	allSignals, err := json.Marshal(map[string]any{
		"dailyData":           daily,
		"totalRevenue":        report.TotalRevenue,
		"avgTransactionValue": report.AvgTransactionValue,
	})
	if err != nil {
		h.logger.Error("marshal refresh signals", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
