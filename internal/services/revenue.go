package services

import (
	"bufio"
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ecommerce-insights/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	batchSize    = 10000
	maxWorkers   = 10
	cacheVersion = "v1"
	cacheDir     = ".cache"
)

// RevenueReport is the precomputed metric set over one transactions file.
// Totals and the average cover completed transactions only; the status
// summary covers every row.
type RevenueReport struct {
	TotalRevenue        float64                 `json:"total_revenue"`
	AvgTransactionValue float64                 `json:"avg_transaction_value"`
	ByPaymentMethod     []models.PaymentRevenue `json:"revenue_by_payment"`
	Daily               []models.DailyRevenue   `json:"daily_revenue"`
	StatusCounts        []models.StatusSummary  `json:"transaction_status_counts"`
	LastModified        time.Time               `json:"last_modified"`
	RecordCount         int64                   `json:"record_count"`
}

// Revenue computes and serves the revenue metrics. The report is built once
// per load and guarded for concurrent readers.
type Revenue struct {
	mu               sync.RWMutex
	report           *RevenueReport
	csvPath          string
	recordsProcessed atomic.Int64
	logger           *slog.Logger
}

func NewRevenue() *Revenue {
	return &Revenue{
		report: &RevenueReport{},
		logger: slog.Default(),
	}
}

// SetData computes the report directly from in-memory transactions.
func (r *Revenue) SetData(transactions []models.Transaction) {
	acc := newAccumulator()
	for _, tx := range transactions {
		acc.add(parsedTransaction{
			amount:        tx.Amount,
			date:          tx.Timestamp.Format("2006-01-02"),
			paymentMethod: tx.PaymentMethod,
			status:        tx.Status,
		})
	}

	report := acc.report()
	report.RecordCount = int64(len(transactions))
	report.LastModified = time.Now()

	r.mu.Lock()
	r.report = report
	r.mu.Unlock()
}

// LoadFromCSV streams a transactions file into the precomputed report,
// using a cached result when the file has not changed since it was built.
func (r *Revenue) LoadFromCSV(ctx context.Context, filename string) error {
	r.csvPath = filename

	if cached, err := r.loadFromCache(filename); err == nil {
		fileInfo, err := os.Stat(filename)
		if err == nil && fileInfo.ModTime().Before(cached.LastModified) {
			r.mu.Lock()
			r.report = cached
			r.mu.Unlock()
			r.logger.Info("loaded revenue report from cache", "records", cached.RecordCount)
			return nil
		}
	}

	start := time.Now()
	r.logger.Info("processing transactions file", "filename", filename)

	if err := r.streamProcessCSV(ctx, filename); err != nil {
		return fmt.Errorf("process transactions: %w", err)
	}

	if err := r.saveToCache(filename); err != nil {
		r.logger.Warn("failed to save revenue cache", "error", err)
	}

	duration := time.Since(start)
	count := r.recordsProcessed.Load()
	r.logger.Info("transactions processed",
		"records", count,
		"duration", duration,
		"rate", fmt.Sprintf("%.0f records/sec", float64(count)/duration.Seconds()))

	return nil
}

func (r *Revenue) streamProcessCSV(ctx context.Context, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024)

	// Skip header
	if !scanner.Scan() {
		return fmt.Errorf("empty file")
	}

	global := newAccumulator()
	recordCount := int64(0)

	batch := make([]string, 0, batchSize)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch = append(batch, scanner.Text())

		if len(batch) >= batchSize {
			n, err := processBatch(ctx, batch, global)
			if err != nil {
				return err
			}
			recordCount += n
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		n, err := processBatch(ctx, batch, global)
		if err != nil {
			return err
		}
		recordCount += n
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	if recordCount == 0 {
		return fmt.Errorf("no valid records found")
	}

	report := global.report()
	report.RecordCount = recordCount
	report.LastModified = time.Now()

	r.mu.Lock()
	r.report = report
	r.mu.Unlock()

	r.recordsProcessed.Store(recordCount)
	return nil
}

// processBatch parses one batch of lines with bounded workers and folds the
// valid rows into the accumulator. Invalid rows are skipped.
func processBatch(ctx context.Context, batch []string, acc *revenueAccumulator) (int64, error) {
	type result struct {
		tx    parsedTransaction
		valid bool
	}

	results := make(chan result, len(batch))

	var wg errgroup.Group
	wg.SetLimit(maxWorkers)

	for _, line := range batch {
		wg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tx, err := parseTransactionLine(line)
			if err != nil {
				results <- result{valid: false}
				return nil
			}
			results <- result{tx: tx, valid: true}
			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		close(results)
		return 0, err
	}
	close(results)

	count := int64(0)
	for res := range results {
		if res.valid {
			acc.add(res.tx)
			count++
		}
	}

	return count, nil
}

// parsedTransaction carries only the fields the metrics need.
type parsedTransaction struct {
	amount        float64
	date          string
	paymentMethod string
	status        string
}

// Column order: transaction_id, user_id, product_id, quantity, unit_price,
// amount, timestamp, payment_method, status.
func parseTransactionLine(line string) (parsedTransaction, error) {
	record := strings.Split(line, ",")
	if len(record) < 9 {
		return parsedTransaction{}, fmt.Errorf("insufficient columns")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil {
		return parsedTransaction{}, err
	}

	raw := strings.TrimSpace(record[6])
	timestamp, err := time.Parse(models.TimestampLayout, raw)
	if err != nil {
		timestamp, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return parsedTransaction{}, err
		}
	}

	return parsedTransaction{
		amount:        amount,
		date:          timestamp.Format("2006-01-02"),
		paymentMethod: strings.TrimSpace(record[7]),
		status:        strings.TrimSpace(record[8]),
	}, nil
}

type revenueAccumulator struct {
	completedTotal float64
	completedCount int64
	byPayment      map[string]float64
	byDay          map[string]float64
	byStatus       map[string]*models.StatusSummary
}

func newAccumulator() *revenueAccumulator {
	return &revenueAccumulator{
		byPayment: make(map[string]float64),
		byDay:     make(map[string]float64),
		byStatus:  make(map[string]*models.StatusSummary),
	}
}

func (acc *revenueAccumulator) add(tx parsedTransaction) {
	if acc.byStatus[tx.status] == nil {
		acc.byStatus[tx.status] = &models.StatusSummary{Status: tx.status}
	}
	acc.byStatus[tx.status].Count++
	acc.byStatus[tx.status].TotalAmount += tx.amount

	if tx.status != "completed" {
		return
	}

	acc.completedTotal += tx.amount
	acc.completedCount++
	acc.byPayment[tx.paymentMethod] += tx.amount
	acc.byDay[tx.date] += tx.amount
}

// report converts the grouping maps into the sorted metric slices.
func (acc *revenueAccumulator) report() *RevenueReport {
	byPayment := make([]models.PaymentRevenue, 0, len(acc.byPayment))
	for method, revenue := range acc.byPayment {
		byPayment = append(byPayment, models.PaymentRevenue{PaymentMethod: method, Revenue: revenue})
	}
	slices.SortFunc(byPayment, func(a, b models.PaymentRevenue) int {
		switch {
		case a.Revenue > b.Revenue:
			return -1
		case a.Revenue < b.Revenue:
			return 1
		default:
			return strings.Compare(a.PaymentMethod, b.PaymentMethod)
		}
	})

	daily := make([]models.DailyRevenue, 0, len(acc.byDay))
	for date, revenue := range acc.byDay {
		daily = append(daily, models.DailyRevenue{Date: date, Revenue: revenue})
	}
	slices.SortFunc(daily, func(a, b models.DailyRevenue) int {
		return strings.Compare(a.Date, b.Date)
	})

	statusCounts := make([]models.StatusSummary, 0, len(acc.byStatus))
	for _, summary := range acc.byStatus {
		statusCounts = append(statusCounts, *summary)
	}
	slices.SortFunc(statusCounts, func(a, b models.StatusSummary) int {
		switch {
		case a.Count > b.Count:
			return -1
		case a.Count < b.Count:
			return 1
		default:
			return strings.Compare(a.Status, b.Status)
		}
	})

	avg := 0.0
	if acc.completedCount > 0 {
		avg = acc.completedTotal / float64(acc.completedCount)
	}

	return &RevenueReport{
		TotalRevenue:        acc.completedTotal,
		AvgTransactionValue: avg,
		ByPaymentMethod:     byPayment,
		Daily:               daily,
		StatusCounts:        statusCounts,
	}
}

// Cache management
func (r *Revenue) getCacheFilename(csvPath string) string {
	return fmt.Sprintf("%s/%s_%s.gob", cacheDir, strings.ReplaceAll(csvPath, "/", "_"), cacheVersion)
}

func (r *Revenue) saveToCache(csvPath string) error {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return err
	}

	file, err := os.Create(r.getCacheFilename(csvPath))
	if err != nil {
		return err
	}
	defer file.Close()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return gob.NewEncoder(file).Encode(r.report)
}

func (r *Revenue) loadFromCache(csvPath string) (*RevenueReport, error) {
	file, err := os.Open(r.getCacheFilename(csvPath))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var report RevenueReport
	if err := gob.NewDecoder(file).Decode(&report); err != nil {
		return nil, err
	}

	return &report, nil
}

// Query methods over the precomputed report.

func (r *Revenue) Report() RevenueReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return *r.report
}

func (r *Revenue) TotalRevenue() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.report.TotalRevenue
}

func (r *Revenue) AvgTransactionValue() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.report.AvgTransactionValue
}

func (r *Revenue) RevenueByPayment() []models.PaymentRevenue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.report.ByPaymentMethod
}

func (r *Revenue) DailyRevenue() []models.DailyRevenue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.report.Daily
}

func (r *Revenue) StatusCounts() []models.StatusSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.report.StatusCounts
}

// Stats is a small monitoring view over the loaded report.
func (r *Revenue) Stats() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return map[string]any{
		"record_count":    r.report.RecordCount,
		"last_processed":  r.report.LastModified,
		"payment_methods": len(r.report.ByPaymentMethod),
		"days":            len(r.report.Daily),
		"statuses":        len(r.report.StatusCounts),
	}
}
