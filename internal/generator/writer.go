package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ecommerce-insights/internal/models"
)

// Output file names under the dataset directory.
const (
	ProductsFile     = "products.csv"
	UserLogsFile     = "user_logs.csv"
	TransactionsFile = "transactions.csv"
)

var (
	productHeader     = []string{"product_id", "product_name", "category", "price", "brand", "stock_quantity", "rating"}
	logHeader         = []string{"user_id", "timestamp", "page_url", "session_id", "action", "device_type", "duration_seconds"}
	transactionHeader = []string{"transaction_id", "user_id", "product_id", "quantity", "unit_price", "amount", "timestamp", "payment_method", "status"}
)

// Save writes the three generated tables under dir as header-having CSV
// files, creating the directory as needed. Column order is part of the
// downstream contract. A write failure is fatal and surfaced as-is.
func Save(dir string, products []models.Product, logs []models.LogEntry, transactions []models.Transaction) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeCSV(filepath.Join(dir, ProductsFile), productHeader, productRecords(products)); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	if err := writeCSV(filepath.Join(dir, UserLogsFile), logHeader, logRecords(logs)); err != nil {
		return fmt.Errorf("write user logs: %w", err)
	}
	if err := writeCSV(filepath.Join(dir, TransactionsFile), transactionHeader, transactionRecords(transactions)); err != nil {
		return fmt.Errorf("write transactions: %w", err)
	}

	return nil
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func productRecords(products []models.Product) [][]string {
	records := make([][]string, 0, len(products))
	for _, p := range products {
		records = append(records, []string{
			p.ProductID,
			p.ProductName,
			p.Category,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			p.Brand,
			strconv.Itoa(p.StockQuantity),
			strconv.FormatFloat(p.Rating, 'f', 1, 64),
		})
	}
	return records
}

func logRecords(logs []models.LogEntry) [][]string {
	records := make([][]string, 0, len(logs))
	for _, l := range logs {
		records = append(records, []string{
			l.UserID,
			l.Timestamp.Format(models.TimestampLayout),
			l.PageURL,
			l.SessionID,
			l.Action,
			l.DeviceType,
			strconv.Itoa(l.DurationSeconds),
		})
	}
	return records
}

func transactionRecords(transactions []models.Transaction) [][]string {
	records := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		records = append(records, []string{
			tx.TransactionID,
			tx.UserID,
			tx.ProductID,
			strconv.Itoa(tx.Quantity),
			strconv.FormatFloat(tx.UnitPrice, 'f', 2, 64),
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			tx.Timestamp.Format(models.TimestampLayout),
			tx.PaymentMethod,
			tx.Status,
		})
	}
	return records
}
