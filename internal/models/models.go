package models

import "time"

// TimestampLayout is how dataset timestamps are serialized in CSV.
const TimestampLayout = "2006-01-02 15:04:05"

// Dataset row types. Field order matches the CSV column contract consumed
// downstream, so keep it stable.

type Product struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Brand         string  `json:"brand"`
	StockQuantity int     `json:"stock_quantity"`
	Rating        float64 `json:"rating"`
}

type LogEntry struct {
	UserID          string    `json:"user_id"`
	Timestamp       time.Time `json:"timestamp"`
	PageURL         string    `json:"page_url"`
	SessionID       string    `json:"session_id"`
	Action          string    `json:"action"`
	DeviceType      string    `json:"device_type"`
	DurationSeconds int       `json:"duration_seconds"`
}

type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	ProductID     string    `json:"product_id"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
}

// Precomputed revenue rows served by the dashboard and report.

type PaymentRevenue struct {
	PaymentMethod string  `json:"payment_method"`
	Revenue       float64 `json:"revenue"`
}

type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"daily_revenue"`
}

type StatusSummary struct {
	Status      string  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}
