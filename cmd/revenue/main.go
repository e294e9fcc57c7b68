package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ecommerce-insights/internal/config"
	"ecommerce-insights/internal/observability"
	"ecommerce-insights/internal/services"
)

const loadTimeout = 30 * time.Second

func main() {
	input := flag.String("input", "data/raw/transactions.csv", "transactions CSV file")
	maxDays := flag.Int("max-days", 10, "number of daily revenue rows to print")
	flag.Parse()

	logger := observability.NewLogger(config.LoggerConfig{Level: "warn", Format: "text"})
	slog.SetDefault(logger)

	revenue := services.NewRevenue()

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	if err := revenue.LoadFromCSV(ctx, *input); err != nil {
		logger.Error("failed to load transactions", "file", *input, "error", err)
		os.Exit(1)
	}

	report := revenue.Report()

	fmt.Println("=== REVENUE ANALYSIS ===")
	fmt.Printf("Total Revenue: $%.2f\n", report.TotalRevenue)

	fmt.Println("\nRevenue by Payment Method:")
	for _, row := range report.ByPaymentMethod {
		fmt.Printf("  %-12s $%.2f\n", row.PaymentMethod, row.Revenue)
	}

	fmt.Println("\nDaily Revenue:")
	daily := report.Daily
	if len(daily) > *maxDays {
		daily = daily[:*maxDays]
	}
	for _, row := range daily {
		fmt.Printf("  %s  $%.2f\n", row.Date, row.Revenue)
	}

	fmt.Printf("\nAverage Transaction Value: $%.2f\n", report.AvgTransactionValue)

	fmt.Println("\nTransaction Status Counts:")
	for _, row := range report.StatusCounts {
		fmt.Printf("  %-10s count=%-6d total=$%.2f\n", row.Status, row.Count, row.TotalAmount)
	}
}
