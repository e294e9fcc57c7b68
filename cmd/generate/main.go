package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"ecommerce-insights/internal/config"
	"ecommerce-insights/internal/generator"
	"ecommerce-insights/internal/observability"
)

func main() {
	defaults := generator.DefaultParams()

	users := flag.Int("users", defaults.Users, "number of unique users")
	products := flag.Int("products", defaults.Products, "number of products")
	logs := flag.Int("logs", defaults.Logs, "number of user logs")
	transactions := flag.Int("transactions", defaults.Transactions, "number of transactions")
	days := flag.Int("days", defaults.Days, "trailing window in days for timestamps")
	seed := flag.Int64("seed", defaults.Seed, "random seed")
	output := flag.String("output", defaults.Output, "output directory")
	configPath := flag.String("config", "", "optional YAML parameter file; explicit flags override it")

	flag.Parse()

	logger := observability.NewLogger(config.LoggerConfig{Level: "info", Format: "text"})
	slog.SetDefault(logger)

	params := defaults
	if *configPath != "" {
		var err error
		params, err = generator.LoadParams(*configPath)
		if err != nil {
			logger.Error("failed to load parameter file", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}

	// Flags the user actually set win over the parameter file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "users":
			params.Users = *users
		case "products":
			params.Products = *products
		case "logs":
			params.Logs = *logs
		case "transactions":
			params.Transactions = *transactions
		case "days":
			params.Days = *days
		case "seed":
			params.Seed = *seed
		case "output":
			params.Output = *output
		}
	})

	logger.Info("generating dataset",
		"users", params.Users,
		"products", params.Products,
		"logs", params.Logs,
		"transactions", params.Transactions,
		"days", params.Days,
		"seed", params.Seed,
		"output", params.Output,
	)

	start := time.Now()
	gen := generator.New(params.Users, params.Products, params.Seed)

	// Generation order is fixed: each call advances the shared random
	// stream, so reordering would change the output for a given seed.
	productRows := gen.GenerateProducts()
	logRows := gen.GenerateLogs(params.Logs, params.Days)
	transactionRows := gen.GenerateTransactions(params.Transactions, params.Days)

	if err := generator.Save(params.Output, productRows, logRows, transactionRows); err != nil {
		logger.Error("failed to write dataset", "error", err)
		os.Exit(1)
	}

	logger.Info("dataset written",
		"products", len(productRows),
		"user_logs", len(logRows),
		"transaction_lines", len(transactionRows),
		"output", params.Output,
		"duration", time.Since(start),
	)
}
