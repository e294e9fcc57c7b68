package generator

import (
	"slices"

	"ecommerce-insights/internal/models"
)

// GenerateTransactions produces purchase lines for count basket events,
// sorted ascending by timestamp. A basket event samples one purchaser and
// one timestamp, then emits 1-5 lines sharing both; every line draws its
// own product, quantity, unit price, payment method, and status, so the
// output row count is the sum of basket sizes, not count.
//
// Unit prices are re-randomized per line rather than looked up from the
// product catalog, so a product's transaction price need not match its
// catalog price.
func (g *Generator) GenerateTransactions(count, windowDays int) []models.Transaction {
	purchasers := g.Purchasers()
	lines := make([]models.Transaction, 0, max(count, 0))

	for i := 0; i < count; i++ {
		userID := purchasers[g.rng.Intn(len(purchasers))]
		timestamp := g.timestampIn(windowDays)
		basketSize := weightedChoice(g.rng, basketSizes, basketWeights)

		for j := 0; j < basketSize; j++ {
			price := g.priceIn(9.99, 999.99)
			quantity := weightedChoice(g.rng, quantities, quantityWeights)

			lines = append(lines, models.Transaction{
				TransactionID: g.transactionID(),
				UserID:        userID,
				ProductID:     g.pools.Products[g.rng.Intn(len(g.pools.Products))],
				Quantity:      quantity,
				UnitPrice:     price,
				Amount:        round2(price * float64(quantity)),
				Timestamp:     timestamp,
				PaymentMethod: paymentMethods[g.rng.Intn(len(paymentMethods))],
				Status:        weightedChoice(g.rng, statuses, statusWeights),
			})
		}
	}

	slices.SortStableFunc(lines, func(a, b models.Transaction) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return lines
}
