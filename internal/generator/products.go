package generator

import "ecommerce-insights/internal/models"

// GenerateProducts builds one catalog row per product id, in id order. The
// category is drawn once and reused for the brand lookup so the two fields
// stay consistent on every row.
func (g *Generator) GenerateProducts() []models.Product {
	products := make([]models.Product, 0, len(g.pools.Products))

	for _, id := range g.pools.Products {
		category := categories[g.rng.Intn(len(categories))]
		brandList := brands[category]

		products = append(products, models.Product{
			ProductID:     id,
			ProductName:   g.faker.ProductName(),
			Category:      category,
			Price:         g.priceIn(9.99, 999.99),
			Brand:         brandList[g.rng.Intn(len(brandList))],
			StockQuantity: g.rng.Intn(1001),
			Rating:        round1(1.0 + g.rng.Float64()*4.0),
		})
	}

	return products
}
