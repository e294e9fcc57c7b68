package generator

import (
	"slices"

	"ecommerce-insights/internal/models"
)

// GenerateLogs produces count navigation events over the trailing window,
// sorted ascending by timestamp. Rows are independent draws: each gets its
// own user, page, and a fresh session token, so no session continuity
// exists across rows.
func (g *Generator) GenerateLogs(count, windowDays int) []models.LogEntry {
	entries := make([]models.LogEntry, 0, max(count, 0))

	for i := 0; i < count; i++ {
		entries = append(entries, models.LogEntry{
			UserID:          g.pools.Users[g.rng.Intn(len(g.pools.Users))],
			Timestamp:       g.timestampIn(windowDays),
			PageURL:         pages[g.rng.Intn(len(pages))],
			SessionID:       g.sessionID(),
			Action:          weightedChoice(g.rng, actions, actionWeights),
			DeviceType:      weightedChoice(g.rng, devices, deviceWeights),
			DurationSeconds: 5 + g.rng.Intn(596),
		})
	}

	slices.SortStableFunc(entries, func(a, b models.LogEntry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return entries
}
