// Package generator produces the synthetic e-commerce dataset: a product
// catalog, user navigation logs, and purchase transactions.
package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Generator holds the entity pools and the seeded random stream all three
// generation routines consume. Calls advance shared state, so reproducing a
// dataset requires invoking the routines in the same order with the same
// seed, parameters, and reference time.
type Generator struct {
	pools      *Pools
	rng        *rand.Rand
	faker      *gofakeit.Faker
	now        time.Time
	purchasers []string
}

// New constructs a generator for the given pool sizes. All randomness flows
// from the single seed; the reference time for timestamp windows defaults to
// the current instant.
func New(numUsers, numProducts int, seed int64) *Generator {
	return &Generator{
		pools: NewPools(numUsers, numProducts),
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(uint64(seed)),
		now:   time.Now(),
	}
}

// Pools exposes the identifier lists, mainly for tests and callers that
// need to cross-check generated rows against the pools.
func (g *Generator) Pools() *Pools {
	return g.pools
}

// Purchasers returns the subset of users eligible to appear in transaction
// data: 30% of the pool, sampled once without replacement and fixed for the
// generator's lifetime.
func (g *Generator) Purchasers() []string {
	if g.purchasers == nil {
		k := int(math.Round(float64(len(g.pools.Users)) * 0.3))
		perm := g.rng.Perm(len(g.pools.Users))
		subset := make([]string, k)
		for i := 0; i < k; i++ {
			subset[i] = g.pools.Users[perm[i]]
		}
		g.purchasers = subset
	}
	return g.purchasers
}

// timestampIn samples a second-granularity instant uniformly over the
// trailing window of windowDays days ending at the reference time.
func (g *Generator) timestampIn(windowDays int) time.Time {
	window := int64(windowDays) * 24 * 60 * 60
	if window <= 0 {
		return g.now.Truncate(time.Second)
	}
	offset := g.rng.Int63n(window + 1)
	return g.now.Add(-time.Duration(offset) * time.Second).Truncate(time.Second)
}

// sessionID mints a fresh short session token. Tokens are independent per
// log row; sessions are not modeled as entities.
func (g *Generator) sessionID() string {
	id := uuid.Must(uuid.NewRandomFromReader(g.rng))
	return "session_" + id.String()[:8]
}

// transactionID mints a unique id per transaction line, drawn from the
// seeded stream so output stays reproducible.
func (g *Generator) transactionID() string {
	return uuid.Must(uuid.NewRandomFromReader(g.rng)).String()
}

// weightedChoice picks one option with probability proportional to its
// weight. Weights are percentage masses summing to 100, but any positive
// integers work.
func weightedChoice[T any](rng *rand.Rand, options []T, weights []int) T {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return options[i]
		}
		n -= w
	}
	return options[len(options)-1]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// priceIn samples a 2-decimal price uniformly in [lo, hi].
func (g *Generator) priceIn(lo, hi float64) float64 {
	return round2(lo + g.rng.Float64()*(hi-lo))
}
