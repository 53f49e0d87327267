package catalog

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/mmrzaf/fuzzdb/internal/domain"
	"github.com/mmrzaf/fuzzdb/internal/generators"
)

// ErrNoGeneratorForCategory is a configuration error: a category carries
// positive weight but the catalog holds no variants for it. Surfaced at
// selector construction, never at generation time.
var ErrNoGeneratorForCategory = errors.New("no generator registered for category")

// ErrNoPositiveWeight is a configuration error: every category weight is zero.
var ErrNoPositiveWeight = errors.New("at least one category weight must be positive")

// ballotResolution turns weights into ticket counts; 10 tickets per weight
// unit gives one decimal place of granularity.
const ballotResolution = 10

// Selector picks a generator for a new column: first a category by weighted
// ticket draw, then a uniform draw among that category's variants.
type Selector struct {
	catalog *Catalog
	ballot  []domain.Category
}

func NewSelector(c *Catalog, weights domain.CategoryWeights) (*Selector, error) {
	entries := []struct {
		category domain.Category
		weight   float64
	}{
		{domain.CategoryText, weights.Text},
		{domain.CategoryInteger, weights.Integer},
		{domain.CategoryReal, weights.Real},
	}

	var ballot []domain.Category
	for _, e := range entries {
		if e.weight < 0 {
			return nil, fmt.Errorf("negative weight for category %s: %v", e.category, e.weight)
		}
		tickets := int(math.Round(e.weight * ballotResolution))
		if tickets == 0 {
			continue
		}
		if len(c.ByCategory(e.category)) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoGeneratorForCategory, e.category)
		}
		for i := 0; i < tickets; i++ {
			ballot = append(ballot, e.category)
		}
	}

	if len(ballot) == 0 {
		return nil, ErrNoPositiveWeight
	}

	return &Selector{catalog: c, ballot: ballot}, nil
}

// Pick consumes exactly two draws from rng: one ticket, one variant.
func (s *Selector) Pick(rng *rand.Rand) generators.Generator {
	category := s.ballot[rng.Intn(len(s.ballot))]
	variants := s.catalog.ByCategory(category)
	return variants[rng.Intn(len(variants))]
}
