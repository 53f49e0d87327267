package generators

import (
	"math"
	"math/rand"

	"github.com/go-faker/faker/v4/pkg/options"
	"github.com/mmrzaf/fuzzdb/internal/domain"
)

// Generator is one semantic data domain: a stable identity, a scalar
// category, a pool of candidate column names, and a raw-value production
// function. All randomness comes from the injected *rand.Rand.
type Generator interface {
	Name() string
	Category() domain.Category
	ColumnNames() []string
	Generate(rng *rand.Rand) (interface{}, error)
}

// definition is the single concrete Generator implementation. The catalog is
// a fixed, curated list of definitions; there is no open registration.
type definition struct {
	name     string
	category domain.Category
	names    []string
	produce  func(rng *rand.Rand) (interface{}, error)
}

func (d *definition) Name() string              { return d.name }
func (d *definition) Category() domain.Category { return d.category }
func (d *definition) ColumnNames() []string     { return d.names }

func (d *definition) Generate(rng *rand.Rand) (interface{}, error) {
	return d.produce(rng)
}

func fromPool(values ...string) func(*rand.Rand) (interface{}, error) {
	return func(rng *rand.Rand) (interface{}, error) {
		return values[rng.Intn(len(values))], nil
	}
}

func fromFaker(fn func(opts ...options.OptionFunc) string) func(*rand.Rand) (interface{}, error) {
	return func(_ *rand.Rand) (interface{}, error) {
		return fn(), nil
	}
}

// intBetween draws uniformly from [min, max] inclusive.
func intBetween(min, max int64) func(*rand.Rand) (interface{}, error) {
	return func(rng *rand.Rand) (interface{}, error) {
		return min + rng.Int63n(max-min+1), nil
	}
}

func realBetween(min, max float64, decimals int) func(*rand.Rand) (interface{}, error) {
	return func(rng *rand.Rand) (interface{}, error) {
		return roundTo(min+rng.Float64()*(max-min), decimals), nil
	}
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// All returns the full catalog in registration order. The list is the
// compile-time-known set of variants; callers index it through
// catalog.Catalog rather than scanning it directly.
func All() []Generator {
	gens := make([]Generator, 0, len(textGenerators)+len(integerGenerators)+len(realGenerators))
	for _, d := range textGenerators {
		gens = append(gens, d)
	}
	for _, d := range integerGenerators {
		gens = append(gens, d)
	}
	for _, d := range realGenerators {
		gens = append(gens, d)
	}
	return gens
}
