package catalog

import (
	"errors"
	"fmt"

	"github.com/mmrzaf/fuzzdb/internal/domain"
	"github.com/mmrzaf/fuzzdb/internal/generators"
)

// ErrUnknownGenerator is returned when a lookup names a generator identity
// that is not in the catalog. Recoverable: callers may substitute a
// placeholder rather than aborting the run.
var ErrUnknownGenerator = errors.New("unknown generator")

// Catalog indexes the fixed generator set by identity and by category.
// Built once at startup and read-only afterwards.
type Catalog struct {
	ordered    []generators.Generator
	byName     map[string]generators.Generator
	byCategory map[domain.Category][]generators.Generator
}

func New(gens []generators.Generator) *Catalog {
	c := &Catalog{
		ordered:    gens,
		byName:     make(map[string]generators.Generator, len(gens)),
		byCategory: make(map[domain.Category][]generators.Generator),
	}
	for _, g := range gens {
		c.byName[g.Name()] = g
		c.byCategory[g.Category()] = append(c.byCategory[g.Category()], g)
	}
	return c
}

// Default builds the catalog over the full compiled-in generator set.
func Default() *Catalog {
	return New(generators.All())
}

func (c *Catalog) ByName(name string) (generators.Generator, error) {
	g, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGenerator, name)
	}
	return g, nil
}

func (c *Catalog) ByCategory(cat domain.Category) []generators.Generator {
	return c.byCategory[cat]
}

func (c *Catalog) All() []generators.Generator {
	return c.ordered
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.ordered))
	for i, g := range c.ordered {
		names[i] = g.Name()
	}
	return names
}
