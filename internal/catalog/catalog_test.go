package catalog

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/mmrzaf/fuzzdb/internal/domain"
)

func TestDefaultCatalog_Integrity(t *testing.T) {
	cat := Default()

	seen := make(map[string]bool)
	for _, g := range cat.All() {
		if g.Name() == "" {
			t.Fatal("generator with empty name")
		}
		if seen[g.Name()] {
			t.Fatalf("duplicate generator name: %s", g.Name())
		}
		seen[g.Name()] = true

		if !g.Category().Valid() {
			t.Fatalf("generator %s: invalid category %q", g.Name(), g.Category())
		}
		if len(g.ColumnNames()) == 0 {
			t.Fatalf("generator %s: empty column name pool", g.Name())
		}
	}

	for _, cat2 := range []domain.Category{domain.CategoryText, domain.CategoryInteger, domain.CategoryReal} {
		if len(cat.ByCategory(cat2)) == 0 {
			t.Fatalf("no variants for category %s", cat2)
		}
	}
}

func TestDefaultCatalog_ValueTypesMatchCategory(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, g := range Default().All() {
		for i := 0; i < 20; i++ {
			v, err := g.Generate(rng)
			if err != nil {
				t.Fatalf("generator %s: %v", g.Name(), err)
			}
			switch g.Category() {
			case domain.CategoryText:
				if _, ok := v.(string); !ok {
					t.Fatalf("generator %s: expected string, got %T", g.Name(), v)
				}
			case domain.CategoryInteger:
				if _, ok := v.(int64); !ok {
					t.Fatalf("generator %s: expected int64, got %T", g.Name(), v)
				}
			case domain.CategoryReal:
				if _, ok := v.(float64); !ok {
					t.Fatalf("generator %s: expected float64, got %T", g.Name(), v)
				}
			}
		}
	}
}

func TestByName(t *testing.T) {
	cat := Default()

	g, err := cat.ByName("age")
	if err != nil {
		t.Fatal(err)
	}
	if g.Category() != domain.CategoryInteger {
		t.Fatalf("expected INTEGER for age, got %s", g.Category())
	}

	if _, err := cat.ByName("no_such_generator"); !errors.Is(err, ErrUnknownGenerator) {
		t.Fatalf("expected ErrUnknownGenerator, got %v", err)
	}
}
