package validation

import (
	"testing"

	"github.com/mmrzaf/fuzzdb/internal/catalog"
	"github.com/mmrzaf/fuzzdb/internal/domain"
)

func TestValidateProfile_DefaultIsValid(t *testing.T) {
	if err := ValidateProfile(domain.DefaultProfile(), catalog.Default()); err != nil {
		t.Fatalf("default profile rejected: %v", err)
	}
}

func TestValidateProfile_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *domain.Profile)
	}{
		{"tables min below 1", func(p *domain.Profile) { p.Tables.Min = 0 }},
		{"columns min below 1", func(p *domain.Profile) { p.Columns.Min = 0 }},
		{"inverted range", func(p *domain.Profile) { p.Rows = domain.Range{Min: 100, Max: 10} }},
		{"negative rows", func(p *domain.Profile) { p.Rows.Min = -1 }},
		{"all-zero weights", func(p *domain.Profile) { p.Weights = domain.CategoryWeights{} }},
		{"negative weight", func(p *domain.Profile) { p.Weights.Real = -1 }},
		{"naming probability above 1", func(p *domain.Profile) { p.Naming.ModificationProbability = 1.5 }},
		{"negative naming intensity", func(p *domain.Profile) { p.Naming.ModificationIntensity = -0.1 }},
		{"negative edit weight", func(p *domain.Profile) { p.Naming.AddWeight = -2 }},
		{"unknown manipulator kind", func(p *domain.Profile) {
			p.Manipulators = []domain.ManipulatorSpec{{Kind: "SHUFFLE", Probability: 0.1}}
		}},
		{"manipulator probability above 1", func(p *domain.Profile) {
			p.Manipulators = []domain.ManipulatorSpec{{Kind: "NULL", Probability: 2}}
		}},
	}

	cat := catalog.Default()
	for _, tc := range cases {
		p := domain.DefaultProfile()
		tc.mutate(p)
		if err := ValidateProfile(p, cat); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestValidateProfile_NilProfile(t *testing.T) {
	if err := ValidateProfile(nil, catalog.Default()); err == nil {
		t.Fatal("expected error for nil profile")
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"testdb", "my_db", "_internal", "db2", "A"}
	for _, s := range valid {
		if !IsValidIdentifier(s) {
			t.Errorf("%q rejected", s)
		}
	}

	invalid := []string{"", "  ", "2db", "my-db", "my db", "db;drop", "select", "TABLE", "café"}
	for _, s := range invalid {
		if IsValidIdentifier(s) {
			t.Errorf("%q accepted", s)
		}
	}
}
