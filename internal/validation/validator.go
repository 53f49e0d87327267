package validation

import (
	"errors"
	"fmt"

	"github.com/mmrzaf/fuzzdb/internal/catalog"
	"github.com/mmrzaf/fuzzdb/internal/domain"
	"github.com/mmrzaf/fuzzdb/internal/manipulate"
)

// ValidateProfile checks the whole configuration surface up front so
// configuration errors abort before any table is built.
func ValidateProfile(p *domain.Profile, cat *catalog.Catalog) error {
	if p == nil {
		return errors.New("profile is required")
	}

	if err := validateRange("tables", p.Tables, 1); err != nil {
		return err
	}
	if err := validateRange("columns", p.Columns, 1); err != nil {
		return err
	}
	if err := validateRange("rows", p.Rows, 0); err != nil {
		return err
	}

	if err := validateWeights(p.Weights, cat); err != nil {
		return err
	}

	if err := validateNaming(p.Naming); err != nil {
		return err
	}

	if _, err := manipulate.FromSpec(p.Manipulators); err != nil {
		return err
	}

	return nil
}

func validateRange(field string, r domain.Range, min int) error {
	if r.Min < min {
		return fmt.Errorf("%s.min must be >= %d, got %d", field, min, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s.max (%d) must be >= %s.min (%d)", field, r.Max, field, r.Min)
	}
	return nil
}

func validateWeights(w domain.CategoryWeights, cat *catalog.Catalog) error {
	// NewSelector performs the authoritative checks (negative weights,
	// all-zero weights, positively-weighted category with no variants).
	_, err := catalog.NewSelector(cat, w)
	return err
}

func validateNaming(n domain.NamingConfig) error {
	if n.ModificationProbability < 0 || n.ModificationProbability > 1 {
		return fmt.Errorf("naming.modification_probability %v out of [0,1]", n.ModificationProbability)
	}
	if n.ModificationIntensity < 0 || n.ModificationIntensity > 1 {
		return fmt.Errorf("naming.modification_intensity %v out of [0,1]", n.ModificationIntensity)
	}
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"flip_weight", n.FlipWeight},
		{"add_weight", n.AddWeight},
		{"remove_weight", n.RemoveWeight},
		{"replace_weight", n.ReplaceWeight},
	} {
		if w.value < 0 {
			return fmt.Errorf("naming.%s must be non-negative, got %v", w.name, w.value)
		}
	}
	return nil
}
