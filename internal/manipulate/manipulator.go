package manipulate

import (
	"fmt"

	"github.com/mmrzaf/fuzzdb/internal/domain"
)

// Kind tags one perturbation transform.
type Kind string

const (
	KindNull          Kind = "NULL"
	KindUppercase     Kind = "UPPERCASE"
	KindLowercase     Kind = "LOWERCASE"
	KindTruncate      Kind = "TRUNCATE"
	KindPrefix        Kind = "PREFIX"
	KindSuffix        Kind = "SUFFIX"
	KindMultiply      Kind = "MULTIPLY"
	KindAddOffset     Kind = "ADD_OFFSET"
	KindRoundDecimals Kind = "ROUND_DECIMALS"
)

// Params are the per-kind knobs. Nil Multiplier and Decimals mean unset and
// take the transform defaults; an explicit zero is applied as configured.
type Params struct {
	MaxLength  int
	Prefix     string
	Suffix     string
	Multiplier *float64
	Offset     float64
	Decimals   *int
}

// Manipulator is one probabilistic perturbation unit. Immutable once built;
// the trigger probability is rolled per value by the pipeline.
type Manipulator struct {
	Kind        Kind
	Probability float64
	Params      Params
}

// FromSpec builds manipulators from profile configuration.
func FromSpec(specs []domain.ManipulatorSpec) ([]Manipulator, error) {
	out := make([]Manipulator, 0, len(specs))
	for _, spec := range specs {
		kind := Kind(spec.Kind)
		if !kind.valid() {
			return nil, fmt.Errorf("unknown manipulator kind: %s", spec.Kind)
		}
		if spec.Probability < 0 || spec.Probability > 1 {
			return nil, fmt.Errorf("manipulator %s: probability %v out of [0,1]", spec.Kind, spec.Probability)
		}
		m := Manipulator{Kind: kind, Probability: spec.Probability}
		if spec.Params != nil {
			m.Params = Params{
				MaxLength: spec.Params.MaxLength,
				Prefix:    spec.Params.Prefix,
				Suffix:    spec.Params.Suffix,
				Offset:    spec.Params.Offset,
			}
			if spec.Params.Multiplier != nil {
				v := *spec.Params.Multiplier
				m.Params.Multiplier = &v
			}
			if spec.Params.Decimals != nil {
				v := *spec.Params.Decimals
				m.Params.Decimals = &v
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func (k Kind) valid() bool {
	switch k {
	case KindNull, KindUppercase, KindLowercase, KindTruncate, KindPrefix,
		KindSuffix, KindMultiply, KindAddOffset, KindRoundDecimals:
		return true
	}
	return false
}

// AppliesTo reports whether the transform is defined for the category.
func (m Manipulator) AppliesTo(cat domain.Category) bool {
	switch m.Kind {
	case KindNull:
		return true
	case KindUppercase, KindLowercase, KindTruncate, KindPrefix, KindSuffix:
		return cat == domain.CategoryText
	case KindMultiply, KindAddOffset:
		return cat == domain.CategoryInteger || cat == domain.CategoryReal
	case KindRoundDecimals:
		return cat == domain.CategoryReal
	}
	return false
}
