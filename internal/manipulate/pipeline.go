package manipulate

import (
	"math"
	"math/rand"
	"strings"

	"github.com/mmrzaf/fuzzdb/internal/domain"
)

const defaultTruncateLength = 10

// Pipeline applies at most one perturbation to a generated value; transforms
// never compound within a single cell.
type Pipeline struct {
	manipulators []Manipulator
}

func NewPipeline(manipulators []Manipulator) *Pipeline {
	return &Pipeline{manipulators: manipulators}
}

// Apply perturbs value according to the configured manipulator set.
//
// RNG consumption order is fixed for reproducibility: every applicable NULL
// manipulator is rolled first, in declaration order; if any fired the result
// is nil and nothing else is rolled. Otherwise the remaining applicable
// manipulators are rolled in declaration order and exactly one of those that
// fired is chosen uniformly and applied.
func (p *Pipeline) Apply(rng *rand.Rand, value interface{}, cat domain.Category) interface{} {
	applicable := make([]Manipulator, 0, len(p.manipulators))
	for _, m := range p.manipulators {
		if m.AppliesTo(cat) {
			applicable = append(applicable, m)
		}
	}

	nullFired := false
	for _, m := range applicable {
		if m.Kind == KindNull && rng.Float64() < m.Probability {
			nullFired = true
		}
	}
	if nullFired {
		return nil
	}

	var eligible []Manipulator
	for _, m := range applicable {
		if m.Kind == KindNull {
			continue
		}
		if rng.Float64() < m.Probability {
			eligible = append(eligible, m)
		}
	}
	if len(eligible) == 0 {
		return value
	}

	return eligible[rng.Intn(len(eligible))].transform(value)
}

// transform applies the kind's edit. Values outside the transform's domain
// pass through untouched; the category filter keeps that case from arising
// in the pipeline.
func (m Manipulator) transform(value interface{}) interface{} {
	switch m.Kind {
	case KindNull:
		return nil

	case KindUppercase:
		if s, ok := value.(string); ok {
			return strings.ToUpper(s)
		}

	case KindLowercase:
		if s, ok := value.(string); ok {
			return strings.ToLower(s)
		}

	case KindTruncate:
		if s, ok := value.(string); ok {
			max := m.Params.MaxLength
			if max <= 0 {
				max = defaultTruncateLength
			}
			runes := []rune(s)
			if len(runes) > max {
				return string(runes[:max])
			}
			return s
		}

	case KindPrefix:
		if s, ok := value.(string); ok {
			prefix := m.Params.Prefix
			if prefix == "" {
				prefix = "PREFIX_"
			}
			return prefix + s
		}

	case KindSuffix:
		if s, ok := value.(string); ok {
			suffix := m.Params.Suffix
			if suffix == "" {
				suffix = "_SUFFIX"
			}
			return s + suffix
		}

	case KindMultiply:
		multiplier := 1.0
		if m.Params.Multiplier != nil {
			multiplier = *m.Params.Multiplier
		}
		switch v := value.(type) {
		case int64:
			return collapseWhole(float64(v) * multiplier)
		case float64:
			return v * multiplier
		}

	case KindAddOffset:
		switch v := value.(type) {
		case int64:
			return collapseWhole(float64(v) + m.Params.Offset)
		case float64:
			return v + m.Params.Offset
		}

	case KindRoundDecimals:
		if v, ok := value.(float64); ok {
			decimals := 2
			if m.Params.Decimals != nil {
				decimals = *m.Params.Decimals
			}
			pow := math.Pow(10, float64(decimals))
			return math.Round(v*pow) / pow
		}
	}

	return value
}

// collapseWhole keeps integer-typed inputs integer-typed when the arithmetic
// lands on a whole number.
func collapseWhole(v float64) interface{} {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return int64(v)
	}
	return v
}
