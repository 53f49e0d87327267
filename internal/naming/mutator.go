package naming

import (
	"math/rand"

	"github.com/mmrzaf/fuzzdb/internal/domain"
)

type editKind int

const (
	editFlip editKind = iota
	editAdd
	editRemove
	editReplace
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	digits    = "0123456789"
)

// Mutator rewrites base column names with small character-level edits to
// simulate naming drift across systems. Inserted characters come only from
// [a-z0-9_], so a valid identifier stays a valid identifier.
type Mutator struct {
	cfg domain.NamingConfig
}

func NewMutator(cfg domain.NamingConfig) *Mutator {
	return &Mutator{cfg: cfg}
}

// Mutate returns the base name unchanged unless the modification gate fires.
// Names shorter than 2 runes are never touched. Uniqueness is the caller's
// concern.
func (m *Mutator) Mutate(rng *rand.Rand, name string) string {
	if len([]rune(name)) < 2 {
		return name
	}
	if rng.Float64() >= m.cfg.ModificationProbability {
		return name
	}

	numEdits := int(float64(len(name)) * m.cfg.ModificationIntensity * 0.3)
	if numEdits < 1 {
		numEdits = 1
	}

	mutated := name
	for i := 0; i < numEdits; i++ {
		mutated = m.applyEdit(rng, mutated, m.chooseEdit(rng))
	}
	return mutated
}

func (m *Mutator) chooseEdit(rng *rand.Rand) editKind {
	weights := []struct {
		kind   editKind
		weight float64
	}{
		{editFlip, m.cfg.FlipWeight},
		{editAdd, m.cfg.AddWeight},
		{editRemove, m.cfg.RemoveWeight},
		{editReplace, m.cfg.ReplaceWeight},
	}

	total := 0.0
	for _, w := range weights {
		total += w.weight
	}
	if total == 0 {
		return editFlip
	}

	draw := rng.Float64() * total
	cumulative := 0.0
	for _, w := range weights {
		cumulative += w.weight
		if draw <= cumulative {
			return w.kind
		}
	}
	return editFlip
}

func (m *Mutator) applyEdit(rng *rand.Rand, name string, kind editKind) string {
	chars := []rune(name)

	switch kind {
	case editFlip:
		if len(chars) < 2 {
			return name
		}
		pos := rng.Intn(len(chars) - 1)
		chars[pos], chars[pos+1] = chars[pos+1], chars[pos]

	case editAdd:
		pos := rng.Intn(len(chars) + 1)
		var ch rune
		switch rng.Intn(3) {
		case 0:
			ch = rune(lowercase[rng.Intn(len(lowercase))])
		case 1:
			ch = rune(digits[rng.Intn(len(digits))])
		default:
			ch = '_'
		}
		chars = append(chars[:pos], append([]rune{ch}, chars[pos:]...)...)

	case editRemove:
		// Interior positions only; keeps the name recognizable at the edges.
		if len(chars) <= 2 {
			return name
		}
		pos := 1 + rng.Intn(len(chars)-2)
		chars = append(chars[:pos], chars[pos+1:]...)

	case editReplace:
		pos := rng.Intn(len(chars))
		if rng.Intn(2) == 0 {
			chars[pos] = rune(lowercase[rng.Intn(len(lowercase))])
		} else {
			chars[pos] = rune(digits[rng.Intn(len(digits))])
		}
	}

	return string(chars)
}
