package domain

import (
	"encoding/json"
	"time"
)

// Category is the scalar kind of a generated value. The three categories map
// directly onto sink column types.
type Category string

const (
	CategoryText    Category = "TEXT"
	CategoryInteger Category = "INTEGER"
	CategoryReal    Category = "REAL"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryText, CategoryInteger, CategoryReal:
		return true
	}
	return false
}

// ColumnDefinition binds a final (possibly mutated) column name to the
// generator that owns it.
type ColumnDefinition struct {
	Name      string   `json:"name" yaml:"name"`
	Generator string   `json:"generator" yaml:"generator"`
	Category  Category `json:"category" yaml:"category"`
}

// TableDefinition is one assembled table: an auto-incrementing identity
// column plus the generator-backed columns, in assembly order. Immutable
// once built.
type TableDefinition struct {
	Name     string             `json:"name" yaml:"name"`
	IDColumn string             `json:"id_column" yaml:"id_column"`
	Columns  []ColumnDefinition `json:"columns" yaml:"columns"`
}

// ColumnNames returns the non-identity column names in table order, the
// shape sinks want for INSERT statements.
func (t *TableDefinition) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// UsageRecord logs which generator produced which column, one record per
// non-identity column, consumed by the reporter.
type UsageRecord struct {
	Generator string `json:"generator"`
	Table     string `json:"table"`
	Column    string `json:"column"`
}

type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

type CategoryWeights struct {
	Text    float64 `json:"text" yaml:"text"`
	Integer float64 `json:"integer" yaml:"integer"`
	Real    float64 `json:"real" yaml:"real"`
}

// NamingConfig controls column-name drift. Edit weights are relative and
// normalized at selection time.
type NamingConfig struct {
	ModificationProbability float64 `json:"modification_probability" yaml:"modification_probability"`
	ModificationIntensity   float64 `json:"modification_intensity" yaml:"modification_intensity"`
	FlipWeight              float64 `json:"flip_weight" yaml:"flip_weight"`
	AddWeight               float64 `json:"add_weight" yaml:"add_weight"`
	RemoveWeight            float64 `json:"remove_weight" yaml:"remove_weight"`
	ReplaceWeight           float64 `json:"replace_weight" yaml:"replace_weight"`
}

// ManipulatorSpec configures one perturbation unit.
type ManipulatorSpec struct {
	Kind        string             `json:"kind" yaml:"kind"`
	Probability float64            `json:"probability" yaml:"probability"`
	Params      *ManipulatorParams `json:"params,omitempty" yaml:"params,omitempty"`
}

// ManipulatorParams are the per-kind knobs. Multiplier and Decimals are
// pointers so an explicit zero in a profile is distinguishable from unset.
type ManipulatorParams struct {
	MaxLength  int      `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Prefix     string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix     string   `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Multiplier *float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	Offset     float64  `json:"offset,omitempty" yaml:"offset,omitempty"`
	Decimals   *int     `json:"decimals,omitempty" yaml:"decimals,omitempty"`
}

// Profile is the full configuration surface of one generation run.
type Profile struct {
	ID           string            `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string            `json:"name,omitempty" yaml:"name,omitempty"`
	Tables       Range             `json:"tables" yaml:"tables"`
	Columns      Range             `json:"columns" yaml:"columns"`
	Rows         Range             `json:"rows" yaml:"rows"`
	Weights      CategoryWeights   `json:"weights" yaml:"weights"`
	Naming       NamingConfig      `json:"naming" yaml:"naming"`
	Manipulators []ManipulatorSpec `json:"manipulators" yaml:"manipulators"`
	Seed         *int64            `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// DefaultProfile returns the configuration the tool ships with.
func DefaultProfile() *Profile {
	return &Profile{
		Name:    "default",
		Tables:  Range{Min: 6, Max: 8},
		Columns: Range{Min: 3, Max: 20},
		Rows:    Range{Min: 1000, Max: 10000},
		Weights: CategoryWeights{Text: 4.0, Integer: 3.0, Real: 1.0},
		Naming: NamingConfig{
			ModificationProbability: 0.2,
			ModificationIntensity:   0.3,
			FlipWeight:              0.4,
			AddWeight:               0.3,
			RemoveWeight:            0.2,
			ReplaceWeight:           0.1,
		},
		Manipulators: []ManipulatorSpec{
			{Kind: "NULL", Probability: 0.15},
			{Kind: "UPPERCASE", Probability: 0.10},
			{Kind: "LOWERCASE", Probability: 0.05},
		},
	}
}

type Run struct {
	ID          string          `json:"id"`
	Database    string          `json:"database"`
	ProfileName string          `json:"profile_name"`
	Seed        int64           `json:"seed"`
	ConfigHash  string          `json:"config_hash"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Stats       json.RawMessage `json:"stats,omitempty"`
}

type RunStats struct {
	TablesGenerated int             `json:"tables_generated"`
	TotalRows       int64           `json:"total_rows"`
	DurationSeconds float64         `json:"duration_seconds"`
	TableStats      []TableRunStats `json:"table_stats"`
}

type TableRunStats struct {
	TableName       string  `json:"table_name"`
	Columns         int     `json:"columns"`
	RowsGenerated   int64   `json:"rows_generated"`
	DurationSeconds float64 `json:"duration_seconds"`
}
