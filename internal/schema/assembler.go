package schema

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mmrzaf/fuzzdb/internal/catalog"
	"github.com/mmrzaf/fuzzdb/internal/domain"
	"github.com/mmrzaf/fuzzdb/internal/generators"
	"github.com/mmrzaf/fuzzdb/internal/logging"
	"github.com/mmrzaf/fuzzdb/internal/manipulate"
	"github.com/mmrzaf/fuzzdb/internal/naming"
)

// ErrNameSpaceExhausted is returned when collision resolution cannot find a
// free column name within the attempt cap.
var ErrNameSpaceExhausted = errors.New("column name space exhausted")

const maxNameAttempts = 1000

// IdentityColumn is the auto-incrementing primary key every table gets,
// outside generator assignment and manipulation.
const IdentityColumn = "id"

// Assembler builds table definitions and their row sequences.
//
// RNG consumption order is fixed so that a seed fully determines the output:
// per column, selector draw, then name-pool draw, then mutation edits; per
// row cell, raw production, then manipulator rolls.
type Assembler struct {
	selector *catalog.Selector
	mutator  *naming.Mutator
	pipeline *manipulate.Pipeline
	logger   *logging.Logger
}

func NewAssembler(selector *catalog.Selector, mutator *naming.Mutator, pipeline *manipulate.Pipeline, logger *logging.Logger) *Assembler {
	return &Assembler{
		selector: selector,
		mutator:  mutator,
		pipeline: pipeline,
		logger:   logger,
	}
}

// Table is one assembled table: the sink-facing definition plus the
// generator bindings the row loop needs.
type Table struct {
	Def   *domain.TableDefinition
	Usage []domain.UsageRecord

	columnGens []generators.Generator
}

// BuildTable assembles the identity column plus columnCount generator-backed
// columns with collision-free names.
func (a *Assembler) BuildTable(rng *rand.Rand, tableName string, columnCount int) (*Table, error) {
	table := &Table{
		Def: &domain.TableDefinition{
			Name:     tableName,
			IDColumn: IdentityColumn,
			Columns:  make([]domain.ColumnDefinition, 0, columnCount),
		},
		Usage:      make([]domain.UsageRecord, 0, columnCount),
		columnGens: make([]generators.Generator, 0, columnCount),
	}

	used := map[string]struct{}{IdentityColumn: {}}

	for i := 0; i < columnCount; i++ {
		gen := a.selector.Pick(rng)

		name, err := a.uniqueColumnName(rng, gen, used)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", tableName, err)
		}
		used[name] = struct{}{}

		table.Def.Columns = append(table.Def.Columns, domain.ColumnDefinition{
			Name:      name,
			Generator: gen.Name(),
			Category:  gen.Category(),
		})
		table.columnGens = append(table.columnGens, gen)
		table.Usage = append(table.Usage, domain.UsageRecord{
			Generator: gen.Name(),
			Table:     tableName,
			Column:    name,
		})
	}

	return table, nil
}

// uniqueColumnName draws and mutates a candidate name; on collision it
// re-draws from the same generator's pool and appends an incrementing
// numeric suffix until the name is unique within the table.
func (a *Assembler) uniqueColumnName(rng *rand.Rand, gen generators.Generator, used map[string]struct{}) (string, error) {
	pool := gen.ColumnNames()
	name := a.mutator.Mutate(rng, pool[rng.Intn(len(pool))])

	counter := 1
	for attempts := 0; ; attempts++ {
		if _, taken := used[name]; !taken {
			return name, nil
		}
		if attempts >= maxNameAttempts {
			return "", fmt.Errorf("%w: generator %s after %d attempts", ErrNameSpaceExhausted, gen.Name(), attempts)
		}
		redrawn := a.mutator.Mutate(rng, pool[rng.Intn(len(pool))])
		name = fmt.Sprintf("%s_%d", redrawn, counter)
		counter++
	}
}

// Rows returns a lazy, finite sequence of rowCount value tuples. Cell order
// matches Def.Columns; the identity column is excluded (sink-generated).
func (a *Assembler) Rows(rng *rand.Rand, table *Table, rowCount int64) *RowIterator {
	return &RowIterator{
		assembler: a,
		table:     table,
		rng:       rng,
		remaining: rowCount,
	}
}

// RowIterator produces rows one at a time so sinks can batch without the
// whole table materializing in memory.
type RowIterator struct {
	assembler *Assembler
	table     *Table
	rng       *rand.Rand
	remaining int64
}

func (it *RowIterator) Next() ([]interface{}, bool) {
	if it.remaining <= 0 {
		return nil, false
	}
	it.remaining--

	row := make([]interface{}, len(it.table.columnGens))
	for i, gen := range it.table.columnGens {
		col := it.table.Def.Columns[i]

		value, err := gen.Generate(it.rng)
		if err != nil {
			// One broken generator degrades its cell to NULL; it never
			// fails the table.
			it.assembler.logger.Warn("value production failed for %s.%s (%s): %v",
				it.table.Def.Name, col.Name, col.Generator, err)
			row[i] = nil
			continue
		}
		row[i] = it.assembler.pipeline.Apply(it.rng, value, col.Category)
	}
	return row, true
}
