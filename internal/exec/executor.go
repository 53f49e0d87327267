package exec

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/mmrzaf/fuzzdb/internal/catalog"
	"github.com/mmrzaf/fuzzdb/internal/domain"
	"github.com/mmrzaf/fuzzdb/internal/logging"
	"github.com/mmrzaf/fuzzdb/internal/manipulate"
	"github.com/mmrzaf/fuzzdb/internal/naming"
	"github.com/mmrzaf/fuzzdb/internal/report"
	"github.com/mmrzaf/fuzzdb/internal/schema"
)

// Target persists assembled schemas and row batches. Transactions and
// anything beyond the fixed batch size are the sink's concern.
type Target interface {
	Connect() error
	Close() error
	CreateTable(def *domain.TableDefinition) error
	InsertBatch(tableName string, columns []string, rows [][]interface{}) error
}

const batchSize = 1000

// Executor drives one full database generation run against a target.
type Executor struct {
	catalog *catalog.Catalog
	logger  *logging.Logger
}

func NewExecutor(cat *catalog.Catalog, logger *logging.Logger) *Executor {
	return &Executor{catalog: cat, logger: logger}
}

// Execute builds and persists every table of one run. All randomness flows
// from the single seeded rng; the faker source is pinned to the same seed so
// faker-backed text values reproduce too.
func (e *Executor) Execute(target Target, reporter *report.Reporter, profile *domain.Profile, seed int64) (*domain.RunStats, error) {
	selector, err := catalog.NewSelector(e.catalog, profile.Weights)
	if err != nil {
		return nil, err
	}
	manipulators, err := manipulate.FromSpec(profile.Manipulators)
	if err != nil {
		return nil, err
	}

	assembler := schema.NewAssembler(
		selector,
		naming.NewMutator(profile.Naming),
		manipulate.NewPipeline(manipulators),
		e.logger,
	)

	rng := rand.New(rand.NewSource(seed))
	faker.SetRandomSource(rand.NewSource(seed))

	if err := target.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to target: %w", err)
	}
	defer target.Close()

	stats := &domain.RunStats{}
	runStart := time.Now()

	numTables := drawRange(rng, profile.Tables)
	e.logger.Info("generating %d tables", numTables)

	for i := 1; i <= numTables; i++ {
		tableName := fmt.Sprintf("table%d", i)
		startTime := time.Now()

		numColumns := drawRange(rng, profile.Columns)
		table, err := assembler.BuildTable(rng, tableName, numColumns)
		if err != nil {
			return nil, fmt.Errorf("failed to assemble %s: %w", tableName, err)
		}
		reporter.Record(table.Usage...)

		if err := target.CreateTable(table.Def); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", tableName, err)
		}

		numRows := int64(drawRange(rng, profile.Rows))
		if err := e.insertRows(target, assembler, rng, table, numRows); err != nil {
			return nil, fmt.Errorf("failed to populate %s: %w", tableName, err)
		}

		duration := time.Since(startTime)
		e.logger.Info("table %s: %d columns, %d rows in %.2fs", tableName, numColumns, numRows, duration.Seconds())

		stats.TableStats = append(stats.TableStats, domain.TableRunStats{
			TableName:       tableName,
			Columns:         numColumns,
			RowsGenerated:   numRows,
			DurationSeconds: duration.Seconds(),
		})
		stats.TotalRows += numRows
	}

	stats.TablesGenerated = numTables
	stats.DurationSeconds = time.Since(runStart).Seconds()
	return stats, nil
}

func (e *Executor) insertRows(target Target, assembler *schema.Assembler, rng *rand.Rand, table *schema.Table, numRows int64) error {
	columns := table.Def.ColumnNames()
	batch := make([][]interface{}, 0, batchSize)

	it := assembler.Rows(rng, table, numRows)
	for {
		row, ok := it.Next()
		if !ok {
			break
		}
		batch = append(batch, row)

		if len(batch) >= batchSize {
			if err := target.InsertBatch(table.Def.Name, columns, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		return target.InsertBatch(table.Def.Name, columns, batch)
	}
	return nil
}

// drawRange picks uniformly from [min, max] inclusive.
func drawRange(rng *rand.Rand, r domain.Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}
