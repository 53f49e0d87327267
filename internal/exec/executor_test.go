package exec

import (
	"io"
	"reflect"
	"testing"

	"github.com/mmrzaf/fuzzdb/internal/catalog"
	"github.com/mmrzaf/fuzzdb/internal/domain"
	"github.com/mmrzaf/fuzzdb/internal/logging"
	"github.com/mmrzaf/fuzzdb/internal/report"
)

type memoryTarget struct {
	created []*domain.TableDefinition
	rows    map[string][][]interface{}
}

func newMemoryTarget() *memoryTarget {
	return &memoryTarget{rows: make(map[string][][]interface{})}
}

func (t *memoryTarget) Connect() error { return nil }
func (t *memoryTarget) Close() error   { return nil }

func (t *memoryTarget) CreateTable(def *domain.TableDefinition) error {
	t.created = append(t.created, def)
	return nil
}

func (t *memoryTarget) InsertBatch(tableName string, columns []string, rows [][]interface{}) error {
	batch := make([][]interface{}, len(rows))
	copy(batch, rows)
	t.rows[tableName] = append(t.rows[tableName], batch...)
	return nil
}

var _ Target = (*memoryTarget)(nil)

func testProfile() *domain.Profile {
	p := domain.DefaultProfile()
	p.Tables = domain.Range{Min: 2, Max: 2}
	p.Columns = domain.Range{Min: 3, Max: 3}
	p.Rows = domain.Range{Min: 5, Max: 5}
	return p
}

func TestExecute_PersistsEveryTable(t *testing.T) {
	logger := logging.NewLoggerTo(io.Discard, logging.LevelError)
	executor := NewExecutor(catalog.Default(), logger)

	target := newMemoryTarget()
	reporter := report.NewReporter(t.TempDir(), "testdb")
	if err := reporter.Prepare(); err != nil {
		t.Fatal(err)
	}

	stats, err := executor.Execute(target, reporter, testProfile(), 123)
	if err != nil {
		t.Fatal(err)
	}

	if stats.TablesGenerated != 2 {
		t.Fatalf("expected 2 tables, got %d", stats.TablesGenerated)
	}
	if stats.TotalRows != 10 {
		t.Fatalf("expected 10 total rows, got %d", stats.TotalRows)
	}
	if len(target.created) != 2 {
		t.Fatalf("expected 2 CREATE TABLE calls, got %d", len(target.created))
	}

	for _, def := range target.created {
		if def.IDColumn != "id" {
			t.Fatalf("table %s: identity column %q", def.Name, def.IDColumn)
		}
		if len(def.Columns) != 3 {
			t.Fatalf("table %s: %d columns", def.Name, len(def.Columns))
		}
		rows := target.rows[def.Name]
		if len(rows) != 5 {
			t.Fatalf("table %s: %d rows inserted", def.Name, len(rows))
		}
		for _, row := range rows {
			if len(row) != len(def.Columns) {
				t.Fatalf("table %s: row width %d vs %d columns", def.Name, len(row), len(def.Columns))
			}
		}
	}
}

func TestExecute_SameSeedSameSchema(t *testing.T) {
	logger := logging.NewLoggerTo(io.Discard, logging.LevelError)

	run := func() []*domain.TableDefinition {
		executor := NewExecutor(catalog.Default(), logger)
		target := newMemoryTarget()
		reporter := report.NewReporter(t.TempDir(), "testdb")
		if err := reporter.Prepare(); err != nil {
			t.Fatal(err)
		}
		if _, err := executor.Execute(target, reporter, testProfile(), 777); err != nil {
			t.Fatal(err)
		}
		return target.created
	}

	if first, second := run(), run(); !reflect.DeepEqual(first, second) {
		t.Fatal("same seed produced different schemas")
	}
}

func TestExecute_SameSeedSameRows(t *testing.T) {
	logger := logging.NewLoggerTo(io.Discard, logging.LevelError)

	run := func() *memoryTarget {
		executor := NewExecutor(catalog.Default(), logger)
		target := newMemoryTarget()
		reporter := report.NewReporter(t.TempDir(), "testdb")
		if err := reporter.Prepare(); err != nil {
			t.Fatal(err)
		}
		if _, err := executor.Execute(target, reporter, testProfile(), 424242); err != nil {
			t.Fatal(err)
		}
		return target
	}

	first, second := run(), run()
	if !reflect.DeepEqual(first.created, second.created) {
		t.Fatal("same seed produced different schemas")
	}
	if !reflect.DeepEqual(first.rows, second.rows) {
		t.Fatal("same seed produced different row values")
	}
}

func TestExecute_InvalidWeightsFailBeforeConnect(t *testing.T) {
	logger := logging.NewLoggerTo(io.Discard, logging.LevelError)
	executor := NewExecutor(catalog.Default(), logger)

	profile := testProfile()
	profile.Weights = domain.CategoryWeights{}

	reporter := report.NewReporter(t.TempDir(), "testdb")
	if _, err := executor.Execute(newMemoryTarget(), reporter, profile, 1); err == nil {
		t.Fatal("expected configuration error")
	}
}
