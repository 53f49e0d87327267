package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmrzaf/fuzzdb/internal/domain"
)

func TestPrepare_ReplacesPreviousRun(t *testing.T) {
	base := t.TempDir()
	r := NewReporter(base, "testdb.sqlite")

	if err := r.Prepare(); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(r.ResultDir(), "stale.txt")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := r.Prepare(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatal("previous run's files survived Prepare")
	}
}

func TestResultDir_StripsExtension(t *testing.T) {
	r := NewReporter("/results", "testdb.sqlite")
	if got := r.ResultDir(); got != filepath.Join("/results", "testdb") {
		t.Fatalf("ResultDir = %q", got)
	}
}

func TestFinalize_WritesSortedUsageLogAndManifest(t *testing.T) {
	r := NewReporter(t.TempDir(), "testdb.sqlite")
	if err := r.Prepare(); err != nil {
		t.Fatal(err)
	}

	r.Record(
		domain.UsageRecord{Generator: "name", Table: "table2", Column: "nme"},
		domain.UsageRecord{Generator: "age", Table: "table1", Column: "age"},
		domain.UsageRecord{Generator: "city", Table: "table1", Column: "city_1"},
	)

	run := NewRun("testdb", "default", 42, "deadbeef")
	if err := r.Finalize(run); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(r.ResultDir(), "testdb_generators.txt"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	want := []string{
		"age: table1.age",
		"city: table1.city_1",
		"name: table2.nme",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}

	manifest, err := os.ReadFile(filepath.Join(r.ResultDir(), "manifest.json"))
	if err != nil {
		t.Fatal(err)
	}
	var decoded domain.Run
	if err := json.Unmarshal(manifest, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Database != "testdb" || decoded.Seed != 42 || decoded.ConfigHash != "deadbeef" {
		t.Fatalf("manifest round trip: %+v", decoded)
	}
	if decoded.ID == "" {
		t.Fatal("manifest run has no ID")
	}
}

func TestNewRun_UniqueIDs(t *testing.T) {
	a := NewRun("db", "default", 1, "h")
	b := NewRun("db", "default", 1, "h")
	if a.ID == b.ID {
		t.Fatal("two runs share an ID")
	}
}
