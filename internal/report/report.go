package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/mmrzaf/fuzzdb/internal/domain"
)

// Reporter collects generator usage records during a run and writes the
// result folder: one directory per database holding the usage log and a run
// manifest.
type Reporter struct {
	databaseName string
	resultDir    string
	records      []domain.UsageRecord
}

func NewReporter(resultsBase, databaseName string) *Reporter {
	name := strings.TrimSuffix(filepath.Base(databaseName), ".sqlite")
	return &Reporter{
		databaseName: name,
		resultDir:    filepath.Join(resultsBase, name),
	}
}

// Prepare creates a fresh result folder, replacing any previous run's folder
// for the same database.
func (r *Reporter) Prepare() error {
	if err := os.RemoveAll(r.resultDir); err != nil {
		return err
	}
	return os.MkdirAll(r.resultDir, 0o755)
}

func (r *Reporter) ResultDir() string {
	return r.resultDir
}

// Record appends one usage record. No ordering is guaranteed beyond one
// record per non-identity column per table build.
func (r *Reporter) Record(records ...domain.UsageRecord) {
	r.records = append(r.records, records...)
}

// NewRun allocates a run identity for the manifest.
func NewRun(database, profileName string, seed int64, configHash string) *domain.Run {
	return &domain.Run{
		ID:          uuid.NewString(),
		Database:    database,
		ProfileName: profileName,
		Seed:        seed,
		ConfigHash:  configHash,
	}
}

// Finalize writes the usage log and the run manifest.
func (r *Reporter) Finalize(run *domain.Run) error {
	if err := r.writeUsageLog(); err != nil {
		return err
	}
	return r.writeManifest(run)
}

func (r *Reporter) writeUsageLog() error {
	lines := make([]string, 0, len(r.records))
	for _, rec := range r.records {
		lines = append(lines, fmt.Sprintf("%s: %s.%s", rec.Generator, rec.Table, rec.Column))
	}
	sort.Strings(lines)

	path := filepath.Join(r.resultDir, r.databaseName+"_generators.txt")
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}

func (r *Reporter) writeManifest(run *domain.Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.resultDir, "manifest.json"), data, 0o644)
}
