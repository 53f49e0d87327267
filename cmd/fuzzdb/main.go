package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mmrzaf/fuzzdb/internal/catalog"
	"github.com/mmrzaf/fuzzdb/internal/config"
	"github.com/mmrzaf/fuzzdb/internal/domain"
	"github.com/mmrzaf/fuzzdb/internal/exec"
	"github.com/mmrzaf/fuzzdb/internal/hashing"
	"github.com/mmrzaf/fuzzdb/internal/infra/repos/profiles"
	"github.com/mmrzaf/fuzzdb/internal/infra/targets/postgres"
	"github.com/mmrzaf/fuzzdb/internal/infra/targets/sqlite"
	"github.com/mmrzaf/fuzzdb/internal/logging"
	"github.com/mmrzaf/fuzzdb/internal/report"
	"github.com/mmrzaf/fuzzdb/internal/validation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	resultsDir  string
	profilesDir string
	logLevel    string
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "fuzzdb",
		Short: "Randomized relational test database generator",
	}

	rootCmd.PersistentFlags().StringVar(&resultsDir, "results-dir", cfg.ResultsDir, "Results directory")
	rootCmd.PersistentFlags().StringVar(&profilesDir, "profiles-dir", cfg.ProfilesDir, "Profiles directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(generateCmd(cfg))
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(generatorsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd(cfg *config.Config) *cobra.Command {
	var (
		profileID   string
		profilePath string
		targetKind  string
		targetDSN   string
		seed        int64
		hasSeed     bool
	)

	cmd := &cobra.Command{
		Use:   "generate <database>",
		Short: "Generate a randomized test database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(logLevel)

			dbName := args[0]
			if !strings.HasSuffix(dbName, ".sqlite") && targetKind == "sqlite" {
				dbName += ".sqlite"
			}
			base := strings.TrimSuffix(filepath.Base(dbName), ".sqlite")
			if !validation.IsValidIdentifier(base) {
				return fmt.Errorf("invalid database name: %s", base)
			}

			profile, err := resolveProfile(profileID, profilePath)
			if err != nil {
				return err
			}

			cat := catalog.Default()
			if err := validation.ValidateProfile(profile, cat); err != nil {
				return fmt.Errorf("invalid profile: %w", err)
			}

			resolvedSeed := time.Now().UnixNano()
			if hasSeed {
				resolvedSeed = seed
			} else if profile.Seed != nil {
				resolvedSeed = *profile.Seed
			}

			configHash, err := hashing.HashRunConfig(profile, resolvedSeed)
			if err != nil {
				return err
			}

			reporter := report.NewReporter(resultsDir, dbName)
			if err := reporter.Prepare(); err != nil {
				return err
			}

			var target exec.Target
			switch targetKind {
			case "sqlite":
				target = sqlite.NewSQLiteTarget(filepath.Join(reporter.ResultDir(), base+".sqlite"))
			case "postgres":
				if targetDSN == "" {
					return fmt.Errorf("--target DSN required for postgres")
				}
				target = postgres.NewPostgresTarget(targetDSN)
			default:
				return fmt.Errorf("unknown target kind: %s", targetKind)
			}

			run := report.NewRun(dbName, profile.Name, resolvedSeed, configHash)
			run.StartedAt = time.Now()

			executor := exec.NewExecutor(cat, logger)
			stats, err := executor.Execute(target, reporter, profile, resolvedSeed)
			if err != nil {
				return err
			}

			completed := time.Now()
			run.CompletedAt = &completed
			run.Stats, _ = json.Marshal(stats)

			if err := reporter.Finalize(run); err != nil {
				return err
			}

			fmt.Printf("Database generation completed\n")
			fmt.Printf("Run: %s (seed %d)\n", run.ID, resolvedSeed)
			fmt.Printf("Tables: %d, total rows: %d, duration: %.2fs\n",
				stats.TablesGenerated, stats.TotalRows, stats.DurationSeconds)
			fmt.Printf("Results: %s\n", reporter.ResultDir())
			return nil
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID or name")
	cmd.Flags().StringVar(&profilePath, "profile-path", "", "Profile file path")
	cmd.Flags().StringVar(&targetKind, "target-kind", cfg.TargetKind, "Target kind (sqlite|postgres)")
	cmd.Flags().StringVar(&targetDSN, "target", cfg.TargetDSN, "Target DSN (postgres)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed for RNG")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		hasSeed = cmd.Flags().Changed("seed")
	}

	return cmd
}

func resolveProfile(profileID, profilePath string) (*domain.Profile, error) {
	repo := profiles.NewFileRepository(profilesDir)
	if profilePath != "" {
		return repo.GetByPath(profilePath)
	}
	if profileID != "" {
		return repo.Get(profileID)
	}
	return domain.DefaultProfile(), nil
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <database>",
		Short: "Show tables, columns and row counts of a generated database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !strings.HasSuffix(path, ".sqlite") {
				path += ".sqlite"
			}
			if _, err := os.Stat(path); err != nil {
				return err
			}

			target := sqlite.NewSQLiteTarget(path)
			if err := target.Connect(); err != nil {
				return err
			}
			defer target.Close()

			infos, err := target.Describe()
			if err != nil {
				return err
			}

			var totalRows int64
			for _, info := range infos {
				fmt.Printf("\nTable: %s\n", info.Name)
				fmt.Printf("  Rows: %d\n", info.Rows)
				fmt.Printf("  Columns: %d\n", len(info.Columns))
				for _, col := range info.Columns {
					fmt.Printf("    - %s (%s)\n", col.Name, col.Type)
				}
				totalRows += info.Rows
			}
			fmt.Printf("\nTotal tables: %d\n", len(infos))
			fmt.Printf("Total rows: %d\n", totalRows)
			return nil
		},
	}
}

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage generation profiles",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := profiles.NewFileRepository(profilesDir)
			list, err := repo.List()
			if err != nil {
				return err
			}

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTABLES\tCOLUMNS\tROWS")
			for _, p := range list {
				fmt.Fprintf(w, "%s\t%s\t%d-%d\t%d-%d\t%d-%d\n",
					p.ID, p.Name, p.Tables.Min, p.Tables.Max,
					p.Columns.Min, p.Columns.Max, p.Rows.Min, p.Rows.Max)
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a profile (defaults when no id given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var profile *domain.Profile
			var err error

			if len(args) == 0 {
				profile = domain.DefaultProfile()
			} else {
				profile, err = resolveProfileArg(args[0])
				if err != nil {
					return err
				}
			}

			data, _ := yaml.Marshal(profile)
			fmt.Println(string(data))
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <id|path>",
		Short: "Validate a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfileArg(args[0])
			if err != nil {
				return err
			}

			if err := validation.ValidateProfile(profile, catalog.Default()); err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}

			fmt.Printf("Profile '%s' is valid\n", profile.Name)
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd, validateCmd)
	return cmd
}

func resolveProfileArg(arg string) (*domain.Profile, error) {
	repo := profiles.NewFileRepository(profilesDir)
	if strings.Contains(arg, "/") || strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") || strings.HasSuffix(arg, ".json") {
		return repo.GetByPath(arg)
	}
	return repo.Get(arg)
}

func generatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generators",
		Short: "Inspect the generator catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available generators",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tCOLUMN NAMES")
			for _, g := range catalog.Default().All() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", g.Name(), g.Category(), len(g.ColumnNames()))
			}
			w.Flush()
			return nil
		},
	}

	cmd.AddCommand(listCmd)
	return cmd
}
