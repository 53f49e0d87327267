package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"FUZZDB_RESULTS_DIR", "FUZZDB_PROFILES_DIR", "FUZZDB_LOG_LEVEL",
		"FUZZDB_TARGET_KIND", "FUZZDB_TARGET_DSN",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ResultsDir != "./results" {
		t.Errorf("ResultsDir = %q", cfg.ResultsDir)
	}
	if cfg.ProfilesDir != "./profiles" {
		t.Errorf("ProfilesDir = %q", cfg.ProfilesDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.TargetKind != "sqlite" {
		t.Errorf("TargetKind = %q", cfg.TargetKind)
	}
	if cfg.TargetDSN != "" {
		t.Errorf("TargetDSN = %q", cfg.TargetDSN)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FUZZDB_RESULTS_DIR", "/tmp/out")
	t.Setenv("FUZZDB_LOG_LEVEL", "debug")
	t.Setenv("FUZZDB_TARGET_KIND", "postgres")
	t.Setenv("FUZZDB_TARGET_DSN", "postgres://localhost/fuzz")

	cfg := Load()
	if cfg.ResultsDir != "/tmp/out" {
		t.Errorf("ResultsDir = %q", cfg.ResultsDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.TargetKind != "postgres" {
		t.Errorf("TargetKind = %q", cfg.TargetKind)
	}
	if cfg.TargetDSN != "postgres://localhost/fuzz" {
		t.Errorf("TargetDSN = %q", cfg.TargetDSN)
	}
}
