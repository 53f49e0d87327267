package hashing

import (
	"testing"

	"github.com/mmrzaf/fuzzdb/internal/domain"
)

func TestHashRunConfig_Stable(t *testing.T) {
	p := domain.DefaultProfile()

	h1, err := HashRunConfig(p, 42)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashRunConfig(domain.DefaultProfile(), 42)
	if err != nil {
		t.Fatal(err)
	}

	if h1 != h2 {
		t.Fatalf("equal inputs hashed differently: %s vs %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("expected sha256 hex digest, got %d chars", len(h1))
	}
}

func TestHashRunConfig_SensitiveToSeedAndProfile(t *testing.T) {
	base, err := HashRunConfig(domain.DefaultProfile(), 42)
	if err != nil {
		t.Fatal(err)
	}

	other, err := HashRunConfig(domain.DefaultProfile(), 43)
	if err != nil {
		t.Fatal(err)
	}
	if other == base {
		t.Fatal("seed change did not change the hash")
	}

	p := domain.DefaultProfile()
	p.Rows.Max = 99
	changed, err := HashRunConfig(p, 42)
	if err != nil {
		t.Fatal(err)
	}
	if changed == base {
		t.Fatal("profile change did not change the hash")
	}
}
