package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/mmrzaf/fuzzdb/internal/domain"
)

// HashRunConfig fingerprints everything that determines a run's output: the
// resolved profile and the seed. Two runs with equal hashes produce
// byte-identical databases.
func HashRunConfig(profile *domain.Profile, seed int64) (string, error) {
	canonical := struct {
		Profile *domain.Profile `json:"profile"`
		Seed    int64           `json:"seed"`
	}{
		Profile: profile,
		Seed:    seed,
	}

	data, err := json.Marshal(canonical)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
