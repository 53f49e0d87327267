package profiles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmrzaf/fuzzdb/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileRepository loads generation profiles from a directory of YAML or JSON
// files. Missing fields are filled from the default profile so partial
// profiles stay usable.
type FileRepository struct {
	baseDir string
}

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

func (r *FileRepository) List() ([]*domain.Profile, error) {
	if _, err := os.Stat(r.baseDir); os.IsNotExist(err) {
		return []*domain.Profile{}, nil
	}

	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Profile, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}

		profile, err := r.loadProfile(filepath.Join(r.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		list = append(list, profile)
	}

	return list, nil
}

func (r *FileRepository) Get(id string) (*domain.Profile, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}

	for _, p := range list {
		if p.ID == id || p.Name == id {
			return p, nil
		}
	}

	return nil, fmt.Errorf("profile not found: %s", id)
}

func (r *FileRepository) GetByPath(path string) (*domain.Profile, error) {
	return r.loadProfile(path)
}

func (r *FileRepository) loadProfile(path string) (*domain.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	profile := domain.DefaultProfile()
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, profile)
	} else {
		err = yaml.Unmarshal(data, profile)
	}
	if err != nil {
		return nil, err
	}

	if profile.ID == "" {
		profile.ID = filepath.Base(path)
	}

	return profile, nil
}
