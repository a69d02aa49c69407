package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	prefsDir  = ".formrunner"
	prefsFile = "prefs.json"
)

// Prefs remembers the previous run's prompt answers so they can be
// offered as defaults. Run results are never persisted.
type Prefs struct {
	FormURL string `json:"form_url"`
}

type Store struct {
	path string
}

// NewStore - creates a store under the user's home directory
func NewStore() *Store {
	homeDir, _ := os.UserHomeDir()
	dir := filepath.Join(homeDir, prefsDir)
	os.MkdirAll(dir, 0755)

	return &Store{path: filepath.Join(dir, prefsFile)}
}

// NewStoreAt - creates a store backed by an explicit file path
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load - reads saved preferences; a missing file yields zero prefs
func (s *Store) Load() (Prefs, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Prefs{}, nil
		}
		return Prefs{}, err
	}

	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Prefs{}, err
	}
	return prefs, nil
}

// Save - writes preferences to disk
func (s *Store) Save(prefs Prefs) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
