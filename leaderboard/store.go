package leaderboard

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store persists the full entry list wholesale.
type Store interface {
	Load() ([]Entry, error)
	Save([]Entry) error
}

// FileStore keeps the leaderboard as a single JSON file holding the
// entry list, rewritten in full on every submission.
type FileStore struct {
	Path string
}

// Load reads the whole entry list from the file.
func (s FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	return entries, nil
}

// Save rewrites the file with the given entries.
func (s FileStore) Save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	return nil
}
