package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadSeedFile reads a YAML list of entries and validates each one.
func ReadSeedFile(path string, v *Validator) ([]Entry, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}

	for i, entry := range entries {
		if err := v.ValidateEntry(entry); err != nil {
			return nil, fmt.Errorf("entry %d (%q) in %s > %w", i, entry.Word, path, err)
		}
		entries[i] = entry.Trimmed()
	}
	return entries, nil
}

// Seed puts every entry into store in order, so a later duplicate wins.
func Seed(ctx context.Context, store Store, entries []Entry) error {
	for _, entry := range entries {
		if err := store.Put(ctx, entry.Word, entry.Definition); err != nil {
			return fmt.Errorf("store.Put(%s) > %w", entry.Word, err)
		}
	}
	slog.Default().Debug("seeded dictionary", slog.Int("entries", len(entries)))
	return nil
}
