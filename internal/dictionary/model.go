package dictionary

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by Store.Get when no definition exists for a word.
	ErrNotFound = errors.New("definition not found")
	// ErrEmptyWord is returned by Store.Put when the word is empty after trimming.
	ErrEmptyWord = errors.New("word is empty")
	// ErrEmptyDefinition is returned by Store.Put when the definition is empty after trimming.
	ErrEmptyDefinition = errors.New("definition is empty")
)

// Entry is a word and its definition as supplied by a caller, before normalization.
type Entry struct {
	Word       string `yaml:"word" validate:"required,dictword"`
	Definition string `yaml:"definition" validate:"required"`
}

// Trimmed returns a copy of the entry with surrounding whitespace removed from both fields.
func (e Entry) Trimmed() Entry {
	return Entry{
		Word:       strings.TrimSpace(e.Word),
		Definition: strings.TrimSpace(e.Definition),
	}
}

// ValidationError reports why an entry or a word was rejected.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Messages, ", "))
}
