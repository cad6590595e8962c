package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

const maxBodyBytes = 1 << 20

// storeEntry validates and writes one entry. The store is not touched unless the entry is valid.
func (rt *Router) storeEntry(ctx context.Context, word, definition string) result {
	entry := dictionary.Entry{Word: word, Definition: definition}.Trimmed()
	if err := rt.validator.ValidateEntry(entry); err != nil {
		return validationResult(ctx, err)
	}

	if err := rt.store.Put(ctx, entry.Word, entry.Definition); err != nil {
		slog.Default().ErrorContext(ctx, "failed to store a definition",
			slog.String("word", entry.Word),
			slog.Any("error", err),
		)
		return result{kind: resultInternal}
	}
	return result{kind: resultStored, word: entry.Word, definition: entry.Definition}
}

// searchWord validates a word and reads its definition.
func (rt *Router) searchWord(ctx context.Context, word string) result {
	word = strings.TrimSpace(word)
	if err := rt.validator.ValidateWord(word); err != nil {
		return validationResult(ctx, err)
	}

	definition, err := rt.store.Get(ctx, word)
	if errors.Is(err, dictionary.ErrNotFound) {
		return result{kind: resultNotFound, word: word}
	}
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to look up a definition",
			slog.String("word", word),
			slog.Any("error", err),
		)
		return result{kind: resultInternal}
	}
	return result{kind: resultFound, word: word, definition: definition}
}

func validationResult(ctx context.Context, err error) result {
	var validationErr *dictionary.ValidationError
	if errors.As(err, &validationErr) {
		return invalid(strings.Join(validationErr.Messages, ", "))
	}
	slog.Default().ErrorContext(ctx, "failed to validate a request", slog.Any("error", err))
	return result{kind: resultInternal}
}

// handleLegacyStore accepts term (or word) and definition from the query string or a form body.
// Any method is accepted.
func (rt *Router) handleLegacyStore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeText(w, invalid(fmt.Sprintf("Invalid request: %v", err)))
		return
	}

	term := firstValue(r.Form, "term", "word")
	definition := strings.TrimSpace(r.Form.Get("definition"))
	if term == "" || definition == "" {
		writeText(w, invalid("Missing 'term' or 'definition'"))
		return
	}
	writeText(w, rt.storeEntry(r.Context(), term, definition))
}

// handleLegacySearch reads term (or word) from the query string only.
func (rt *Router) handleLegacySearch(w http.ResponseWriter, r *http.Request) {
	term := firstValue(r.URL.Query(), "term", "word")
	if term == "" {
		writeText(w, invalid("Missing 'term'"))
		return
	}
	writeText(w, rt.searchWord(r.Context(), term))
}

// handleDefinitions serves the partner API: POST stores, GET searches.
func (rt *Router) handleDefinitions(w http.ResponseWriter, r *http.Request) {
	requestID := rt.nextRequestID()

	switch r.Method {
	case http.MethodPost:
		word, definition, err := readDefinitionBody(w, r)
		if err != nil {
			writeJSON(w, requestID, invalid(err.Error()))
			return
		}
		writeJSON(w, requestID, rt.storeEntry(r.Context(), word, definition))
	case http.MethodGet, http.MethodHead:
		writeJSON(w, requestID, rt.searchWord(r.Context(), firstValue(r.URL.Query(), "word", "term")))
	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, requestID, result{
			kind:    resultMethodNotAllowed,
			message: fmt.Sprintf("method %s is not allowed", r.Method),
		})
	}
}

type definitionBody struct {
	Word       string `json:"word"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// readDefinitionBody reads word and definition from a JSON body, or from a form body merged with the query.
func readDefinitionBody(w http.ResponseWriter, r *http.Request) (string, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body definitionBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return "", "", fmt.Errorf("request body must be a JSON object: %w", err)
		}
		word := body.Word
		if strings.TrimSpace(word) == "" {
			word = body.Term
		}
		return word, body.Definition, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", "", fmt.Errorf("invalid request: %w", err)
	}
	return firstValue(r.Form, "word", "term"), r.Form.Get("definition"), nil
}

// firstValue returns the first non-blank value among keys, trimmed.
func firstValue(values url.Values, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(values.Get(key)); v != "" {
			return v
		}
	}
	return ""
}
