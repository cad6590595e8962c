package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"

	internalErrorText = "500 Internal Server Error"
	notFoundText      = "404 Not Found"
)

type resultKind int

const (
	resultStored resultKind = iota
	resultFound
	resultInvalid
	resultNotFound
	resultMethodNotAllowed
	resultInternal
)

// result is the outcome of a store or search operation, independent of wire shape.
type result struct {
	kind       resultKind
	word       string
	definition string
	// message explains invalid and method-not-allowed results.
	message string
}

func invalid(message string) result {
	return result{kind: resultInvalid, message: message}
}

func (r result) status() int {
	switch r.kind {
	case resultStored, resultFound:
		return http.StatusOK
	case resultInvalid:
		return http.StatusBadRequest
	case resultNotFound:
		return http.StatusNotFound
	case resultMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// DefinitionResponse is the partner API body for a stored or found definition.
type DefinitionResponse struct {
	RequestID  int64  `json:"requestId"`
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// MessageResponse is the partner API body for every non-successful result.
type MessageResponse struct {
	RequestID int64  `json:"requestId"`
	Message   string `json:"message"`
}

// writeText renders r in the legacy plain-text shape.
func writeText(w http.ResponseWriter, r result) {
	var body string
	switch r.kind {
	case resultStored:
		body = fmt.Sprintf("Stored: %s → %s", r.word, r.definition)
	case resultFound:
		body = r.definition
	case resultNotFound:
		body = fmt.Sprintf(`No definition found for "%s"`, r.word)
	case resultInvalid, resultMethodNotAllowed:
		body = r.message
	default:
		body = internalErrorText
	}
	sendText(w, r.status(), body)
}

// writeJSON renders r in the partner API shape.
func writeJSON(w http.ResponseWriter, requestID int64, r result) {
	var body any
	switch r.kind {
	case resultStored, resultFound:
		body = DefinitionResponse{RequestID: requestID, Word: r.word, Definition: r.definition}
	case resultNotFound:
		body = MessageResponse{RequestID: requestID, Message: fmt.Sprintf("word '%s' not found!", r.word)}
	case resultInvalid, resultMethodNotAllowed:
		body = MessageResponse{RequestID: requestID, Message: r.message}
	default:
		body = MessageResponse{RequestID: requestID, Message: "internal server error"}
	}

	contents, err := json.Marshal(body)
	if err != nil {
		slog.Default().Error("failed to encode a response",
			slog.Int64("requestId", requestID),
			slog.Any("error", err),
		)
		sendText(w, http.StatusInternalServerError, internalErrorText)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(r.status())
	_, _ = w.Write(contents)
}

func sendText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
