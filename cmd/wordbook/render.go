package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordbook/internal/client"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

const (
	statusOK           = "ok"
	statusError        = "error"
	statusNetworkError = "network-error"

	networkErrorMessage = "The request could not be completed. Please check your connection or try again."
)

// errRequestFailed is returned once a failure has already been rendered for the user.
var errRequestFailed = errors.New("request failed")

type feedback struct {
	Status     string        `json:"status"`
	HTTPStatus int           `json:"httpStatus,omitempty"`
	Data       *feedbackData `json:"data,omitempty"`
	Server     *feedbackData `json:"server,omitempty"`
	Message    string        `json:"message,omitempty"`
	Detail     string        `json:"detail,omitempty"`
}

type feedbackData struct {
	RequestID  int64  `json:"requestId,omitempty"`
	Word       string `json:"word,omitempty"`
	Definition string `json:"definition,omitempty"`
	Message    string `json:"message,omitempty"`
}

func newFeedback(result *client.Result, err error) feedback {
	if err == nil {
		return feedback{
			Status: statusOK,
			Data: &feedbackData{
				RequestID:  result.RequestID,
				Word:       result.Word,
				Definition: result.Definition,
				Message:    result.Message,
			},
		}
	}

	var validationErr *dictionary.ValidationError
	var serverErr *client.ServerError
	var networkErr *client.NetworkError
	switch {
	case errors.As(err, &validationErr):
		return feedback{
			Status:  statusError,
			Message: validationErr.Error(),
		}
	case errors.As(err, &serverErr):
		if serverErr.RequestID != 0 {
			return feedback{
				Status:     statusError,
				HTTPStatus: serverErr.StatusCode,
				Server: &feedbackData{
					RequestID: serverErr.RequestID,
					Message:   serverErr.Message,
				},
			}
		}
		return feedback{
			Status:     statusError,
			HTTPStatus: serverErr.StatusCode,
			Message:    serverErr.Message,
		}
	case errors.As(err, &networkErr):
		return feedback{
			Status:  statusNetworkError,
			Message: networkErrorMessage,
			Detail:  networkErr.Err.Error(),
		}
	default:
		return feedback{
			Status:  statusError,
			Message: err.Error(),
		}
	}
}

// render writes the outcome of a request as an indented JSON block.
// It returns errRequestFailed when the outcome is not a success.
func render(w io.Writer, result *client.Result, err error) error {
	fb := newFeedback(result, err)
	body, marshalErr := json.MarshalIndent(fb, "", "  ")
	if marshalErr != nil {
		return fmt.Errorf("json.MarshalIndent() > %w", marshalErr)
	}

	var c *color.Color
	switch fb.Status {
	case statusOK:
		c = color.New(color.FgGreen)
	case statusNetworkError:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	if _, writeErr := c.Fprintln(w, string(body)); writeErr != nil {
		return fmt.Errorf("color.Fprintln() > %w", writeErr)
	}

	if fb.Status != statusOK {
		return errRequestFailed
	}
	return nil
}
