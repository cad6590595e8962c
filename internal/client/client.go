// Package client talks to a wordbook server over either of its API shapes.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/tidwall/gjson"
	"resty.dev/v3"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

const (
	DefaultRetryAttempts uint = 2
	defaultRetryDelay         = 100 * time.Millisecond
)

// Result is a successful response from the server.
type Result struct {
	StatusCode int
	// RequestID is assigned by the partner API and is zero for the legacy API.
	RequestID  int64
	Word       string
	Definition string
	Message    string
}

type Client struct {
	httpClient       *resty.Client
	validator        *dictionary.Validator
	api              string
	maxRetryAttempts uint
	retryDelay       time.Duration
}

type Option func(*Client)

// WithAPI selects the partner (JSON) or legacy (plain text) API.
func WithAPI(api string) Option {
	return func(c *Client) {
		c.api = api
	}
}

// WithRetryAttempts sets how many times a failed request is retried.
func WithRetryAttempts(attempts uint) Option {
	return func(c *Client) {
		c.maxRetryAttempts = attempts
	}
}

// WithRetryDelay sets the base delay of the exponential backoff between retries.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

// WithTimeout sets the timeout of a single request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.SetTimeout(timeout)
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	validator, err := dictionary.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("dictionary.NewValidator() > %w", err)
	}

	client := &Client{
		httpClient:       resty.New().SetBaseURL(strings.TrimSuffix(baseURL, "/")),
		validator:        validator,
		api:              config.APIPartner,
		maxRetryAttempts: DefaultRetryAttempts,
		retryDelay:       defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.api != config.APIPartner && client.api != config.APILegacy {
		_ = client.httpClient.Close()
		return nil, fmt.Errorf("unknown API: %s", client.api)
	}
	return client, nil
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Define stores a definition for word. The input is validated before any request is sent.
func (client *Client) Define(ctx context.Context, word, definition string) (*Result, error) {
	entry := dictionary.Entry{Word: word, Definition: definition}.Trimmed()
	if err := client.validator.ValidateEntry(entry); err != nil {
		return nil, err
	}

	result, err := client.do(ctx, func() (*resty.Response, error) {
		request := client.httpClient.R().SetContext(ctx)
		if client.api == config.APILegacy {
			return request.
				SetQueryParams(map[string]string{"term": entry.Word, "definition": entry.Definition}).
				Get("/store/")
		}
		return request.
			SetFormData(map[string]string{"word": entry.Word, "definition": entry.Definition}).
			Post("/api/definitions")
	})
	if err != nil {
		return nil, err
	}

	if result.Word == "" {
		result.Word = entry.Word
	}
	if result.Definition == "" {
		result.Definition = entry.Definition
	}
	return result, nil
}

// Lookup searches the definition of word. The word is validated before any request is sent.
func (client *Client) Lookup(ctx context.Context, word string) (*Result, error) {
	word = strings.TrimSpace(word)
	if err := client.validator.ValidateWord(word); err != nil {
		return nil, err
	}

	result, err := client.do(ctx, func() (*resty.Response, error) {
		request := client.httpClient.R().SetContext(ctx)
		if client.api == config.APILegacy {
			return request.SetQueryParam("term", word).Get("/search/")
		}
		return request.SetQueryParam("word", word).Get("/api/definitions/")
	})
	if err != nil {
		return nil, err
	}

	if result.Word == "" {
		result.Word = word
	}
	if result.Definition == "" {
		// The legacy API answers with the bare definition.
		result.Definition = result.Message
		result.Message = ""
	}
	return result, nil
}

// do sends a request, retrying transport failures and 5xx responses with exponential backoff.
func (client *Client) do(ctx context.Context, send func() (*resty.Response, error)) (*Result, error) {
	var result *Result
	if err := retry.Do(
		func() error {
			response, err := send()
			if err != nil {
				if ctx.Err() != nil {
					return retry.Unrecoverable(ctx.Err())
				}
				return &NetworkError{Err: err}
			}

			parsed, err := parseResponse(response)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if response.IsError() {
				serverErr := &ServerError{
					StatusCode: parsed.StatusCode,
					RequestID:  parsed.RequestID,
					Message:    parsed.Message,
				}
				if !isRetryableStatus(parsed.StatusCode) {
					return retry.Unrecoverable(serverErr)
				}
				return serverErr
			}
			result = parsed
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return result, nil
}

func isRetryableStatus(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests
}

// parseResponse reads a JSON body when the server says it sent one, and a plain-text message otherwise.
func parseResponse(response *resty.Response) (*Result, error) {
	body := response.String()
	result := &Result{StatusCode: response.StatusCode()}

	if !strings.Contains(response.Header().Get("Content-Type"), "application/json") {
		result.Message = body
		if result.Message == "" && response.IsError() {
			result.Message = http.StatusText(result.StatusCode)
		}
		return result, nil
	}

	if !gjson.Valid(body) {
		return nil, fmt.Errorf("invalid JSON response (status %d): %s", result.StatusCode, body)
	}
	parsed := gjson.Parse(body)
	result.RequestID = parsed.Get("requestId").Int()
	result.Word = parsed.Get("word").String()
	result.Definition = parsed.Get("definition").String()
	result.Message = parsed.Get("message").String()
	return result, nil
}
