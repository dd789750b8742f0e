package gate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	defaultEndpoint = "https://willowed.org/api/quiz-email"
	defaultTimeout  = 15 * time.Second

	// User-facing failure copy, kept stable for the email screen.
	msgSubmitFailed = "Failed to submit email. Please try again."
	msgSubmitError  = "An error occurred. Please try again."
)

// Submission pairs the entered email with the computed result id.
type Submission struct {
	Email             string `json:"email"`
	PersonalityTypeID string `json:"personalityTypeId"`
}

// Submitter delivers a submission to the signup backend.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// SubmitError is a failure the user can retry. Message is safe to
// show verbatim on the email screen.
type SubmitError struct {
	Message string
	cause   error
}

func (e *SubmitError) Error() string { return e.Message }

func (e *SubmitError) Unwrap() error { return e.cause }

// HTTPSubmitter posts submissions as JSON to the signup endpoint.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// HTTPOption configures an HTTPSubmitter.
type HTTPOption func(*HTTPSubmitter)

// WithEndpoint overrides the signup endpoint URL.
func WithEndpoint(url string) HTTPOption {
	return func(s *HTTPSubmitter) { s.endpoint = url }
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSubmitter) { s.client.Timeout = d }
}

// NewHTTPSubmitter returns a Submitter posting to the default signup
// endpoint, or to PERSONA_SUBMIT_URL when set.
func NewHTTPSubmitter(opts ...HTTPOption) *HTTPSubmitter {
	endpoint := defaultEndpoint
	if env := os.Getenv("PERSONA_SUBMIT_URL"); env != "" {
		endpoint = env
	}
	s := &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPSubmitter) Submit(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return &SubmitError{Message: msgSubmitError, cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return &SubmitError{Message: msgSubmitError, cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &SubmitError{Message: msgSubmitError, cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The backend reports failures as {"error": "..."}.
		var payload struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil && payload.Error != "" {
			return &SubmitError{
				Message: payload.Error,
				cause:   fmt.Errorf("signup endpoint: HTTP %d", resp.StatusCode),
			}
		}
		return &SubmitError{
			Message: msgSubmitFailed,
			cause:   fmt.Errorf("signup endpoint: HTTP %d", resp.StatusCode),
		}
	}
	return nil
}
