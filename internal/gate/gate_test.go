package gate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"valid", "jordan@example.com", nil},
		{"valid with plus", "jordan+quiz@example.co.uk", nil},
		{"surrounding whitespace", "  jordan@example.com  ", nil},
		{"empty", "", ErrEmailRequired},
		{"whitespace only", "   ", ErrEmailRequired},
		{"missing at", "jordan.example.com", ErrEmailInvalid},
		{"missing domain dot", "jordan@example", ErrEmailInvalid},
		{"space inside", "jor dan@example.com", ErrEmailInvalid},
		{"missing local part", "@example.com", ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateEmail(tt.input); !errors.Is(got, tt.want) {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTTPSubmitter(t *testing.T) {
	sub := Submission{Email: "jordan@example.com", PersonalityTypeID: "Investigative_Openness"}

	t.Run("success", func(t *testing.T) {
		var got Submission
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %q", ct)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("decode body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		s := NewHTTPSubmitter(WithEndpoint(server.URL))
		if err := s.Submit(context.Background(), sub); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if got != sub {
			t.Errorf("server received %+v, want %+v", got, sub)
		}
	})

	t.Run("server error with message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Email already registered."}`))
		}))
		defer server.Close()

		s := NewHTTPSubmitter(WithEndpoint(server.URL))
		err := s.Submit(context.Background(), sub)
		var subErr *SubmitError
		if !errors.As(err, &subErr) {
			t.Fatalf("expected SubmitError, got %v", err)
		}
		if subErr.Message != "Email already registered." {
			t.Errorf("Message = %q", subErr.Message)
		}
	})

	t.Run("server error without body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		s := NewHTTPSubmitter(WithEndpoint(server.URL))
		err := s.Submit(context.Background(), sub)
		var subErr *SubmitError
		if !errors.As(err, &subErr) {
			t.Fatalf("expected SubmitError, got %v", err)
		}
		if subErr.Message != msgSubmitFailed {
			t.Errorf("Message = %q, want %q", subErr.Message, msgSubmitFailed)
		}
	})

	t.Run("network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // refuse connections

		s := NewHTTPSubmitter(WithEndpoint(server.URL))
		err := s.Submit(context.Background(), sub)
		var subErr *SubmitError
		if !errors.As(err, &subErr) {
			t.Fatalf("expected SubmitError, got %v", err)
		}
		if subErr.Message != msgSubmitError {
			t.Errorf("Message = %q, want %q", subErr.Message, msgSubmitError)
		}
	})
}
