package failure_test

import (
	"errors"
	"fmt"
	"livecity/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestInvalid(t *testing.T) {
	if err := failure.Invalid(); err != nil {
		t.Errorf("expected nil for no details, got %v", err)
	}

	err := failure.Invalid(
		failure.Detail{Field: "email", Rule: "email", Message: "email must be a valid email address"},
		failure.Detail{Field: "contact_phone", Rule: "phone", Message: "contact_phone must contain exactly 10 digits"},
	)

	f, ok := err.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", err)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if len(f.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(f.Details))
	}

	want := "email must be a valid email address; contact_phone must contain exactly 10 digits"
	if f.Message != want {
		t.Errorf("expected message %q, got %q", want, f.Message)
	}
}

func TestGetDetails(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", failure.Invalid(failure.Detail{Field: "agree_to_terms", Rule: "terms", Message: "terms"}))

	details := failure.GetDetails(err)
	if len(details) != 1 || details[0].Field != "agree_to_terms" {
		t.Errorf("expected agree_to_terms detail, got %+v", details)
	}

	if failure.GetDetails(errors.New("plain")) != nil {
		t.Error("expected nil details for a plain error")
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("booking not found")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("outer: %w", failure.ServiceUnavailable("busy")),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
