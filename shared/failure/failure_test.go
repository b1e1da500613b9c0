package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"homestay/shared/failure"
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
				t.Errorf("expected result to be *failure.Failure, got %T", result)

				return
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "conflict", input: failure.Conflict("cell already occupied"), expected: http.StatusConflict},
		{name: "not found", input: failure.NotFound("booking not found"), expected: http.StatusNotFound},
		{name: "unauthorized", input: failure.Unauthorized("google session expired"), expected: http.StatusUnauthorized},
		{name: "remote call", input: failure.RemoteCall(errors.New("rpc deadline exceeded")), expected: http.StatusBadGateway},
		{name: "plain error", input: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.input); code != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, code)
			}
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	if !failure.IsUnauthorized(failure.Unauthorized("expired")) {
		t.Error("expected unauthorized failure to be detected")
	}

	if failure.IsUnauthorized(failure.Conflict("taken")) {
		t.Error("conflict must not be treated as unauthorized")
	}
}
