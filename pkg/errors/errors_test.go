package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("connection reset")
	wrapped := Wrap(originalErr, CodeTransport, "store call failed", http.StatusBadGateway)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if wrapped.Code != CodeTransport {
		t.Errorf("expected code %s, got %s", CodeTransport, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "booking not found",
			},
			expected: "NOT_FOUND: booking not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeTransport,
				Message: "store call failed",
				Err:     errors.New("connection reset"),
			},
			expected: "TRANSPORT_ERROR: store call failed (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Transport("store call failed", originalErr)

	unwrapped := errors.Unwrap(appErr)
	if unwrapped != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestAuthRequired(t *testing.T) {
	err := AuthRequired()

	if err.Code != CodeAuthRequired {
		t.Errorf("expected code %s, got %s", CodeAuthRequired, err.Code)
	}
	if err.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, err.HTTPStatus)
	}
}

func TestAlreadyBooked(t *testing.T) {
	err := AlreadyBooked("this booking already exists")

	if err.Code != CodeAlreadyBooked {
		t.Errorf("expected code %s, got %s", CodeAlreadyBooked, err.Code)
	}
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, err.HTTPStatus)
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Booking", "665f1c2e9d3e4a0012345678")

	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.Details["id"] != "665f1c2e9d3e4a0012345678" {
		t.Errorf("expected id in details, got %v", err.Details["id"])
	}
	if err.Details["resource"] != "Booking" {
		t.Errorf("expected resource 'Booking', got %v", err.Details["resource"])
	}
}

func TestForbidden(t *testing.T) {
	err := Forbidden("you do not have permission to delete this booking")

	if err.Code != CodeForbidden {
		t.Errorf("expected code %s, got %s", CodeForbidden, err.Code)
	}
	if err.HTTPStatus != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, err.HTTPStatus)
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode(AuthRequired(), CodeAuthRequired) {
		t.Error("IsCode should match AuthRequired")
	}
	if IsCode(errors.New("plain"), CodeAuthRequired) {
		t.Error("IsCode should not match plain errors")
	}
	if IsCode(Forbidden("nope"), CodeAuthRequired) {
		t.Error("IsCode should not match a different code")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Validation("bad input", nil)
	if AsAppError(appErr) != appErr {
		t.Error("AsAppError should return the same AppError")
	}

	plain := errors.New("boom")
	converted := AsAppError(plain)
	if converted.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, converted.Code)
	}
	if converted.Err != plain {
		t.Error("expected original error to be wrapped")
	}
}
