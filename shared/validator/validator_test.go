package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"innsync/shared/failure"
	"innsync/shared/validator"
)

type syncRequest struct {
	Since string `json:"since" validate:"omitempty"`
	Topic string `json:"topic" validate:"omitempty,min=3"`
}

func TestValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		var req syncRequest

		err := validator.Validate(strings.NewReader(`{"since": "2025-03-01T00:00:00Z"}`), &req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if req.Since != "2025-03-01T00:00:00Z" {
			t.Errorf("unexpected since: %s", req.Since)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		var req syncRequest

		err := validator.Validate(strings.NewReader(""), &req)
		if err == nil {
			t.Fatal("expected error for empty body")
		}

		if failure.GetCode(err) != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", failure.GetCode(err))
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		var req syncRequest

		if err := validator.Validate(strings.NewReader(`{`), &req); err == nil {
			t.Fatal("expected error for malformed body")
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		var req syncRequest

		err := validator.Validate(strings.NewReader(`{"topic": "ab"}`), &req)
		if err == nil {
			t.Fatal("expected validation error")
		}

		if failure.GetCode(err) != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", failure.GetCode(err))
		}
	})
}

func TestValidateStruct(t *testing.T) {
	if err := validator.ValidateStruct(&syncRequest{Topic: "bookings"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateStruct(&syncRequest{Topic: "ab"}); err == nil {
		t.Error("expected validation error")
	}
}
