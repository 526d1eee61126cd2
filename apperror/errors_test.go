package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
		code   string
	}{
		{Validation("bad"), http.StatusBadRequest, "BAD_REQUEST"},
		{NotFound("missing"), http.StatusNotFound, "NOT_FOUND"},
		{InvalidTransition("DRAFT", "SIGNED"), http.StatusBadRequest, "INVALID_TRANSITION"},
		{Conflict("race"), http.StatusConflict, "CONFLICT"},
		{Unauthorized("who"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{Forbidden("no"), http.StatusForbidden, "FORBIDDEN"},
		{Internal("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		if tc.err.Status != tc.status || tc.err.Code != tc.code {
			t.Errorf("%v: got status=%d code=%s, want %d %s", tc.err, tc.err.Status, tc.err.Code, tc.status, tc.code)
		}
	}
}

func TestInvalidTransitionMessage(t *testing.T) {
	err := InvalidTransition("SIGNED", "SIGNING")
	want := "Cannot transition from SIGNED to SIGNING"
	if err.Message != want {
		t.Errorf("message = %q, want %q", err.Message, want)
	}
}

func TestFrom(t *testing.T) {
	appErr := NotFound("gone")
	if got := From(fmt.Errorf("wrapped: %w", appErr)); got != appErr {
		t.Error("From did not unwrap the application error")
	}

	got := From(errors.New("raw database error"))
	if got.Code != "INTERNAL_ERROR" || got.Status != http.StatusInternalServerError {
		t.Errorf("unknown error mapped to %s/%d", got.Code, got.Status)
	}
	if got.Message == "raw database error" {
		t.Error("raw error message leaked through From")
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("ctx: %w", Conflict("race"))
	if !IsCode(err, "CONFLICT") {
		t.Error("IsCode missed wrapped CONFLICT")
	}
	if IsCode(err, "NOT_FOUND") {
		t.Error("IsCode matched wrong code")
	}
	if IsCode(errors.New("plain"), "CONFLICT") {
		t.Error("IsCode matched a non-application error")
	}
}
