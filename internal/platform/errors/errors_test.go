package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeOfUnwrapsChain(t *testing.T) {
	inner := New(CodeNotFound, "record not found")
	wrapped := fmt.Errorf("load point: %w", inner)
	if got := CodeOf(wrapped); got != CodeNotFound {
		t.Fatalf("expected NotFound, got %s", got)
	}
	if !IsCode(wrapped, CodeNotFound) {
		t.Fatalf("expected IsCode to match through wrapping")
	}
}

func TestCodeOfUnknown(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("expected Unknown, got %s", got)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	first := New(CodeSessionReuse, "session has already been closed")
	second := Wrap(CodeSessionReuse, "commit after rollback", errors.New("tx done"))
	if !errors.Is(second, first) {
		t.Fatalf("expected errors with the same code to match")
	}
	other := New(CodeNotFound, "record not found")
	if errors.Is(second, other) {
		t.Fatalf("expected different codes to not match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeStorageFailure, "insert rules", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to survive wrapping")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[Code]int{
		CodeRuleNameEmpty:     http.StatusBadRequest,
		CodeInvalidScope:      http.StatusBadRequest,
		CodeImmutableIdentity: http.StatusBadRequest,
		CodeNotFound:          http.StatusNotFound,
		CodeUnknownPrefix:     http.StatusNotFound,
		CodeStorageFailure:    http.StatusInternalServerError,
		CodeSessionReuse:      http.StatusInternalServerError,
		CodeCorruptStorageRow: http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := code.HTTPStatus(); got != want {
			t.Fatalf("expected %s to map to %d, got %d", code, want, got)
		}
	}
}

func TestIsValidation(t *testing.T) {
	if !CodeCharacterInvalidRole.IsValidation() {
		t.Fatalf("expected character role code to be validation")
	}
	if CodeStorageFailure.IsValidation() {
		t.Fatalf("expected storage failure to not be validation")
	}
}
