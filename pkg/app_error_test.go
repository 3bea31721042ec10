package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	cause := errors.New("db down")
	withCause := NewDomainError("STORE_ERROR", "The operation failed.", cause, http.StatusInternalServerError)
	if withCause.Error() != "STORE_ERROR: The operation failed.: db down" {
		t.Fatalf("unexpected message: %q", withCause.Error())
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "No such plan.", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: No such plan." {
		t.Fatalf("unexpected message: %q", simple.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("db down")
	err := NewDomainError("STORE_ERROR", "failed", cause, http.StatusInternalServerError)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the cause")
	}
}

func TestAppError_ToHTTPError(t *testing.T) {
	err := NewDomainError("STORE_ERROR", "failed", errors.New("secret detail"), http.StatusInternalServerError)
	body := err.ToHTTPError()
	if body.Code != "STORE_ERROR" || body.Message != "failed" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
