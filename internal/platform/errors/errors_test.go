package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestCodesMapToHTTP(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		want int
	}{
		{name: "not found", code: ErrorCodeNotFound, want: http.StatusNotFound},
		{name: "invalid argument", code: ErrorCodeInvalidArgument, want: http.StatusUnprocessableEntity},
		{name: "validation", code: ErrorCodeValidation, want: http.StatusBadRequest},
		{name: "json", code: ErrorCodeJSON, want: http.StatusBadRequest},
		{name: "panic", code: ErrorCodePanic, want: http.StatusInternalServerError},
		{name: "unknown", code: ErrorCodeUnknown, want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusCode(%v) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeJSON, "decode failed")

	if CodeOf(err) != ErrorCodeJSON {
		t.Fatalf("CodeOf = %v", CodeOf(err))
	}
	if !stderrs.Is(err, cause) {
		t.Fatal("wrapped cause lost")
	}
	if Root(err) != cause {
		t.Fatalf("Root = %v", Root(err))
	}
	if err.Error() != "decode failed: boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestWireFrom(t *testing.T) {
	t.Run("project error", func(t *testing.T) {
		w := WireFrom(Newf(ErrorCodeValidation, "body required"))
		if w.Code != ErrorCodeValidation || w.Message != "body required" {
			t.Fatalf("got %+v", w)
		}
	})
	t.Run("foreign error", func(t *testing.T) {
		w := WireFrom(stderrs.New("plain"))
		if w.Code != ErrorCodeUnknown || w.Message != "plain" {
			t.Fatalf("got %+v", w)
		}
	})
	t.Run("nil", func(t *testing.T) {
		if w := WireFrom(nil); w != (Wire{}) {
			t.Fatalf("got %+v", w)
		}
	})
}

func TestWithField(t *testing.T) {
	err := New(ErrorCodeValidation, "too long")
	werr := WithField(err, "body")
	e, ok := As(werr)
	if !ok || e.Field() != "body" {
		t.Fatalf("got %+v", werr)
	}
	// original untouched
	if o, _ := As(err); o.Field() != "" {
		t.Fatal("WithField must copy")
	}
}

func TestHTTP(t *testing.T) {
	status, wire := HTTP(InvalidArgf("bad limit"))
	if status != http.StatusUnprocessableEntity || wire.Message != "bad limit" {
		t.Fatalf("got %d %+v", status, wire)
	}
	if status, _ := HTTP(nil); status != http.StatusOK {
		t.Fatalf("nil should map to 200, got %d", status)
	}
}
