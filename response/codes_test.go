package response

import (
	"net/http"
	"testing"
)

func TestStatusOf_Total(t *testing.T) {
	want := map[ErrorCode]int{
		CodeNotFound:     http.StatusNotFound,
		CodeBadRequest:   http.StatusBadRequest,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeConflict:     http.StatusConflict,
		CodeInternal:     http.StatusInternalServerError,
	}
	if len(want) != len(Codes) {
		t.Fatalf("expected %d declared codes, got %d", len(want), len(Codes))
	}
	for _, code := range Codes {
		expected, ok := want[code]
		if !ok {
			t.Fatalf("code %s has no expected status in this test: keep the table total", code)
		}
		if got := StatusOf(code); got != expected {
			t.Errorf("StatusOf(%s) = %d, want %d", code, got, expected)
		}
	}
}

func TestStatusOf_Deterministic(t *testing.T) {
	for _, code := range Codes {
		first := StatusOf(code)
		for i := 0; i < 3; i++ {
			if got := StatusOf(code); got != first {
				t.Fatalf("StatusOf(%s) changed between calls: %d then %d", code, first, got)
			}
		}
	}
}

func TestStatusOf_UnknownCode(t *testing.T) {
	if got := StatusOf(ErrorCode("Bogus")); got != http.StatusInternalServerError {
		t.Errorf("unknown code should fall back to 500, got %d", got)
	}
}
