package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSuccess_DefaultStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	Success(c, map[string]string{"id": "1"})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"success":true,"data":{"id":"1"}}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestSuccessWithStatus_Created(t *testing.T) {
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	SuccessWithStatus(c, http.StatusCreated, map[string]string{"id": "2"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
}

func TestSuccessWithHeaders_Injected(t *testing.T) {
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	if err := SuccessWithHeaders(c, map[string]string{"id": "1"}, map[string]string{"X-Trace": "abc"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rr.Header().Get("X-Trace"); got != "abc" {
		t.Errorf("expected X-Trace header verbatim, got %q", got)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("expected JSON content type alongside injected header, got %s", ct)
	}
}

func TestSuccessWithHeaders_RejectsBadName(t *testing.T) {
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	err := SuccessWithHeaders(c, nil, map[string]string{"X Trace": "abc"})
	if err == nil {
		t.Fatal("expected rejection of malformed header name")
	}
	if rr.Header().Get("X Trace") != "" {
		t.Error("malformed header must not be written")
	}
}

func TestSuccessWithHeaders_RejectsBadValue(t *testing.T) {
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	if err := SuccessWithHeaders(c, nil, map[string]string{"X-Trace": "a\x00b"}); err == nil {
		t.Fatal("expected rejection of malformed header value")
	}
}
