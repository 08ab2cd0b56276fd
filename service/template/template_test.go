package template

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/skillsenselab/templateapi/response"
)

func TestGet_ReturnsTemplate(t *testing.T) {
	svc := NewService()
	tmpl, err := svc.Get(context.Background(), "tmpl_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tmpl.ID != "tmpl_1" {
		t.Errorf("unexpected id %s", tmpl.ID)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService()
	_, err := svc.Get(context.Background(), "not_found")
	if err == nil {
		t.Fatal("expected error")
	}

	var tmplErr *Error
	if !errors.As(err, &tmplErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if tmplErr.Kind != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", tmplErr.Kind)
	}
}

func TestError_Classification(t *testing.T) {
	cases := []struct {
		err  *Error
		code response.ErrorCode
	}{
		{NotFound("tmpl_42"), response.CodeNotFound},
		{InvalidInput("name missing"), response.CodeBadRequest},
		{Unauthorized(), response.CodeUnauthorized},
		{Internal(errors.New("boom")), response.CodeInternal},
	}
	for _, tc := range cases {
		if got := tc.err.Category(); got != tc.code {
			t.Errorf("kind %v: expected %s, got %s", tc.err.Kind, tc.code, got)
		}
	}
}

func TestError_NotFoundRendering(t *testing.T) {
	err := NotFound("tmpl_42")

	if got := err.UserMessage(); got != "The requested template could not be found" {
		t.Errorf("unexpected user message %q", got)
	}
	if !strings.Contains(err.TechnicalDescription(), "tmpl_42") {
		t.Errorf("description should name the id: %q", err.TechnicalDescription())
	}
	if !strings.Contains(err.TechnicalDetails(), "tmpl_42") {
		t.Errorf("details should name the id: %q", err.TechnicalDetails())
	}
}

func TestError_InternalExposesCauseChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	if err.UserMessage() != "" {
		t.Error("internal errors must not override the user message")
	}
	if err.TechnicalDetails() != "" {
		t.Error("internal errors must leave details to the cause chain")
	}
	if !errors.Is(err, cause) {
		t.Error("cause must stay reachable through Unwrap")
	}
}
