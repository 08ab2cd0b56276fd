package validation

import (
	"strings"
	"testing"

	"github.com/skillsenselab/templateapi/response"
)

type createReq struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Content string `json:"content" validate:"required"`
}

func TestValidate_Passes(t *testing.T) {
	req := createReq{Name: "welcome", Email: "a@b.co", Content: "hello"}
	if err := Validate(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ReportsFields(t *testing.T) {
	err := Validate(createReq{Email: "nope"})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	verr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if verr.Category() != response.CodeBadRequest {
		t.Errorf("validation failures must classify as BadRequest, got %s", verr.Category())
	}
	desc := verr.TechnicalDescription()
	for _, want := range []string{"name is required", "email must be a valid email address", "content is required"} {
		if !strings.Contains(desc, want) {
			t.Errorf("description missing %q: %s", want, desc)
		}
	}
}

func TestValidate_UserFacingMessageIsStable(t *testing.T) {
	err := Validate(createReq{})
	if err.Error() != "invalid request data" {
		t.Errorf("client-facing text should not enumerate fields, got %q", err.Error())
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("UserEmail"); got != "user_email" {
		t.Errorf("expected user_email, got %s", got)
	}
}
