package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/templateapi/handler"
	"github.com/skillsenselab/templateapi/logger"
	"github.com/skillsenselab/templateapi/server/middleware"
	"github.com/skillsenselab/templateapi/service/template"
	"github.com/skillsenselab/templateapi/service/user"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewDefault("test")

	engine := gin.New()
	engine.Use(middleware.TraceID())

	api := engine.Group("/api/v1")
	handler.NewTemplateHandler(template.NewService(), log).Register(api)
	handler.NewUserHandler(user.NewService(), log).Register(api)
	return engine
}

func doRequest(t *testing.T, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, http.NoBody)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, req)

	var envelope map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("body is not valid JSON: %v (%s)", err, rr.Body.String())
	}
	return rr, envelope
}

func errorBody(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	if envelope["success"] != false {
		t.Fatal("success must be false on the error path")
	}
	body, ok := envelope["error"].(map[string]any)
	if !ok {
		t.Fatal("missing error object")
	}
	return body
}

// ---------------------------------------------------------------------------
// Templates
// ---------------------------------------------------------------------------

func TestGetTemplate_OK(t *testing.T) {
	rr, envelope := doRequest(t, "GET", "/api/v1/templates/tmpl_1", "", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if envelope["success"] != true {
		t.Error("expected success envelope")
	}
	data := envelope["data"].(map[string]any)
	if data["id"] != "tmpl_1" {
		t.Errorf("unexpected data %v", data)
	}
}

func TestGetTemplate_NotFound(t *testing.T) {
	rr, envelope := doRequest(t, "GET", "/api/v1/templates/not_found", "", nil)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	body := errorBody(t, envelope)
	if body["code"] != "NotFound" {
		t.Errorf("expected code NotFound, got %v", body["code"])
	}
	if body["message"] != "The requested template could not be found" {
		t.Errorf("unexpected message %v", body["message"])
	}
	if desc, _ := body["description"].(string); !strings.Contains(desc, "not_found") {
		t.Errorf("description should name the id, got %v", body["description"])
	}
}

func TestCreateTemplate_Created(t *testing.T) {
	rr, envelope := doRequest(t, "POST", "/api/v1/templates",
		`{"name":"welcome","description":"d","content":"hello"}`, nil)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	data := envelope["data"].(map[string]any)
	if data["name"] != "welcome" {
		t.Errorf("unexpected data %v", data)
	}
}

func TestCreateTemplate_MalformedBody(t *testing.T) {
	rr, envelope := doRequest(t, "POST", "/api/v1/templates", `{"name":`, nil)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	body := errorBody(t, envelope)
	if body["code"] != "BadRequest" {
		t.Errorf("expected code BadRequest, got %v", body["code"])
	}
}

func TestCreateTemplate_ValidationFailure(t *testing.T) {
	rr, envelope := doRequest(t, "POST", "/api/v1/templates", `{"description":"d"}`, nil)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	body := errorBody(t, envelope)
	if desc, _ := body["description"].(string); !strings.Contains(desc, "name") || !strings.Contains(desc, "content") {
		t.Errorf("description should name the failed fields, got %v", body["description"])
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestCreateUser_Conflict(t *testing.T) {
	rr, envelope := doRequest(t, "POST", "/api/v1/users",
		`{"email":"exists@example.com","name":"Jane"}`, nil)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
	body := errorBody(t, envelope)
	if body["code"] != "Conflict" {
		t.Errorf("expected code Conflict, got %v", body["code"])
	}
	if body["message"] != "user already exists" {
		t.Errorf("expected default text as message, got %v", body["message"])
	}
}

func TestCreateUser_DatabaseErrorDetails(t *testing.T) {
	rr, envelope := doRequest(t, "POST", "/api/v1/users",
		`{"email":"db_error@example.com","name":"Jane"}`, nil)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	body := errorBody(t, envelope)
	if body["message"] != "Unable to process your request at this time" {
		t.Errorf("unexpected message %v", body["message"])
	}
	if details, _ := body["details"].(string); !strings.Contains(details, "connection timeout") {
		t.Errorf("details should surface the cause chain, got %v", body["details"])
	}
}

func TestTraceID_EchoedInBodyAndHeader(t *testing.T) {
	rr, envelope := doRequest(t, "GET", "/api/v1/users/not_found", "",
		map[string]string{"X-Trace-Id": "trace-abc"})

	if got := rr.Header().Get("X-Trace-Id"); got != "trace-abc" {
		t.Errorf("expected trace header echoed, got %q", got)
	}
	body := errorBody(t, envelope)
	if body["trace_id"] != "trace-abc" {
		t.Errorf("expected trace id in body, got %v", body["trace_id"])
	}
}
