package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/templateapi/logger"
	"github.com/skillsenselab/templateapi/response"
	"github.com/skillsenselab/templateapi/server/middleware"
	"github.com/skillsenselab/templateapi/service/template"
	"github.com/skillsenselab/templateapi/validation"
)

// CreateTemplateRequest is the POST /templates payload.
type CreateTemplateRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Content     string `json:"content" validate:"required"`
}

// TemplateHandler exposes the template service over HTTP.
type TemplateHandler struct {
	svc *template.Service
	log *logger.Logger
}

// NewTemplateHandler creates the handler.
func NewTemplateHandler(svc *template.Service, log *logger.Logger) *TemplateHandler {
	return &TemplateHandler{svc: svc, log: log.WithComponent("handler.template")}
}

// Register mounts the template routes on group.
func (h *TemplateHandler) Register(group *gin.RouterGroup) {
	group.GET("/templates/:id", h.Get)
	group.POST("/templates", h.Create)
}

// Get handles GET /templates/:id.
func (h *TemplateHandler) Get(c *gin.Context) {
	traceID := middleware.GetTraceID(c)
	id := c.Param("id")

	tmpl, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.log.WithTraceID(traceID).Error("failed to get template", logger.Fields(
			logger.FieldError, err.Error(),
			"template_id", id,
		))
		response.Error(c, traceID, err)
		return
	}
	response.Success(c, tmpl)
}

// Create handles POST /templates.
func (h *TemplateHandler) Create(c *gin.Context) {
	traceID := middleware.GetTraceID(c)

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, traceID, &bindError{cause: err})
		return
	}
	if err := validation.Validate(req); err != nil {
		response.Error(c, traceID, err)
		return
	}

	tmpl, err := h.svc.Create(c.Request.Context(), template.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		h.log.WithTraceID(traceID).Error("failed to create template", logger.Fields(
			logger.FieldError, err.Error(),
			"template_name", req.Name,
		))
		response.Error(c, traceID, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, tmpl)
}
