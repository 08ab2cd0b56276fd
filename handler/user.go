package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/templateapi/logger"
	"github.com/skillsenselab/templateapi/response"
	"github.com/skillsenselab/templateapi/server/middleware"
	"github.com/skillsenselab/templateapi/service/user"
	"github.com/skillsenselab/templateapi/validation"
)

// CreateUserRequest is the POST /users payload.
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=100"`
}

// UserHandler exposes the user service over HTTP.
type UserHandler struct {
	svc *user.Service
	log *logger.Logger
}

// NewUserHandler creates the handler.
func NewUserHandler(svc *user.Service, log *logger.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log.WithComponent("handler.user")}
}

// Register mounts the user routes on group.
func (h *UserHandler) Register(group *gin.RouterGroup) {
	group.GET("/users/:id", h.Get)
	group.POST("/users", h.Create)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	traceID := middleware.GetTraceID(c)
	id := c.Param("id")

	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.log.WithTraceID(traceID).Error("failed to get user", logger.Fields(
			logger.FieldError, err.Error(),
			"user_id", id,
		))
		response.Error(c, traceID, err)
		return
	}
	response.Success(c, u)
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	traceID := middleware.GetTraceID(c)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, traceID, &bindError{cause: err})
		return
	}
	if err := validation.Validate(req); err != nil {
		response.Error(c, traceID, err)
		return
	}

	u, err := h.svc.Create(c.Request.Context(), user.CreateParams{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		h.log.WithTraceID(traceID).Error("failed to create user", logger.Fields(
			logger.FieldError, err.Error(),
			"user_email", req.Email,
		))
		response.Error(c, traceID, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, u)
}
