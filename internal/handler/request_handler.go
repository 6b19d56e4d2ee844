package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/welderdefender/share-it/internal/application"
	"github.com/welderdefender/share-it/internal/handler/response"
	"github.com/welderdefender/share-it/internal/middleware"
)

// RequestHandler handles HTTP requests for item-request operations.
type RequestHandler struct {
	service *application.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *application.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers all request routes on the given router group.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	requests.Use(middleware.RequireUserID())
	{
		requests.POST("", h.Create)
		requests.GET("", h.GetOwn)
		requests.GET("/all", h.GetAll)
		requests.GET("/:requestId", h.GetByID)
	}
}

// Create handles POST /requests.
func (h *RequestHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req application.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// GetOwn handles GET /requests.
func (h *RequestHandler) GetOwn(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	result, err := h.service.GetOwn(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetAll handles GET /requests/all?from=&size=.
func (h *RequestHandler) GetAll(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	from, size, err := parsePaging(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetAll(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetByID handles GET /requests/:requestId.
func (h *RequestHandler) GetByID(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	requestID, err := parseID(c, "requestId")
	if err != nil {
		response.BadRequest(c, "invalid request id")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), userID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
