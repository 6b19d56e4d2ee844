package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/welderdefender/share-it/internal/application"
	"github.com/welderdefender/share-it/internal/handler/response"
	"github.com/welderdefender/share-it/internal/middleware"
)

// ItemHandler handles HTTP requests for item operations.
type ItemHandler struct {
	service *application.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *application.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers all item routes on the given router group.
func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/items")
	items.Use(middleware.RequireUserID())
	{
		items.POST("", h.Create)
		items.PATCH("/:itemId", h.Update)
		items.GET("/search", h.Search)
		items.GET("/:itemId", h.GetByID)
		items.GET("", h.GetByOwner)
		items.POST("/:itemId/comment", h.CreateComment)
	}
}

// Create handles POST /items.
func (h *ItemHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req application.CreateItemRequest
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

// Update handles PATCH /items/:itemId.
func (h *ItemHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	itemID, err := parseID(c, "itemId")
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	var req application.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Update(c.Request.Context(), userID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetByID handles GET /items/:itemId.
func (h *ItemHandler) GetByID(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	itemID, err := parseID(c, "itemId")
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), userID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetByOwner handles GET /items?from=&size=.
func (h *ItemHandler) GetByOwner(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	from, size, err := parsePaging(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetByOwner(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Search handles GET /items/search?text=&from=&size=.
func (h *ItemHandler) Search(c *gin.Context) {
	from, size, err := parsePaging(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateComment handles POST /items/:itemId/comment.
func (h *ItemHandler) CreateComment(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	itemID, err := parseID(c, "itemId")
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	var req application.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateComment(c.Request.Context(), userID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
