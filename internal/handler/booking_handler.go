package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/welderdefender/share-it/internal/application"
	bookingDomain "github.com/welderdefender/share-it/internal/domain/booking"
	"github.com/welderdefender/share-it/internal/handler/response"
	"github.com/welderdefender/share-it/internal/middleware"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireUserID())
	{
		bookings.POST("", h.Create)
		bookings.PATCH("/:bookingId", h.SetApproval)
		bookings.GET("/owner", h.GetOwnerBookings)
		bookings.GET("/:bookingId", h.GetByID)
		bookings.GET("", h.GetBookerBookings)
	}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req application.CreateBookingRequest
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

// SetApproval handles PATCH /bookings/:bookingId?approved=.
func (h *BookingHandler) SetApproval(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	bookingID, err := parseID(c, "bookingId")
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.BadRequest(c, "approved must be true or false")
		return
	}

	result, err := h.service.SetApproval(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetByID handles GET /bookings/:bookingId.
func (h *BookingHandler) GetByID(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	bookingID, err := parseID(c, "bookingId")
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetBookerBookings handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) GetBookerBookings(c *gin.Context) {
	h.list(c, h.service.GetBookerBookings)
}

// GetOwnerBookings handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) GetOwnerBookings(c *gin.Context) {
	h.list(c, h.service.GetOwnerBookings)
}

func (h *BookingHandler) list(c *gin.Context, fn func(ctx context.Context, subjectID int64, filter bookingDomain.StateFilter, from, size int) ([]application.BookingDTO, error)) {
	userID, _ := middleware.GetUserID(c)

	filter, err := bookingDomain.ParseStateFilter(c.DefaultQuery("state", "ALL"))
	if err != nil {
		response.Error(c, err)
		return
	}
	from, size, err := parsePaging(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := fn(c.Request.Context(), userID, filter, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
