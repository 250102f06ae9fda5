package lending

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusfm/internal/domain"
	"campusfm/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/equipment/:id/missing", h.Missing)
	rg.GET("/equipment/:id/lendings", h.ListByEquipment)
	rg.POST("/lendings", h.CreateLending)
	rg.POST("/checkouts", h.CreateCheckout)
	rg.POST("/bookings", h.CreateBooking)
}

// RegisterAdminRoutes mounts the booking decision, which staff may not make.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
}

func (h *Handler) Missing(c *gin.Context) {
	equipmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid equipment id")
		return
	}

	records, err := h.service.Missing(c.Request.Context(), equipmentID)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "FETCH_FAILED", "Failed to load lending records")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"missing": records})
}

func (h *Handler) ListByEquipment(c *gin.Context) {
	equipmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid equipment id")
		return
	}

	lendings, err := h.service.ListByEquipment(c.Request.Context(), equipmentID)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "FETCH_FAILED", "Failed to load lending records")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lendings": lendings})
}

func (h *Handler) CreateLending(c *gin.Context) {
	var req CreateLendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.CreateLending(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid lending items")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create lending")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lending": l})
}

func (h *Handler) CreateCheckout(c *gin.Context) {
	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	co, err := h.service.CreateCheckout(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid checkout items")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lending not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create checkout")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"checkout": co})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking time range or equipment list")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateBookingStatus(c.Request.Context(), bookingID, domain.BookingStatus(req.Status))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking has already been decided")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}
