package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courtshare/services/booking"
	"courtshare/utils"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	BookingService booking.BookingService
}

// ListSlotsHandler handles GET /api/courts/:id/slots.
// Query: date=YYYY-MM-DD, duration (minutes, default 60), subCourt.
func (h *BookingHandler) ListSlotsHandler(c *gin.Context) {
	courtID := c.Param("id")
	date := c.Query("date")
	subCourtID := c.Query("subCourt")

	duration := 60
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a number of minutes"})
			return
		}
		duration = parsed
	}

	slots, err := h.BookingService.AvailableSlots(c.Request.Context(), courtID, subCourtID, date, duration)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":            date,
		"durationMinutes": duration,
		"slots":           slots,
	})
}

// CreateBookingHandler handles POST /api/bookings. The booking user is
// always the authenticated caller.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req struct {
		CourtID         string `json:"courtId" binding:"required"`
		SubCourtID      string `json:"subCourtId"`
		Date            string `json:"date" binding:"required,date_ymd"`
		Time            string `json:"time" binding:"required,clock_time"`
		DurationMinutes int    `json:"durationMinutes" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.BookingService.Create(c.Request.Context(), userID, booking.CreateBookingRequest{
		CourtID:         req.CourtID,
		SubCourtID:      req.SubCourtID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ConfirmBookingHandler handles POST /api/bookings/:id/confirm (owner).
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.BookingService.Confirm(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed"})
}

// RejectBookingHandler handles POST /api/bookings/:id/reject (owner).
func (h *BookingHandler) RejectBookingHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.BookingService.Reject(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking rejected"})
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel (player).
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.BookingService.Cancel(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// MyBookingsHandler handles GET /api/bookings/mine.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	bookings, err := h.BookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// OwnerBookingsHandler handles GET /api/bookings/owner.
func (h *BookingHandler) OwnerBookingsHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	bookings, err := h.BookingService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
