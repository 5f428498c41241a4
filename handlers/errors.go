package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "courtshare/database/repository/booking"
	courtRepo "courtshare/database/repository/court"
	userRepo "courtshare/database/repository/user"
	bookingSvc "courtshare/services/booking"
	courtSvc "courtshare/services/court"
	"courtshare/utils"
)

// respondServiceError maps service-layer errors onto HTTP statuses. A
// blocked booking decision is a normal outcome and carries its reason;
// anything unmapped is a 500 with the detail kept out of the response.
func respondServiceError(c *gin.Context, err error) {
	var blocked *bookingSvc.BlockedError
	if errors.As(err, &blocked) {
		c.JSON(http.StatusConflict, gin.H{
			"error":  blocked.Message,
			"reason": string(blocked.Reason),
		})
		return
	}

	switch {
	case errors.Is(err, courtRepo.ErrNotFound),
		errors.Is(err, bookingRepo.ErrNotFound),
		errors.Is(err, userRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, bookingSvc.ErrValidation),
		errors.Is(err, courtSvc.ErrInvalidConfig),
		errors.Is(err, courtSvc.ErrUnknownSubCourt):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bookingSvc.ErrNotOwner),
		errors.Is(err, bookingSvc.ErrNotBookingUser),
		errors.Is(err, courtSvc.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, bookingSvc.ErrCourtInactive),
		errors.Is(err, bookingRepo.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// authedUserID pulls the verified UID set by the auth middleware.
func authedUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	uid, ok := v.(string)
	if !ok || uid == "" {
		utils.GetLogger().Error("Invalid user ID type in context", zap.Any("userID", v))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID type"})
		return "", false
	}
	return uid, true
}
