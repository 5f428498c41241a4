package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courtshare/models"
	"courtshare/services/user"
	"courtshare/utils"
)

// UserHandler exposes profile endpoints. All of them act on the
// authenticated caller; there is no cross-account access.
type UserHandler struct {
	UserService user.UserService
}

// EnsureProfileHandler handles POST /api/users/profile. Called by the
// client after sign-in to create the profile on first sight.
func (h *UserHandler) EnsureProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.UserService.EnsureProfile(c.Request.Context(), uid, req.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfileHandler handles GET /api/users/profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	uid, ok := authedUserID(c)
	if !ok {
		return
	}
	profile, err := h.UserService.GetByID(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PUT /api/users/profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid profile update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = uid

	updated, err := h.UserService.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateFCMTokenHandler handles PUT /api/users/fcm-token so the client
// can rotate its push token.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserService.UpdateFCMToken(c.Request.Context(), uid, req.Token); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token updated"})
}

// DeleteProfileHandler handles DELETE /api/users/profile.
func (h *UserHandler) DeleteProfileHandler(c *gin.Context) {
	uid, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.Delete(c.Request.Context(), uid); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}
