package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	courtRepo "courtshare/database/repository/court"
	"courtshare/models"
	"courtshare/services/court"
	"courtshare/utils"
)

// CourtHandler exposes court listing management and search.
type CourtHandler struct {
	CourtService court.CourtService
}

// CreateCourtHandler handles POST /api/courts. The owner is the
// authenticated caller.
func (h *CourtHandler) CreateCourtHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.Court
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid court payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.CourtService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCourtHandler handles GET /api/courts/:id.
func (h *CourtHandler) GetCourtHandler(c *gin.Context) {
	found, err := h.CourtService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateCourtHandler handles PUT /api/courts/:id.
func (h *CourtHandler) UpdateCourtHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.Court
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid court payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.CourtService.Update(c.Request.Context(), ownerID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCourtHandler handles DELETE /api/courts/:id.
func (h *CourtHandler) DeleteCourtHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.CourtService.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Court deleted"})
}

// MyCourtsHandler handles GET /api/courts/mine.
func (h *CourtHandler) MyCourtsHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	courts, err := h.CourtService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courts)
}

// SearchCourtsHandler handles GET /api/courts.
// Query: city, surface, indoor, maxPrice, limit, offset.
func (h *CourtHandler) SearchCourtsHandler(c *gin.Context) {
	filter := courtRepo.SearchFilter{
		City:    c.Query("city"),
		Surface: c.Query("surface"),
	}
	if v := c.Query("indoor"); v != "" {
		indoor, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "indoor must be true or false"})
			return
		}
		filter.Indoor = &indoor
	}
	if v := c.Query("maxPrice"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must be a number"})
			return
		}
		filter.MaxPricePerHour = maxPrice
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.Limit = limit
		}
	}
	if v := c.Query("offset"); v != "" {
		if offset, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.Offset = offset
		}
	}

	courts, err := h.CourtService.Search(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courts)
}

// SetAvailabilityHandler handles PUT /api/courts/:id/availability.
// Query: subCourt targets a sub-court override.
func (h *CourtHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}

	var cfg models.AvailabilityConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		logger.Error("Invalid availability config", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	err := h.CourtService.SetAvailability(c.Request.Context(), ownerID, c.Param("id"), c.Query("subCourt"), cfg)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// UploadPhotoHandler handles POST /api/courts/:id/photos with a
// multipart "file" field.
func (h *CourtHandler) UploadPhotoHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.CourtService.AttachPhoto(c.Request.Context(), ownerID, c.Param("id"), tempFilePath)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "photo uploaded successfully",
		"downloadURL": url,
	})
}

// DeletePhotoHandler handles DELETE /api/courts/:id/photos/:photoId.
func (h *CourtHandler) DeletePhotoHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.CourtService.RemovePhoto(c.Request.Context(), ownerID, c.Param("id"), c.Param("photoId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photo removed"})
}
