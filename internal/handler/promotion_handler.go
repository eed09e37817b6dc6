package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modavn/catalog_api/internal/service"
	"github.com/modavn/catalog_api/internal/utils"
)

// PromotionHandler handles promotion HTTP requests.
type PromotionHandler struct {
	promotions *service.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler.
func NewPromotionHandler(promotions *service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotions: promotions}
}

// CreatePromotion stores a new promotion.
// POST /v1/promotions
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req service.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	writeResult(c, http.StatusCreated, h.promotions.AddPromotion(c.Request.Context(), &req))
}

// ListPromotions returns every promotion, newest first.
// GET /v1/promotions
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.promotions.ListPromotions(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve promotions")
		return
	}
	utils.Success(c, http.StatusOK, "Successfully retrieved promotions", promotions)
}

// GetPromotion returns one promotion.
// GET /v1/promotions/:id
func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	promotion, err := h.promotions.GetPromotion(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Promotion not found.")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve promotion")
		return
	}
	utils.Success(c, http.StatusOK, "Successfully retrieved promotion", promotion)
}

// UpdatePromotion overwrites an existing promotion.
// PUT /v1/promotions/:id
func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	writeResult(c, http.StatusOK, h.promotions.UpdatePromotion(c.Request.Context(), id, &req))
}

// DeletePromotion removes a promotion.
// DELETE /v1/promotions/:id
func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	writeResult(c, http.StatusOK, h.promotions.DeletePromotion(c.Request.Context(), id))
}
