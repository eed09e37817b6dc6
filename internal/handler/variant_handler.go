package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modavn/catalog_api/internal/service"
	"github.com/modavn/catalog_api/internal/utils"
)

// VariantHandler handles sub-product HTTP requests.
type VariantHandler struct {
	variants *service.VariantService
}

// NewVariantHandler creates a new VariantHandler.
func NewVariantHandler(variants *service.VariantService) *VariantHandler {
	return &VariantHandler{variants: variants}
}

// CreateVariant stores a new sub-product under its parent product.
// POST /v1/variants
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	var req service.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	writeResult(c, http.StatusCreated, h.variants.AddVariant(c.Request.Context(), &req))
}

// UpdateVariant overwrites an existing sub-product.
// PUT /v1/variants/:id
func (h *VariantHandler) UpdateVariant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	writeResult(c, http.StatusOK, h.variants.UpdateVariant(c.Request.Context(), id, &req))
}

// DeleteVariant removes a sub-product.
// DELETE /v1/variants/:id
func (h *VariantHandler) DeleteVariant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	writeResult(c, http.StatusOK, h.variants.DeleteVariant(c.Request.Context(), id))
}

// ListFilterValues returns the aggregated filter option lists.
// GET /v1/products/filter-values
func (h *VariantHandler) ListFilterValues(c *gin.Context) {
	values, err := h.variants.ListFilterValues(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve filter values")
		return
	}
	utils.Success(c, http.StatusOK, "Successfully retrieved filter values", values)
}
