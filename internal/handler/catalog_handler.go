package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modavn/catalog_api/internal/config"
	"github.com/modavn/catalog_api/internal/models"
	"github.com/modavn/catalog_api/internal/service"
	"github.com/modavn/catalog_api/internal/utils"
)

// CatalogHandler handles product-related HTTP requests.
type CatalogHandler struct {
	catalog *service.CatalogService
	page    config.PaginationConfig
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService, page config.PaginationConfig) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, page: page}
}

// CreateProduct stores a product together with its category links.
// POST /v1/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	writeResult(c, http.StatusCreated, h.catalog.CreateProduct(c.Request.Context(), &req))
}

// UpdateProduct overwrites a product and replaces its category links.
// PUT /v1/products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	writeResult(c, http.StatusOK, h.catalog.UpdateProduct(c.Request.Context(), id, &req))
}

// DeleteProduct removes a product with its links and variants.
// DELETE /v1/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	writeResult(c, http.StatusOK, h.catalog.DeleteProduct(c.Request.Context(), id))
}

// GetProduct returns one product with its categories and variants.
// GET /v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found.")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}
	utils.Success(c, http.StatusOK, "Successfully retrieved product", product)
}

// ListProducts returns one page of products, newest first.
// GET /v1/products?page=1&limit=20
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	page, limit = utils.ClampPage(page, limit, h.page.DefaultLimit, h.page.MaxLimit)

	products, total, err := h.catalog.ListProductsPaged(c.Request.Context(), page, limit)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	utils.SuccessWithPagination(c, http.StatusOK, "Successfully retrieved products", products,
		utils.NewPagination(page, limit, total))
}

// ListAllProducts returns every product without pagination.
// GET /v1/products/all
func (h *CatalogHandler) ListAllProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	utils.Success(c, http.StatusOK, "Successfully retrieved products", products)
}

// SearchProducts returns products whose slug or title contains the term.
// GET /v1/products/search?q=term
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	products, err := h.catalog.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search products")
		return
	}
	utils.Success(c, http.StatusOK, "Successfully searched products", products)
}

// FilterProducts returns products owning at least one variant matching every
// predicate present in the body. An empty body matches everything.
// POST /v1/products/filter
func (h *CatalogHandler) FilterProducts(c *gin.Context) {
	var req models.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	products, err := h.catalog.FilterProducts(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to filter products")
		return
	}
	utils.Success(c, http.StatusOK, "Successfully filtered products", products)
}
