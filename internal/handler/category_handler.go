package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/modavn/catalog_api/internal/models"
	"github.com/modavn/catalog_api/internal/repository"
	"github.com/modavn/catalog_api/internal/utils"
)

// CategoryHandler handles category HTTP requests. Categories are simple
// reference rows, so this talks to the repository directly.
type CategoryHandler struct {
	repo *repository.CategoryRepository
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(repo *repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// CategoryRequest is the payload for creating a category.
type CategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

// ListCategories returns all categories ordered by title.
// GET /v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve categories")
		return
	}
	utils.Success(c, http.StatusOK, "Successfully retrieved categories", categories)
}

// CreateCategory stores a new category.
// POST /v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	now := time.Now().UTC()
	category := &models.Category{
		ID:        uuid.New(),
		Title:     req.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.repo.Insert(c.Request.Context(), category); err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create category")
		return
	}
	utils.Success(c, http.StatusCreated, "Category created successfully.", category)
}
