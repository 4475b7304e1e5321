package handlers

import (
	"errors"
	"net/http"

	"github.com/andriannf/storedesk/internal/cache"
	"github.com/andriannf/storedesk/internal/helpers"
	"github.com/andriannf/storedesk/internal/models"
	"github.com/andriannf/storedesk/internal/repositories"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"gte=0"`
	ImageURL    string          `json:"image_url"`
}

type ProductHandler struct {
	repo  repositories.ProductRepository
	cache *cache.ProductCache
}

// NewProductHandler wires the repository and an optional read cache;
// cache may be nil when redis is not configured.
func NewProductHandler(repo repositories.ProductRepository, productCache *cache.ProductCache) *ProductHandler {
	return &ProductHandler{repo: repo, cache: productCache}
}

func (h *ProductHandler) List(c *gin.Context) {
	if h.cache != nil {
		if products, ok := h.cache.GetList(c.Request.Context()); ok {
			helpers.RespondWithData(c, http.StatusOK, products)
			return
		}
	}

	products, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	if h.cache != nil {
		h.cache.SetList(c.Request.Context(), products)
	}
	helpers.RespondWithData(c, http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	if h.cache != nil {
		if product, ok := h.cache.Get(c.Request.Context(), id); ok {
			helpers.RespondWithData(c, http.StatusOK, product)
			return
		}
	}

	product, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Str("product_id", id.String()).Msg("failed to fetch product")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	if h.cache != nil {
		h.cache.Set(c.Request.Context(), product)
	}
	helpers.RespondWithData(c, http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Name and price are required")
		return
	}
	if req.Price.IsNegative() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}

	created, err := h.repo.Create(c.Request.Context(), &product)
	if err != nil {
		log.Error().Err(err).Msg("failed to create product")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), created.ID)
	}
	helpers.RespondWithData(c, http.StatusCreated, created)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if req.Price.IsNegative() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), id, map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"stock":       req.Stock,
		"image_url":   req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), id)
	}
	helpers.RespondWithData(c, http.StatusOK, updated)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), id)
	}
	helpers.RespondWithData(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
