package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/andriannf/storedesk/internal/helpers"
	"github.com/andriannf/storedesk/internal/models"
	"github.com/andriannf/storedesk/internal/repositories"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CreateCouponRequest struct {
	Code               string    `json:"code" binding:"required"`
	ProductID          uuid.UUID `json:"product_id" binding:"required"`
	DiscountPercentage int       `json:"discount_percentage" binding:"required,gte=1,lte=100"`
	ValidUntil         time.Time `json:"valid_until" binding:"required"`
}

type UpdateCouponRequest struct {
	Code               string    `json:"code" binding:"required"`
	DiscountPercentage int       `json:"discount_percentage" binding:"required,gte=1,lte=100"`
	ValidUntil         time.Time `json:"valid_until" binding:"required"`
	IsActive           bool      `json:"is_active"`
}

type CouponHandler struct {
	repo repositories.CouponRepository
}

func NewCouponHandler(repo repositories.CouponRepository) *CouponHandler {
	return &CouponHandler{repo: repo}
}

func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list coupons")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch coupons")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, coupons)
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Code, product ID, discount percentage, and valid until date are required")
		return
	}

	coupon := models.Coupon{
		Code:               req.Code,
		ProductID:          req.ProductID,
		DiscountPercentage: req.DiscountPercentage,
		ValidUntil:         req.ValidUntil,
		IsActive:           true,
	}

	created, err := h.repo.Create(c.Request.Context(), &coupon)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateKey):
			helpers.RespondWithError(c, http.StatusBadRequest, "Coupon code already exists")
		case errors.Is(err, repositories.ErrInvalidReference):
			helpers.RespondWithError(c, http.StatusBadRequest, "Product does not exist")
		default:
			log.Error().Err(err).Msg("failed to create coupon")
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create coupon")
		}
		return
	}
	helpers.RespondWithData(c, http.StatusCreated, created)
}

func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		return
	}

	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Discount percentage must be between 1 and 100.")
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), id, map[string]interface{}{
		"code":                req.Code,
		"discount_percentage": req.DiscountPercentage,
		"valid_until":         req.ValidUntil,
		"is_active":           req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		case errors.Is(err, repositories.ErrDuplicateKey):
			helpers.RespondWithError(c, http.StatusBadRequest, "Coupon code already exists")
		default:
			log.Error().Err(err).Str("coupon_id", id.String()).Msg("failed to update coupon")
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update coupon")
		}
		return
	}
	helpers.RespondWithData(c, http.StatusOK, updated)
}

func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Coupon not found")
			return
		}
		log.Error().Err(err).Str("coupon_id", id.String()).Msg("failed to delete coupon")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete coupon")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}
