package handlers

import (
	"errors"
	"net/http"

	"github.com/andriannf/storedesk/internal/helpers"
	"github.com/andriannf/storedesk/internal/models"
	"github.com/andriannf/storedesk/internal/repositories"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CustomerProductRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	ProductID  uuid.UUID `json:"product_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"omitempty,gte=1"`
}

type CustomerProductHandler struct {
	repo repositories.CustomerProductRepository
}

func NewCustomerProductHandler(repo repositories.CustomerProductRepository) *CustomerProductHandler {
	return &CustomerProductHandler{repo: repo}
}

func (h *CustomerProductHandler) List(c *gin.Context) {
	purchases, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list customer products")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch customer products")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, purchases)
}

func (h *CustomerProductHandler) Create(c *gin.Context) {
	var req CustomerProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Customer ID and Product ID are required")
		return
	}

	purchase := models.CustomerProduct{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	}

	created, err := h.repo.Create(c.Request.Context(), &purchase)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Customer or product does not exist")
			return
		}
		log.Error().Err(err).Msg("failed to create customer product relationship")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer product relationship")
		return
	}
	helpers.RespondWithData(c, http.StatusCreated, created)
}
