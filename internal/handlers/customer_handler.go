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

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CustomerHandler struct {
	repo repositories.CustomerRepository
}

func NewCustomerHandler(repo repositories.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list customers")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	customer, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Customer not found")
			return
		}
		log.Error().Err(err).Str("customer_id", id.String()).Msg("failed to fetch customer")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch customer")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Name and email are required")
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	created, err := h.repo.Create(c.Request.Context(), &customer)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Email already exists")
			return
		}
		log.Error().Err(err).Msg("failed to create customer")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}
	helpers.RespondWithData(c, http.StatusCreated, created)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), id, map[string]interface{}{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"address": req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Customer not found")
		case errors.Is(err, repositories.ErrDuplicateKey):
			helpers.RespondWithError(c, http.StatusBadRequest, "Email already exists")
		default:
			log.Error().Err(err).Str("customer_id", id.String()).Msg("failed to update customer")
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		}
		return
	}
	helpers.RespondWithData(c, http.StatusOK, updated)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Customer not found")
			return
		}
		log.Error().Err(err).Str("customer_id", id.String()).Msg("failed to delete customer")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
