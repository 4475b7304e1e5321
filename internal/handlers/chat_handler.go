package handlers

import (
	"errors"
	"net/http"

	"github.com/andriannf/storedesk/internal/advisory"
	"github.com/andriannf/storedesk/internal/helpers"
	"github.com/andriannf/storedesk/internal/models"
	"github.com/andriannf/storedesk/internal/repositories"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const chatHistoryLimit = 50

type ChatRequest struct {
	Message   string     `json:"message" binding:"required"`
	ProductID *uuid.UUID `json:"product_id"`
}

type ChatHandler struct {
	repo     repositories.ChatRepository
	products repositories.ProductRepository
	advisor  advisory.Advisor
}

func NewChatHandler(repo repositories.ChatRepository, products repositories.ProductRepository, advisor advisory.Advisor) *ChatHandler {
	return &ChatHandler{repo: repo, products: products, advisor: advisor}
}

func (h *ChatHandler) List(c *gin.Context) {
	messages, err := h.repo.ListRecent(c.Request.Context(), chatHistoryLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list chat messages")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch chat messages")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, messages)
}

func (h *ChatHandler) Create(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Message is required")
		return
	}

	// Product context is best effort; an unknown id just means an
	// uncontextualized answer.
	var product *models.Product
	if req.ProductID != nil {
		found, err := h.products.Get(c.Request.Context(), *req.ProductID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			log.Warn().Err(err).Str("product_id", req.ProductID.String()).Msg("failed to load product context for chat")
		}
		product = found
	}

	response := h.advisor.Advise(c.Request.Context(), req.Message, product)

	message := models.ChatMessage{
		UserMessage: req.Message,
		AIResponse:  response,
	}

	created, err := h.repo.Create(c.Request.Context(), &message)
	if err != nil {
		log.Error().Err(err).Msg("failed to persist chat message")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to process chat message")
		return
	}
	helpers.RespondWithData(c, http.StatusCreated, created)
}
