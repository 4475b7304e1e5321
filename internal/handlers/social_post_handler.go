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

type CreateSocialPostRequest struct {
	Title       string     `json:"title" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	Platform    string     `json:"platform" binding:"required,oneof=facebook instagram twitter linkedin tiktok"`
	ProductID   *uuid.UUID `json:"product_id"`
	ImageURL    string     `json:"image_url"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type UpdateSocialPostRequest struct {
	Title       string     `json:"title" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	Platform    string     `json:"platform" binding:"required,oneof=facebook instagram twitter linkedin tiktok"`
	Status      string     `json:"status" binding:"required,oneof=draft scheduled published"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type SocialPostHandler struct {
	repo repositories.SocialPostRepository
}

func NewSocialPostHandler(repo repositories.SocialPostRepository) *SocialPostHandler {
	return &SocialPostHandler{repo: repo}
}

func (h *SocialPostHandler) List(c *gin.Context) {
	posts, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list social posts")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch social posts")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, posts)
}

func (h *SocialPostHandler) Create(c *gin.Context) {
	var req CreateSocialPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Title, content, and platform are required")
		return
	}

	post := models.SocialPost{
		Title:       req.Title,
		Content:     req.Content,
		Platform:    req.Platform,
		ProductID:   req.ProductID,
		ImageURL:    req.ImageURL,
		ScheduledAt: req.ScheduledAt,
	}

	created, err := h.repo.Create(c.Request.Context(), &post)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Product does not exist")
			return
		}
		log.Error().Err(err).Msg("failed to create social post")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create social post")
		return
	}
	helpers.RespondWithData(c, http.StatusCreated, created)
}

func (h *SocialPostHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Social post not found")
		return
	}

	var req UpdateSocialPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), id, map[string]interface{}{
		"title":        req.Title,
		"content":      req.Content,
		"platform":     req.Platform,
		"status":       req.Status,
		"scheduled_at": req.ScheduledAt,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Social post not found")
			return
		}
		log.Error().Err(err).Str("post_id", id.String()).Msg("failed to update social post")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update social post")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, updated)
}

func (h *SocialPostHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Social post not found")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Social post not found")
			return
		}
		log.Error().Err(err).Str("post_id", id.String()).Msg("failed to delete social post")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete social post")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, gin.H{"message": "Social post deleted successfully"})
}
