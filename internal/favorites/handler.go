package favorites

import (
	"net/http"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/middleware"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for favorites
type Handler struct {
	service *Service
}

// NewHandler creates a new favorites handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListFavorites returns all favorites owned by the authenticated user
func (h *Handler) ListFavorites(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		common.ErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	favs, err := h.service.List(c.Request.Context(), ownerID)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, favs)
}

// GetFavorite returns a single favorite by id
func (h *Handler) GetFavorite(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		common.ErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid favorite id")
		return
	}

	fav, err := h.service.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, fav)
}

// CreateFavorite saves a new favorite for the authenticated user
func (h *Handler) CreateFavorite(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		common.ErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.FromBindingError(err).Error())
		return
	}

	fav, err := h.service.Create(c.Request.Context(), ownerID, &req)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.CreatedResponse(c, fav)
}

// UpdateFavorite updates favorites addressed by videoId in the path.
// A request matching nothing returns 200 with an empty list.
func (h *Handler) UpdateFavorite(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		common.ErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	videoID := c.Param("id")
	if videoID == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "missing video id")
		return
	}

	var req UpdateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.FromBindingError(err).Error())
		return
	}

	favs, err := h.service.UpdateByVideoID(c.Request.Context(), ownerID, videoID, &req)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, favs)
}

// DeleteFavorite removes a favorite by id and returns the deleted record
func (h *Handler) DeleteFavorite(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		common.ErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid favorite id")
		return
	}

	fav, err := h.service.Delete(c.Request.Context(), ownerID, id)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, fav)
}

// RegisterRoutes registers favorites routes on the authenticated API group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favs := rg.Group("/favorites")
	{
		favs.GET("", h.ListFavorites)
		favs.POST("", h.CreateFavorite)
		favs.GET("/:id", h.GetFavorite)
		favs.PUT("/:id", h.UpdateFavorite)
		favs.DELETE("/:id", h.DeleteFavorite)
	}
}
