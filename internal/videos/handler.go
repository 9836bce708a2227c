package videos

import (
	"net/http"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for video search
type Handler struct {
	service *Service
}

// NewHandler creates a new videos handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SearchVideos returns the shaped results for a karaoke search
func (h *Handler) SearchVideos(c *gin.Context) {
	term := c.Query("search")
	if term == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "missing search query")
		return
	}

	candidates, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, candidates)
}

// RandomVideo returns one candidate picked at random from the popular pool
func (h *Handler) RandomVideo(c *gin.Context) {
	candidate, err := h.service.Random(c.Request.Context())
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, candidate)
}

// RegisterRoutes registers video routes on the authenticated API group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/videos", h.SearchVideos)
	rg.GET("/random-videos", h.RandomVideo)
}
