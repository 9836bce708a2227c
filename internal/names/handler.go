package names

import (
	"net/http"
	"strconv"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for stage names
type Handler struct {
	service *Service
}

// NewHandler creates a new names handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListNames returns the full reference table
func (h *Handler) ListNames(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, result)
}

// RandomName returns one name picked at random
func (h *Handler) RandomName(c *gin.Context) {
	name, err := h.service.Random(c.Request.Context())
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, name)
}

// GetNamesByID returns the names matching the path id
func (h *Handler) GetNamesByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid name id")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, result)
}

// RegisterPublicRoutes registers the deliberately unauthenticated routes.
// The full-table listing at /random-name predates the auth gate and clients
// still depend on it.
func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.GET("/random-name", h.ListNames)
}

// RegisterRoutes registers names routes on the authenticated API group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/random-name", h.RandomName)
	rg.GET("/random-name/:id", h.GetNamesByID)
}
