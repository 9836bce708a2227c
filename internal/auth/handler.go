package auth

import (
	"net/http"

	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/common"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/middleware"
	"github.com/Karaoke-Roulette/karaoke-roulette-be/pkg/validation"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Signup creates an account and returns its first token
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.FromBindingError(err).Error())
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.CreatedResponse(c, resp)
}

// Signin verifies credentials and returns a token
func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.FromBindingError(err).Error())
		return
	}

	resp, err := h.service.Signin(c.Request.Context(), &req)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// Me returns the account behind the caller's token
func (h *Handler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		common.ErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.SuccessResponse(c, user)
}

// RegisterRoutes registers the token issuance routes; these sit outside the
// authenticated API group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/signin", h.Signin)
}

// RegisterProtectedRoutes registers account routes on the authenticated API group
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
}
