package api

import (
	"net/http"

	"storefront-rules/internal/domain/user"
	reqdto "storefront-rules/internal/handler/dto/request"
	resdto "storefront-rules/internal/handler/dto/response"
	"storefront-rules/internal/handler/httperr"
	"storefront-rules/internal/handler/middleware"
	"storefront-rules/internal/pkg/config"
	"storefront-rules/internal/pkg/cookie"
	"storefront-rules/internal/pkg/jwt"
	"storefront-rules/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	uc         usecase.AuthUseCase
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewAuthHandler(uc usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		uc:         uc,
		jwtService: jwtService,
		cookieCfg:  cfg.Cookie,
	}
}

// @Summary Login
// @Description Authenticate with email and password, set the access token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	email, err := user.NewEmail(req.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email", nil)
		return
	}

	result, err := h.uc.Login(c.Request.Context(), email, req.Password)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(result.User))
}

// @Summary Logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Return the authenticated user with the loyalty balance
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.uc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(view))
}
