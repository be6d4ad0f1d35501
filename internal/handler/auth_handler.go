package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/heritage-admin/internal/config"
	"github.com/stemsi/heritage-admin/internal/middleware"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/response"
	"github.com/stemsi/heritage-admin/internal/service"
	"github.com/stemsi/heritage-admin/internal/validator"
	"github.com/stemsi/heritage-admin/internal/view"
)

// HomePath is where a successful login lands.
const HomePath = culturalHeritagesPath

// AuthHandler handles the login pages and the API token endpoint.
type AuthHandler struct {
	cfg         *config.Config
	pages       *Pages
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, pages *Pages, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, pages: pages, authService: authService}
}

// LoginForm godoc
// GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, view.NewForm(nil, nil), "")
}

// Login godoc
// POST /login
// Verifies email + password, stores the JWT in the session cookie and replaces
// any earlier session of the same user.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		h.renderLogin(c, http.StatusUnprocessableEntity, view.NewForm(map[string]string{"email": req.Email}, fields), "")
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.renderLogin(c, http.StatusUnprocessableEntity, view.NewForm(map[string]string{"email": req.Email}, nil), h.pages.lang.T("app.invalid_credentials"))
		return
	}
	if err != nil {
		h.pages.serverError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookie, token, int(h.cfg.JWTExpiry.Seconds()), "/", "", h.cfg.SecureCookies, true)
	c.Redirect(http.StatusSeeOther, HomePath)
}

// Logout godoc
// POST /logout
// Ends the current session so the token stops working everywhere.
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims := middleware.GetClaims(c); claims != nil {
		if err := h.authService.Logout(c.Request.Context(), claims.UserID); err != nil {
			h.pages.serverError(c, err)
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookie, "", -1, "/", "", h.cfg.SecureCookies, true)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// APILogin godoc
// POST /api/v1/auth/login
// Returns a bearer token for the JSON API.
func (h *AuthHandler) APILogin(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{Token: token, User: *user})
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, form *view.FormState, message string) {
	pg := h.pages.page(c, "app.login")
	pg.Form = form
	pg.Message = message
	c.HTML(status, "auth/login", pg)
}
