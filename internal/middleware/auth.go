package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/heritage-admin/internal/response"
	"github.com/stemsi/heritage-admin/internal/service"
)

const (
	// ContextKeyClaims is the Gin context key for JWT claims.
	ContextKeyClaims = "claims"

	// LoginPath is where unauthenticated page requests are sent.
	LoginPath = "/login"
)

var errNoToken = errors.New("no token")

// RequireUserSession guards server-rendered pages. The token is read from the
// session cookie and must still be the user's active session; otherwise the
// cookie is cleared and the browser is redirected to the login page.
func RequireUserSession(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, _ := c.Cookie(cookieName)

		claims, err := authenticate(c, authService, tokenStr)
		if err != nil {
			c.SetCookie(cookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireUserJWT guards the JSON API. The token comes from the Authorization
// header.
func RequireUserJWT(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, authService, bearerToken(c))
		switch {
		case errors.Is(err, errNoToken):
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		case errors.Is(err, service.ErrSessionEnded):
			response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionInvalidated)
			return
		case err != nil:
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the JWT claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

// SessionID returns the ID of the authenticated session, or "".
func SessionID(c *gin.Context) string {
	if claims := GetClaims(c); claims != nil {
		return claims.ID
	}
	return ""
}

func authenticate(c *gin.Context, authService *service.AuthService, tokenStr string) (*service.Claims, error) {
	if tokenStr == "" {
		return nil, errNoToken
	}

	claims, err := authService.ValidateToken(tokenStr)
	if err != nil {
		return nil, err
	}

	if err := authService.ValidateSession(c.Request.Context(), claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
