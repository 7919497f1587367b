package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/helpers"
	"github.com/videotube/backend/pkg/response"
)

const (
	// CtxUserIDKey holds the authenticated user's ID in the Gin context.
	CtxUserIDKey = "userID"
	// CtxUserKey holds the authenticated principal, credentials stripped.
	CtxUserKey = "user"
)

// Auth is the gate for protected routes. It reads the accessToken cookie,
// falling back to an Authorization bearer header, verifies the token, then
// loads the principal so deleted accounts are rejected even with a live
// token. Every failure is a generic 401; the handler never runs.
func Auth(jwt *helpers.JWTManager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			response.AbortFail(c, http.StatusUnauthorized, "unauthorized request")
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "invalid access token")
			return
		}
		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "invalid access token")
			return
		}
		pub := u.Public()
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserKey, &pub)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(helpers.AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

// CurrentUser returns the principal placed by Auth; ok is false on
// unprotected routes.
func CurrentUser(c *gin.Context) (*entity.PublicUser, bool) {
	v, exists := c.Get(CtxUserKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*entity.PublicUser)
	return u, ok
}
