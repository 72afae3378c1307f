package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookie carries the session token after login.
	TokenCookie = "pl_token"
	actorKey    = "actor"
)

// Authenticator resolves a token into the caller's Actor.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (service.Actor, error)
}

// AuthMiddleware 校验 token 和会话，并在 context 里放入当前 Actor。
// 未登录或会话失效时跳转到登录页，next 为原始地址。
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFrom(c)
		if tokenStr == "" {
			redirectToLogin(c)
			return
		}

		actor, err := auth.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			if !service.HasCode(err, service.ErrorCodeUnauthorized) {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "服务器内部错误，请稍后再试")
				c.Abort()
				return
			}
			redirectToLogin(c)
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalAuth sets the Actor when a valid token is present and never rejects the request.
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := tokenFrom(c); tokenStr != "" {
			if actor, err := auth.Authenticate(c.Request.Context(), tokenStr); err == nil {
				c.Set(actorKey, actor)
			}
		}
		c.Next()
	}
}

// CurrentActor returns the Actor placed by AuthMiddleware.
func CurrentActor(c *gin.Context) (service.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return service.Actor{}, false
	}
	actor, ok := v.(service.Actor)
	return actor, ok && actor.UserID != 0
}

func tokenFrom(c *gin.Context) string {
	// 1) Header: Authorization: Bearer xxx
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	// 2) Cookie pl_token
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/auth/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}
