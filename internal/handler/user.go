package handler

import (
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe 返回当前登录用户信息（需要经过 AuthMiddleware）
func (h *AuthHandler) GetMe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	user, err := h.auth.Me(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err, "/")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":            user.ID,
			"username":      user.Username,
			"email":         user.Email,
			"last_login_at": user.LastLoginAt,
			"profile":       user.Profile,
		},
	})
}
