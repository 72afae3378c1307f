package handler

import (
	"net/http"
	"strings"
	"time"

	"daily-app/internal/middleware"
	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler 负责登录/注册相关接口
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler 构造函数
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// ---------- 注册 ----------

func (h *AuthHandler) Register(c *gin.Context) {
	var form service.RegisterForm
	if !bindForm(c, &form) {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), form)
	if err != nil {
		writeError(c, err, "/auth/register")
		return
	}

	util.Success(c, util.Response{
		"message": "注册成功",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// ---------- 登录 ----------

// LoginPage 返回登录页需要的数据：跳转目标和提示信息。
// 已登录时 logged_in 为 true，前端可直接跳到 next
func (h *AuthHandler) LoginPage(c *gin.Context) {
	resp := util.Response{
		"next":      safeNext(c.Query("next")),
		"flash":     util.PopFlash(c),
		"logged_in": false,
	}
	if actor, ok := middleware.CurrentActor(c); ok {
		resp["logged_in"] = true
		resp["username"] = actor.Username
	}
	util.Success(c, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form service.LoginForm
	if !bindForm(c, &form) {
		return
	}

	res, err := h.auth.Login(c.Request.Context(), form, service.ClientInfo{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		writeError(c, err, "/auth/login")
		return
	}

	// 未勾选"记住我"时使用会话 cookie
	maxAge := 0
	if form.Remember {
		maxAge = int(time.Until(res.ExpiresAt).Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, res.Token, maxAge, "/", "", false, true)

	util.Success(c, util.Response{
		"token":      res.Token,
		"expires_at": res.ExpiresAt,
		"next":       safeNext(c.Query("next")),
		"user": gin.H{
			"id":       res.User.ID,
			"username": res.User.Username,
			"email":    res.User.Email,
		},
	})
}

// Logout 撤销当前会话并清除 cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.auth.Logout(c.Request.Context(), actor); err != nil {
		writeError(c, err, "/")
		return
	}
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	util.Success(c, util.Response{"message": "已退出登录"})
}

// safeNext only allows local paths as post-login targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
