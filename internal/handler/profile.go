package handler

import (
	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

// GetProfile 返回当前用户的资料
func (h *AuthHandler) GetProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	user, err := h.auth.Me(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err, "/")
		return
	}
	util.Success(c, util.Response{"profile": user.Profile})
}

// UpdateProfile 更新当前用户的昵称、头像和简介
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var form service.ProfileForm
	if !bindForm(c, &form) {
		return
	}
	profile, err := h.auth.UpdateProfile(c.Request.Context(), actor, form)
	if err != nil {
		writeError(c, err, "/auth/profile")
		return
	}
	util.Success(c, util.Response{"profile": profile})
}

// ChangePassword 修改当前用户密码，其他设备上的登录会失效
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var form service.ChangePasswordForm
	if !bindForm(c, &form) {
		return
	}
	if err := h.auth.ChangePassword(c.Request.Context(), actor, form); err != nil {
		writeError(c, err, "/auth/profile")
		return
	}
	util.Success(c, util.Response{
		"message": "密码修改成功，其他设备需要重新登录",
	})
}
