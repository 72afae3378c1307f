package handler

import (
	"daily-app/internal/repository"
	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

const friendListPath = "/friend/"

// FriendHandler 负责好友及其联系方式接口
type FriendHandler struct {
	friends *service.FriendService
}

func NewFriendHandler(friends *service.FriendService) *FriendHandler {
	return &FriendHandler{friends: friends}
}

func (h *FriendHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.friends.List(c.Request.Context(), actor, pageParam(c))
	if err != nil {
		writeError(c, err, "/")
		return
	}
	listResponse(c, page)
}

func (h *FriendHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var form service.FriendForm
	if !bindForm(c, &form) {
		return
	}
	friend, err := h.friends.Create(c.Request.Context(), actor, form)
	if err != nil {
		writeError(c, err, friendListPath)
		return
	}
	util.Success(c, util.Response{"friend": friend})
}

// View 返回好友和全部联系方式，也用于编辑页回填
func (h *FriendHandler) View(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	friend, err := h.friends.Get(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err, friendListPath)
		return
	}
	util.Success(c, util.Response{"friend": friend})
}

func (h *FriendHandler) Edit(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var form service.FriendForm
	if !bindForm(c, &form) {
		return
	}
	friend, err := h.friends.Edit(c.Request.Context(), actor, id, form)
	if err != nil {
		writeError(c, err, friendListPath)
		return
	}
	util.Success(c, util.Response{"friend": friend})
}

func (h *FriendHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.friends.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err, friendListPath)
		return
	}
	util.Success(c, util.Response{"message": "删除成功"})
}

// ---------- 联系方式 ----------

func (h *FriendHandler) AddPhone(c *gin.Context) {
	var form service.PhoneForm
	h.addIdentity(c, &form, "phone", func(actor service.Actor, id uint) (interface{}, error) {
		return h.friends.AddPhone(c.Request.Context(), actor, id, form)
	})
}

func (h *FriendHandler) AddQQ(c *gin.Context) {
	var form service.QQForm
	h.addIdentity(c, &form, "qq", func(actor service.Actor, id uint) (interface{}, error) {
		return h.friends.AddQQ(c.Request.Context(), actor, id, form)
	})
}

func (h *FriendHandler) AddWechat(c *gin.Context) {
	var form service.WechatForm
	h.addIdentity(c, &form, "wechat", func(actor service.Actor, id uint) (interface{}, error) {
		return h.friends.AddWechat(c.Request.Context(), actor, id, form)
	})
}

func (h *FriendHandler) AddEmail(c *gin.Context) {
	var form service.EmailForm
	h.addIdentity(c, &form, "email", func(actor service.Actor, id uint) (interface{}, error) {
		return h.friends.AddEmail(c.Request.Context(), actor, id, form)
	})
}

func (h *FriendHandler) addIdentity(c *gin.Context, form interface{}, key string, add func(service.Actor, uint) (interface{}, error)) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !bindForm(c, form) {
		return
	}
	rec, err := add(actor, id)
	if err != nil {
		writeError(c, err, friendListPath)
		return
	}
	util.Success(c, util.Response{key: rec})
}

// DeleteIdentity 返回删除某一类联系方式的 handler，kind 取 repository.Identity*
func (h *FriendHandler) DeleteIdentity(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentActor(c)
		if !ok {
			return
		}
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		sub, ok := parseID(c, "sub")
		if !ok {
			return
		}
		if err := h.friends.DeleteIdentity(c.Request.Context(), actor, id, kind, sub); err != nil {
			writeError(c, err, friendListPath)
			return
		}
		util.Success(c, util.Response{"message": "删除成功"})
	}
}

// IdentityKinds lists the sub-identity route segments.
var IdentityKinds = []string{
	repository.IdentityPhone,
	repository.IdentityQQ,
	repository.IdentityWechat,
	repository.IdentityEmail,
}
