package handler

import (
	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

const noteListPath = "/note/"

// NoteHandler 负责笔记、属性和笔记类型接口
type NoteHandler struct {
	notes *service.NoteService
}

func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

func (h *NoteHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.notes.List(c.Request.Context(), actor, pageParam(c))
	if err != nil {
		writeError(c, err, "/")
		return
	}
	listResponse(c, page)
}

// CreateForm GET /note/create，返回可选类型
func (h *NoteHandler) CreateForm(c *gin.Context) {
	types, err := h.notes.Types(c.Request.Context())
	if err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"types": types})
}

func (h *NoteHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var form service.NoteForm
	if !bindForm(c, &form) {
		return
	}
	note, err := h.notes.Create(c.Request.Context(), actor, form)
	if err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"note": note})
}

func (h *NoteHandler) View(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	note, err := h.notes.Get(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"note": note})
}

// EditForm 回填笔记和可选类型
func (h *NoteHandler) EditForm(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	note, err := h.notes.Get(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err, noteListPath)
		return
	}
	types, err := h.notes.Types(c.Request.Context())
	if err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"note": note, "types": types})
}

func (h *NoteHandler) Edit(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var form service.NoteForm
	if !bindForm(c, &form) {
		return
	}
	note, err := h.notes.Edit(c.Request.Context(), actor, id, form)
	if err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"note": note})
}

func (h *NoteHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.notes.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"message": "删除成功"})
}

// ---------- 属性 ----------

func (h *NoteHandler) AddAttr(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var form service.NoteAttrForm
	if !bindForm(c, &form) {
		return
	}
	attr, err := h.notes.AddAttr(c.Request.Context(), actor, id, form)
	if err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"attr": attr})
}

func (h *NoteHandler) EditAttr(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	attrID, ok := parseID(c, "attr")
	if !ok {
		return
	}
	var form service.NoteAttrForm
	if !bindForm(c, &form) {
		return
	}
	attr, err := h.notes.EditAttr(c.Request.Context(), actor, id, attrID, form)
	if err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"attr": attr})
}

func (h *NoteHandler) DeleteAttr(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	attrID, ok := parseID(c, "attr")
	if !ok {
		return
	}
	if err := h.notes.DeleteAttr(c.Request.Context(), actor, id, attrID); err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"message": "删除成功"})
}

// ---------- 类型 ----------

func (h *NoteHandler) Types(c *gin.Context) {
	types, err := h.notes.Types(c.Request.Context())
	if err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"types": types})
}

func (h *NoteHandler) CreateType(c *gin.Context) {
	var form service.NoteTypeForm
	if !bindForm(c, &form) {
		return
	}
	t, err := h.notes.CreateType(c.Request.Context(), form)
	if err != nil {
		writeError(c, err, noteListPath)
		return
	}
	util.Success(c, util.Response{"type": t})
}
