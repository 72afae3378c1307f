package handler

import (
	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

const categoryListPath = "/bill/category"

// Categories GET /bill/category[?tree=1]
func (h *BillHandler) Categories(c *gin.Context) {
	ctx := c.Request.Context()
	cats, err := h.categories.List(ctx)
	if err != nil {
		writeError(c, err, billListPath)
		return
	}
	resp := util.Response{"categories": cats}
	if c.Query("tree") == "1" {
		tree, err := h.categories.Tree(ctx)
		if err != nil {
			writeError(c, err, billListPath)
			return
		}
		resp["tree"] = tree
	}
	resp["flash"] = util.PopFlash(c)
	util.Success(c, resp)
}

func (h *BillHandler) CreateCategory(c *gin.Context) {
	var form service.CategoryForm
	if !bindForm(c, &form) {
		return
	}
	cat, err := h.categories.Create(c.Request.Context(), form)
	if err != nil {
		writeError(c, err, categoryListPath)
		return
	}
	util.Success(c, util.Response{"category": cat})
}

// EditCategoryForm 回填表单，父分类候选不含自身及子孙
func (h *BillHandler) EditCategoryForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	edit, err := h.categories.EditForm(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, categoryListPath)
		return
	}
	util.Success(c, util.Response{"category": edit.Category, "parents": edit.Parents})
}

func (h *BillHandler) EditCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var form service.CategoryForm
	if !bindForm(c, &form) {
		return
	}
	cat, err := h.categories.Edit(c.Request.Context(), id, form)
	if err != nil {
		writeError(c, err, categoryListPath)
		return
	}
	util.Success(c, util.Response{"category": cat})
}

// DeleteCategory 有账单引用时跳回分类列表并提示
func (h *BillHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, categoryListPath)
		return
	}
	util.Success(c, util.Response{"message": "删除成功"})
}
