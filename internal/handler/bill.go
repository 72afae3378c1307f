package handler

import (
	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

const billListPath = "/bill/"

// BillHandler 负责账单相关接口
type BillHandler struct {
	bills      *service.BillService
	categories *service.CategoryService
	stats      *service.StatisticsService
}

func NewBillHandler(bills *service.BillService, categories *service.CategoryService, stats *service.StatisticsService) *BillHandler {
	return &BillHandler{bills: bills, categories: categories, stats: stats}
}

// List GET /bill/?page=N
func (h *BillHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.bills.List(c.Request.Context(), actor, pageParam(c))
	if err != nil {
		writeError(c, err, "/")
		return
	}
	listResponse(c, page)
}

// CreateForm GET /bill/create，返回可选分类
func (h *BillHandler) CreateForm(c *gin.Context) {
	cats, err := h.bills.FormOptions(c.Request.Context())
	if err != nil {
		writeError(c, err, billListPath)
		return
	}
	util.Success(c, util.Response{"categories": cats})
}

func (h *BillHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var form service.BillForm
	if !bindForm(c, &form) {
		return
	}
	bill, err := h.bills.Create(c.Request.Context(), actor, form)
	if err != nil {
		writeError(c, err, billListPath)
		return
	}
	util.Success(c, util.Response{"bill": bill})
}

// EditForm GET /bill/edit/:id，回填表单
func (h *BillHandler) EditForm(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	bill, err := h.bills.Get(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err, billListPath)
		return
	}
	cats, err := h.bills.FormOptions(c.Request.Context())
	if err != nil {
		writeError(c, err, billListPath)
		return
	}
	util.Success(c, util.Response{"bill": bill, "categories": cats})
}

func (h *BillHandler) Edit(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var form service.BillForm
	if !bindForm(c, &form) {
		return
	}
	bill, err := h.bills.Edit(c.Request.Context(), actor, id, form)
	if err != nil {
		writeError(c, err, billListPath)
		return
	}
	util.Success(c, util.Response{"bill": bill})
}

func (h *BillHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.bills.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err, billListPath)
		return
	}
	util.Success(c, util.Response{"message": "删除成功"})
}

func (h *BillHandler) View(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	bill, err := h.bills.Get(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err, billListPath)
		return
	}
	util.Success(c, util.Response{"bill": bill})
}

// Home GET /，最近 5 笔账单
func (h *BillHandler) Home(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	recent, err := h.bills.Recent(c.Request.Context(), actor, 5)
	if err != nil {
		writeError(c, err, "/auth/login")
		return
	}
	util.Success(c, util.Response{"recent_bills": recent, "flash": util.PopFlash(c)})
}
