package handler

import (
	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

const foodListPath = "/food/"

// FoodHandler 负责饮食记录接口
type FoodHandler struct {
	foods *service.FoodService
}

func NewFoodHandler(foods *service.FoodService) *FoodHandler {
	return &FoodHandler{foods: foods}
}

func (h *FoodHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.foods.List(c.Request.Context(), actor, pageParam(c))
	if err != nil {
		writeError(c, err, "/")
		return
	}
	listResponse(c, page)
}

func (h *FoodHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var form service.FoodForm
	if !bindForm(c, &form) {
		return
	}
	food, err := h.foods.Create(c.Request.Context(), actor, form)
	if err != nil {
		writeError(c, err, foodListPath)
		return
	}
	util.Success(c, util.Response{"food": food})
}

// View 也用于编辑页回填
func (h *FoodHandler) View(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	food, err := h.foods.Get(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err, foodListPath)
		return
	}
	util.Success(c, util.Response{"food": food})
}

func (h *FoodHandler) Edit(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var form service.FoodForm
	if !bindForm(c, &form) {
		return
	}
	food, err := h.foods.Edit(c.Request.Context(), actor, id, form)
	if err != nil {
		writeError(c, err, foodListPath)
		return
	}
	util.Success(c, util.Response{"food": food})
}

func (h *FoodHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.foods.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err, foodListPath)
		return
	}
	util.Success(c, util.Response{"message": "删除成功"})
}
