package handler

import (
	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

const todoListPath = "/todo/"

// TodoHandler 负责待办和子任务接口
type TodoHandler struct {
	todos *service.TodoService
}

func NewTodoHandler(todos *service.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

func (h *TodoHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, err := h.todos.List(c.Request.Context(), actor, pageParam(c))
	if err != nil {
		writeError(c, err, "/")
		return
	}
	listResponse(c, page)
}

func (h *TodoHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var form service.TodoForm
	if !bindForm(c, &form) {
		return
	}
	todo, err := h.todos.Create(c.Request.Context(), actor, form)
	if err != nil {
		writeError(c, err, todoListPath)
		return
	}
	util.Success(c, util.Response{"todo": todo})
}

// View 返回待办和子任务，也用于编辑页回填
func (h *TodoHandler) View(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	todo, err := h.todos.Get(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err, todoListPath)
		return
	}
	util.Success(c, util.Response{"todo": todo})
}

func (h *TodoHandler) Edit(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var form service.TodoForm
	if !bindForm(c, &form) {
		return
	}
	todo, err := h.todos.Edit(c.Request.Context(), actor, id, form)
	if err != nil {
		writeError(c, err, todoListPath)
		return
	}
	util.Success(c, util.Response{"todo": todo})
}

func (h *TodoHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.todos.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err, todoListPath)
		return
	}
	util.Success(c, util.Response{"message": "删除成功"})
}

// Toggle 切换完成状态
func (h *TodoHandler) Toggle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	todo, err := h.todos.Toggle(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err, todoListPath)
		return
	}
	util.Success(c, util.Response{"todo": todo})
}

// ---------- 子任务 ----------

func (h *TodoHandler) AddDetail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var form service.TodoDetailForm
	if !bindForm(c, &form) {
		return
	}
	d, err := h.todos.AddDetail(c.Request.Context(), actor, id, form)
	if err != nil {
		writeError(c, err, todoListPath)
		return
	}
	util.Success(c, util.Response{"detail": d})
}

func (h *TodoHandler) EditDetail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detailID, ok := parseID(c, "detail")
	if !ok {
		return
	}
	var form service.TodoDetailForm
	if !bindForm(c, &form) {
		return
	}
	d, err := h.todos.EditDetail(c.Request.Context(), actor, id, detailID, form)
	if err != nil {
		writeError(c, err, todoListPath)
		return
	}
	util.Success(c, util.Response{"detail": d})
}

func (h *TodoHandler) DeleteDetail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detailID, ok := parseID(c, "detail")
	if !ok {
		return
	}
	if err := h.todos.DeleteDetail(c.Request.Context(), actor, id, detailID); err != nil {
		writeError(c, err, todoListPath)
		return
	}
	util.Success(c, util.Response{"message": "删除成功"})
}
