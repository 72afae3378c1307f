package handler

import (
	"net/http"
	"strconv"

	"daily-app/internal/middleware"
	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

// currentActor 取出中间件放入的 Actor，没有则返回 401
func currentActor(c *gin.Context) (service.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		c.Abort()
	}
	return actor, ok
}

// parseID reads a positive integer path parameter. Malformed ids are reported as not found.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, service.MsgNoAccess)
		return 0, false
	}
	return uint(id), true
}

// pageParam 读取 ?page=，非法值按第 1 页处理
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func bindForm(c *gin.Context, form interface{}) bool {
	if err := c.ShouldBind(form); err != nil {
		util.FieldError(c, util.CodeInvalidParam, "参数错误", util.FieldErrors(err))
		return false
	}
	return true
}

// writeError renders a service error. Forbidden and conflict go back to listPath with a notice.
func writeError(c *gin.Context, err error, listPath string) {
	se, ok := service.AsServiceError(err)
	if !ok {
		_ = c.Error(err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "服务器内部错误，请稍后再试")
		return
	}
	switch se.Code {
	case service.ErrorCodeValidation:
		util.FieldError(c, util.CodeInvalidParam, se.Message, se.Fields)
	case service.ErrorCodeDuplicate:
		util.FieldError(c, util.CodeDuplicate, se.Message, se.Fields)
	case service.ErrorCodeUnauthorized:
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, se.Message)
	case service.ErrorCodeForbidden, service.ErrorCodeConflict:
		util.RedirectWithNotice(c, listPath, se.Message)
	case service.ErrorCodeNotFound:
		util.Error(c, http.StatusNotFound, util.CodeNotFound, se.Message)
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, se.Message)
	}
}

// listResponse 列表接口统一返回分页信息和待显示的提示
func listResponse[T any](c *gin.Context, page *service.PageResult[T]) {
	util.Success(c, util.Response{
		"items":     page.Items,
		"total":     page.Total,
		"page":      page.Page,
		"page_size": page.PageSize,
		"pages":     page.Pages,
		"flash":     util.PopFlash(c),
	})
}
