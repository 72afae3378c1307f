package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 通用返回结构里的 data 使用 map
type Response map[string]interface{}

// 业务错误码
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeDuplicate    = 40002
	CodeAuth         = 40101
	CodeForbidden    = 40301
	CodeNotFound     = 40401
	CodeConflict     = 40901
	CodeServerErr    = 50001
)

// Success 统一成功返回
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error 统一错误返回
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// FieldError 返回带字段级错误信息的表单错误
func FieldError(c *gin.Context, code int, msg string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    code,
		"message": msg,
		"errors":  fields,
	})
}

// RedirectWithNotice 保存提示信息后跳转，下一次列表请求会带上这条提示
func RedirectWithNotice(c *gin.Context, location, notice string) {
	SetFlash(c, notice)
	c.Redirect(http.StatusFound, location)
	c.Abort()
}
