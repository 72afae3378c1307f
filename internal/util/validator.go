package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// engine uses the same "binding" tags gin validates with, reporting json field names.
func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// UseJSONFieldNames makes gin's binding validator report json field names too.
func UseJSONFieldNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// ValidateStruct checks s against its binding tags and returns per-field messages,
// or nil when s is valid.
func ValidateStruct(s interface{}) map[string]string {
	if err := engine().Struct(s); err != nil {
		return FieldErrors(err)
	}
	return nil
}

// FieldErrors converts validator errors into field -> message. Other errors are reported
// under the "_" key.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": "参数格式错误"}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "此项为必填项"
	case "max":
		return fmt.Sprintf("长度不能超过 %s", fe.Param())
	case "min":
		return fmt.Sprintf("长度不能少于 %s", fe.Param())
	case "email":
		return "邮箱格式不正确"
	case "eqfield":
		return "两次输入的密码不一致"
	case "oneof":
		return "取值不合法"
	case "gte":
		return fmt.Sprintf("不能小于 %s", fe.Param())
	}
	return "取值不合法"
}

// DateTimeLayout is the form format of timestamps, e.g. 2024-05-01 12:30:00.
const DateTimeLayout = "2006-01-02 15:04:05"

// ParseDateTime 解析表单里的时间，接受 "2006-01-02 15:04:05"、RFC3339、"2006-01-02T15:04:05" 和 "2006-01-02"
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("datetime is empty")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	layouts := []string{DateTimeLayout, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// ValidateDate 验证日期格式（必须为 YYYY-MM-DD）
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}
