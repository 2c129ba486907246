package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ByLCY/designkit/layout"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// ValidationError 指出未通过校验的字段。
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("配置校验失败: %s", e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		// 字段名使用 koanf/json 标签，与配置键一致
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"koanf", "json"} {
				name := strings.Split(f.Tag.Get(tag), ",")[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
		validateInst = v
	})
	return validateInst
}

// Validate 校验合并后的配置。
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{Field: "config", Message: "configuration is nil"}
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// ValidateIntent 校验设计意图的三个枚举字段。
func ValidateIntent(intent layout.Intent) error {
	return convertValidationError(validatorInstance().Struct(intent))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return &ValidationError{Field: field, Message: msg, Err: err}
	}
	return &ValidationError{Field: "config", Message: err.Error(), Err: err}
}

// fieldName 去掉顶层结构体名，例如 Config.api.model -> api.model。
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
