package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput 校验输入结构体；必填类错误优先返回 requiredErr
func validateInput(input interface{}, requiredErr *ValidationError) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	for _, fe := range fieldErrs {
		if requiredErr != nil && (fe.Tag() == "required" || fe.Tag() == "notblank") {
			return requiredErr
		}
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return &ValidationError{Message: fmt.Sprintf("%s must not be empty", field)}
	case "max":
		return &ValidationError{Message: fmt.Sprintf("%s must be at most %s characters", field, fe.Param())}
	default:
		return &ValidationError{Message: fmt.Sprintf("%s is invalid", field)}
	}
}

// normalizeNames 去除首尾空白、丢弃空名称并去重，保留首次出现的顺序
func normalizeNames(names []string) []string {
	result := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}
