package service

import "errors"

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("not found")
	// ErrValidation 所有输入校验错误均匹配该错误
	ErrValidation = errors.New("validation failed")
)

// ValidationError 输入校验错误，Message 直接返回给调用方
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is 使 errors.Is(err, ErrValidation) 成立
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var (
	ErrPostFieldsRequired = &ValidationError{Message: "Title and content are required"}
	ErrEmptyUpdate        = &ValidationError{Message: "No data provided"}
)
