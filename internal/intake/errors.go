package intake

import "errors"

// Коды ошибок валидации, возвращаются клиенту как есть
const (
	CodeInvalidSeverity     = "InvalidSeverity"
	CodeDescriptionTooShort = "DescriptionTooShort"
	CodeDescriptionTooLong  = "DescriptionTooLong"
)

// ValidationError называет первое нарушенное ограничение
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

var (
	ErrInvalidSeverity = &ValidationError{
		Code:    CodeInvalidSeverity,
		Message: "severity must be one of RED, ORANGE, GREEN",
	}
	ErrDescriptionTooShort = &ValidationError{
		Code:    CodeDescriptionTooShort,
		Message: "description must be at least 10 characters",
	}
	ErrDescriptionTooLong = &ValidationError{
		Code:    CodeDescriptionTooLong,
		Message: "description must be at most 500 characters",
	}
)

// ErrSequenceExhausted - счетчик года вышел за четыре разряда
var ErrSequenceExhausted = errors.New("case sequence exhausted for year")
