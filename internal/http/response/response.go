// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON-ответов HTTP-обработчиков. Ошибки всегда возвращаются
// телом с единственным строковым полем error.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse — стандартное тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse — стандартное тело успешного ответа с сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error возвращает тело ответа с переданным сообщением об ошибке.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Message возвращает тело успешного ответа с переданным сообщением.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// ValidationError формирует тело ошибки на основе ошибок валидации.
// Каждое нарушение превращается в человеко-читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return ErrorResponse{Error: strings.Join(errsMsgs, ", ")}
}
