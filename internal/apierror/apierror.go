// Package apierror holds the JSON envelopes every 4xx/5xx response uses.
// Messages are for end users; internal errors never reach them.
package apierror

import "fmt"

// APIError is the canonical error envelope: {"detail": "..."}.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func Newf(format string, args ...any) *APIError {
	return &APIError{Detail: fmt.Sprintf(format, args...)}
}

// ValidationError lists the rejected fields by their JSON name.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// FieldMessage turns a validator tag and its parameter into a short Spanish
// message.
func FieldMessage(tag, param string) string {
	switch tag {
	case "required":
		return "obligatorio"
	case "min":
		return "mínimo " + param
	case "max":
		return "máximo " + param
	case "email":
		return "email inválido"
	case "datetime":
		return "formato de fecha " + param
	default:
		return tag
	}
}
