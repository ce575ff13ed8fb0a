package dto

import "github.com/Nurlanbcg/quiz/internal/apperr"

type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []apperr.FieldError `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
