package promodomain

import "net/http"

// ErrorResponse representa a estrutura de erro da plataforma de descontos
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

// IsUnauthorized verifica se o erro é de chave de API inválida ou revogada
func (e *ErrorResponse) IsUnauthorized() bool {
	return e.Error.Code == http.StatusUnauthorized || e.Error.Type == "AuthenticationError"
}
