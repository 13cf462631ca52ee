package dto

// APIResponse envoltura estándar de todas las respuestas: {status, message, data}.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success construye la envoltura de éxito.
func Success(message string, data any) APIResponse {
	return APIResponse{Status: "success", Message: message, Data: data}
}

// Error construye la envoltura de error (data siempre null).
func Error(message string) APIResponse {
	return APIResponse{Status: "error", Message: message}
}
