package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse is the uniform error envelope every failing endpoint returns.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigFastest.NewEncoder(w).Encode(ErrorResponse{
		Error:  message,
		Status: statusCode,
	})
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
