package utils

import (
	"encoding/json"
	"net/http"

	"payment-gateway/internal/logger"

	"go.uber.org/zap"
)

const (
	MsgUnexpectedError    = "An unexpected error occurred"
	MsgInvalidRequestBody = "Invalid request body"
)

// ErrorResponse is the body of every non-payment error answer.
type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, v interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already out; all that is left is to record it
		logger.L().Error("failed to write JSON response", zap.Int("status", code), zap.Error(err))
	}
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	WriteJSON(w, ErrorResponse{Message: message}, code)
}
