package server

import (
	"encoding/json"
	"net/http"

	"catalog-page/internal/logger"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromCtx(r.Context()).Error("failed to write response", zap.Error(err))
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, message string, code int) {
	writeJSON(w, r, code, map[string]string{"error": message})
}
