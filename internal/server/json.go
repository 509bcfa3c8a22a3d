package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/angristan/homeshowcase/internal/models"
)

// fieldError is one entry of a validation error response
type fieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// writeJSON encodes v as JSON with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// writeDetail writes {"detail": message}
func writeDetail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"detail": message})
}

// writeValidation writes a 422 listing every invalid field
func writeValidation(w http.ResponseWriter, errs ...fieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string][]fieldError{"detail": errs})
}

func bodyErrors(errs models.FieldErrors) []fieldError {
	out := make([]fieldError, 0, len(errs))
	for _, field := range errs.Fields() {
		out = append(out, fieldError{Loc: []string{"body", field}, Msg: errs[field]})
	}
	return out
}
