package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/scribe/internal/devapi/service"
	"github.com/dmitrijs2005/scribe/internal/devapi/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends {"error": {"message": ..., <field>: ...}}.
func writeError(w http.ResponseWriter, status int, message string, fields map[string]string) {
	body := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["message"] = message
	writeJSON(w, status, map[string]any{"error": body})
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var fe *service.FieldsError
	switch {
	case errors.As(err, &fe):
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrConflict) {
			status = http.StatusConflict
		}
		writeError(w, status, fe.Message, fe.Fields)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password", nil)
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "You are not allowed to do that", nil)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found", nil)
	default:
		h.logger.Error(ctx, "request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}
