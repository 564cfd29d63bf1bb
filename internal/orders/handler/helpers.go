package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"delivery-tracker/internal/orders/importer"
	"delivery-tracker/internal/orders/service"
	"delivery-tracker/internal/storage"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// respondError maps domain errors to status codes: unreadable upload 400,
// unrecognized layout 422, missing resources 404, exhausted storage 507.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, importer.ErrBadWorkbook):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, importer.ErrUnrecognizedLayout), errors.Is(err, importer.ErrEmptyWorkbook):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrOrderNotFound), errors.Is(err, service.ErrArchiveNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoOrders):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrQuota):
		h.log.Warn().Str("rid", requestID(r)).Err(err).Msg("write not durable")
		writeError(w, http.StatusInsufficientStorage, err.Error())
	default:
		h.log.Error().Str("rid", requestID(r)).Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func requestID(r *http.Request) string {
	return r.Header.Get("X-Request-ID")
}

func toBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
