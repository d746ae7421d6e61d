// Package respond writes JSON responses and structured API errors.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/boca-banker/boca-banker/pkg/models/api"
)

func JSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func Error(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	JSON(w, r, status, api.Error{Code: code, Message: message})
}
