package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/segmentio/ksuid"

	"github.com/bragi-io/bragi/pkg/mnemonic"
)

// requestIDHeader carries the per-request ksuid minted (or propagated) by
// requestIDMiddleware.
const requestIDHeader = "X-Request-ID"

// apiKeyMiddleware validates the X-API-Key header
func apiKeyMiddleware(expectedKey string, metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("X-API-Key")
			if apiKey == "" {
				metrics.RecordAuthRequest(false)
				sendError(w, "Missing X-API-Key header", http.StatusUnauthorized)
				return
			}
			if apiKey != expectedKey {
				metrics.RecordAuthRequest(false)
				sendError(w, "Invalid API key", http.StatusUnauthorized)
				return
			}
			metrics.RecordAuthRequest(true)
			next.ServeHTTP(w, r)
		})
	}
}

// requestIDMiddleware tags every response with a request id, minting a
// ksuid when the client did not supply one.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = ksuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// sendSuccess sends a successful JSON response
func sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	response := APIResponse{
		Success: true,
		Data:    data,
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// sendError sends an error JSON response
func sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: false,
		Error:   message,
	}
	_ = json.NewEncoder(w).Encode(response)
}

// sendDecodeError sends an error JSON response for a failed decode, carrying
// the typed error kind so clients can discriminate without string matching.
func sendDecodeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	response := APIResponse{
		Success: false,
		Error:   err.Error(),
		Kind:    decodeErrorKind(err),
	}
	_ = json.NewEncoder(w).Encode(response)
}

// decodeErrorKind maps a decode error to its wire kind.
func decodeErrorKind(err error) string {
	switch {
	case errors.Is(err, mnemonic.ErrUnknownWord):
		return "unknown_word"
	case errors.Is(err, mnemonic.ErrSuffixOutOfRange):
		return "suffix_out_of_range"
	case errors.Is(err, mnemonic.ErrInvalidTerminalSuffix):
		return "invalid_terminal_suffix"
	case errors.Is(err, mnemonic.ErrMalformedToken):
		return "malformed_token"
	default:
		return "decode_error"
	}
}
