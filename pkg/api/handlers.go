package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bragi-io/bragi/pkg/dict"
	"github.com/bragi-io/bragi/pkg/mnemonic"
)

// Server holds the API server state
type Server struct {
	codec   *mnemonic.Codec
	table   *dict.Table
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(codec *mnemonic.Codec, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		codec:   codec,
		table:   dict.English(),
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleEncode converts a binary payload into a phrase.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RecordCodecOperation("encode", false, 0, time.Since(start))
		sendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	phrase := s.codec.Encode(req.Data)
	s.metrics.RecordCodecOperation("encode", true, len(req.Data), time.Since(start))

	sendSuccess(w, EncodeResponse{
		Phrase: phrase,
		Words:  len(strings.Fields(phrase)),
	})
}

// handleDecode converts a phrase back into its binary payload. Typed codec
// errors surface as 400 with a machine-readable kind.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RecordCodecOperation("decode", false, 0, time.Since(start))
		sendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	data, err := s.codec.Decode(req.Phrase)
	if err != nil {
		s.metrics.RecordCodecOperation("decode", false, 0, time.Since(start))
		s.metrics.RecordDecodeError(decodeErrorKind(err))
		sendDecodeError(w, err)
		return
	}
	s.metrics.RecordCodecOperation("decode", true, len(data), time.Since(start))

	sendSuccess(w, DecodeResponse{
		Data:  data,
		Bytes: len(data),
	})
}

// handleWord looks up the dictionary word at an index.
func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		sendError(w, "Index must be a number", http.StatusBadRequest)
		return
	}

	word, err := s.table.Word(uint16(index))
	if err != nil {
		sendError(w, err.Error(), http.StatusNotFound)
		return
	}

	sendSuccess(w, WordResponse{
		Index: uint16(index),
		Word:  word,
	})
}

// handleDictionary reports the dictionary's fixed shape.
func (s *Server) handleDictionary(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, DictionaryResponse{
		Size:            s.table.Len(),
		UniquePrefixLen: dict.UniquePrefixLen,
	})
}
