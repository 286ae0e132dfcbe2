package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bragi-io/bragi/pkg/mnemonic"
)

// setupTestServer creates a server with metrics on a private registry so
// repeated construction across tests does not collide.
func setupTestServer(t *testing.T) *Server {
	t.Helper()
	metrics := newMetrics(prometheus.NewRegistry())
	return NewServer(mnemonic.NewCodec(), ServerConfig{APIKey: "test-key"}, metrics)
}

func TestServer_handleHealth(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	server.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response APIResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !response.Success {
		t.Error("Expected success to be true")
	}
}

func TestServer_handleEncode(t *testing.T) {
	server := setupTestServer(t)

	body, _ := json.Marshal(EncodeRequest{Data: []byte{0x01, 0x02, 0x03}})
	req := httptest.NewRequest("POST", "/encode", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.handleEncode(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response APIResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	data, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object data, got %T", response.Data)
	}

	if data["phrase"] != "abyss2 adhesive64" {
		t.Errorf("Expected phrase %q, got %v", "abyss2 adhesive64", data["phrase"])
	}
	if data["words"] != float64(2) {
		t.Errorf("Expected 2 words, got %v", data["words"])
	}
}

func TestServer_handleEncode_badBody(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("POST", "/encode", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	server.handleEncode(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestServer_handleDecode(t *testing.T) {
	server := setupTestServer(t)

	body, _ := json.Marshal(DecodeRequest{Phrase: "abyss2 adhesive64"})
	req := httptest.NewRequest("POST", "/decode", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.handleDecode(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response APIResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	data, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected object data, got %T", response.Data)
	}

	raw, _ := data["data"].(string)
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("Data field is not base64: %v", err)
	}
	if !bytes.Equal(decoded, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("Expected payload 010203, got %x", decoded)
	}
	if data["bytes"] != float64(3) {
		t.Errorf("Expected 3 bytes, got %v", data["bytes"])
	}
}

func TestServer_handleDecode_errorKinds(t *testing.T) {
	testCases := []struct {
		name     string
		phrase   string
		wantKind string
	}{
		{
			name:     "malformed token",
			phrase:   "abbey",
			wantKind: "malformed_token",
		},
		{
			name:     "unknown word",
			phrase:   "qqqqq3",
			wantKind: "unknown_word",
		},
		{
			name:     "suffix out of range",
			phrase:   "abbey65",
			wantKind: "suffix_out_of_range",
		},
		{
			name:     "terminal suffix off final position",
			phrase:   "abbey64 sugar21",
			wantKind: "invalid_terminal_suffix",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := setupTestServer(t)

			body, _ := json.Marshal(DecodeRequest{Phrase: tc.phrase})
			req := httptest.NewRequest("POST", "/decode", bytes.NewReader(body))
			w := httptest.NewRecorder()

			server.handleDecode(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}

			var response APIResponse
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if response.Success {
				t.Error("Expected success to be false")
			}
			if response.Kind != tc.wantKind {
				t.Errorf("Expected kind %q, got %q", tc.wantKind, response.Kind)
			}
		})
	}
}

func TestServer_encodeDecodeRoundTrip(t *testing.T) {
	server := setupTestServer(t)
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x42}

	// Encode.
	body, _ := json.Marshal(EncodeRequest{Data: payload})
	req := httptest.NewRequest("POST", "/encode", bytes.NewReader(body))
	w := httptest.NewRecorder()
	server.handleEncode(w, req)

	var encoded APIResponse
	if err := json.NewDecoder(w.Body).Decode(&encoded); err != nil {
		t.Fatalf("Failed to decode encode response: %v", err)
	}
	phrase := encoded.Data.(map[string]interface{})["phrase"].(string)

	// Decode what encode produced.
	body, _ = json.Marshal(DecodeRequest{Phrase: phrase})
	req = httptest.NewRequest("POST", "/decode", bytes.NewReader(body))
	w = httptest.NewRecorder()
	server.handleDecode(w, req)

	var decoded APIResponse
	if err := json.NewDecoder(w.Body).Decode(&decoded); err != nil {
		t.Fatalf("Failed to decode decode response: %v", err)
	}
	raw := decoded.Data.(map[string]interface{})["data"].(string)
	got, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("Data field is not base64: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Round trip mismatch: got %x, want %x", got, payload)
	}
}
