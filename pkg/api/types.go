package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Kind    string      `json:"kind,omitempty"`
}

// EncodeRequest carries the payload to convert into a phrase. Data is
// base64 in the JSON wire form, per encoding/json's []byte convention.
type EncodeRequest struct {
	Data []byte `json:"data"`
}

// EncodeResponse carries the resulting phrase and its token count.
type EncodeResponse struct {
	Phrase string `json:"phrase"`
	Words  int    `json:"words"`
}

// DecodeRequest carries the phrase to convert back into bytes.
type DecodeRequest struct {
	Phrase string `json:"phrase"`
}

// DecodeResponse carries the recovered payload and its length.
type DecodeResponse struct {
	Data  []byte `json:"data"`
	Bytes int    `json:"bytes"`
}

// WordResponse carries a single dictionary lookup.
type WordResponse struct {
	Index uint16 `json:"index"`
	Word  string `json:"word"`
}

// DictionaryResponse carries the dictionary's fixed shape.
type DictionaryResponse struct {
	Size            int `json:"size"`
	UniquePrefixLen int `json:"unique_prefix_len"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}
