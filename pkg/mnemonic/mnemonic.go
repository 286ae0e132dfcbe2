package mnemonic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bragi-io/bragi/pkg/dict"
)

// Errors
var (
	// ErrMalformedToken marks a token that cannot be split into a word and
	// a trailing decimal suffix.
	ErrMalformedToken = &PhraseError{"token must be a word followed by a numeric suffix"}

	// ErrSuffixOutOfRange marks a parsed suffix outside [0, 64].
	ErrSuffixOutOfRange = &PhraseError{"numeric suffix must be in [0, 64]"}

	// ErrInvalidTerminalSuffix marks a suffix-64 token that is not the final
	// token of the phrase, or whose index could not have been produced by
	// the encoder's terminal packing.
	ErrInvalidTerminalSuffix = &PhraseError{"suffix 64 is only valid on the final word"}

	// ErrUnknownWord marks a word that is not in the dictionary. It is the
	// dictionary's own sentinel, re-exported so callers need not import
	// pkg/dict to discriminate decode failures.
	ErrUnknownWord = dict.ErrUnknownWord
)

// PhraseError represents a phrase decoding error
type PhraseError struct {
	Message string
}

func (e *PhraseError) Error() string {
	return e.Message
}

// Codec converts byte buffers to mnemonic phrases and back over a fixed
// word table. A Codec is stateless apart from the read-only table and is
// safe for concurrent use.
type Codec struct {
	table *dict.Table
}

// NewCodec creates a codec over the canonical English table.
func NewCodec() *Codec {
	return &Codec{table: dict.English()}
}

// NewCodecWithTable creates a codec over a caller-supplied table.
func NewCodecWithTable(table *dict.Table) *Codec {
	return &Codec{table: table}
}

// Units converts a byte buffer into its word-unit sequence: one full pair
// per two bytes, plus a terminal unit when the length is odd. The result
// has ceil(len(data)/2) units and is empty for an empty buffer.
func (c *Codec) Units(data []byte) []WordUnit {
	units := make([]WordUnit, 0, (len(data)+1)/2)
	for i := 0; i+1 < len(data); i += 2 {
		units = append(units, FullPair(data[i], data[i+1]))
	}
	if len(data)%2 == 1 {
		units = append(units, TerminalByte(data[len(data)-1]))
	}
	return units
}

// Encode converts a byte buffer into a phrase: space-separated tokens, each
// a dictionary word immediately followed by the decimal suffix. An empty
// buffer encodes to an empty phrase. Encode cannot fail: every index a unit
// can produce is inside the table.
func (c *Codec) Encode(data []byte) string {
	var b strings.Builder
	for i, u := range c.Units(data) {
		word, err := c.table.Word(u.Index())
		if err != nil {
			panic(fmt.Sprintf("mnemonic: unit index %d outside table: %v", u.Index(), err))
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
		b.WriteString(strconv.Itoa(int(u.Suffix())))
	}
	return b.String()
}

// Decode converts a phrase back into the exact byte buffer it was encoded
// from. Tokens are separated by any whitespace. An empty phrase decodes to
// an empty buffer. Failures are typed: ErrMalformedToken, ErrUnknownWord,
// ErrSuffixOutOfRange and ErrInvalidTerminalSuffix, each wrapped with the
// offending token, and all recoverable via errors.Is.
func (c *Codec) Decode(phrase string) ([]byte, error) {
	tokens := strings.Fields(phrase)
	data := make([]byte, 0, len(tokens)*2)
	for i, token := range tokens {
		unit, err := c.parseToken(token, i == len(tokens)-1)
		if err != nil {
			return nil, fmt.Errorf("token %d %q: %w", i, token, err)
		}
		data = unit.appendBytes(data)
	}
	return data, nil
}

// parseToken splits a token into word and suffix, resolves the word against
// the table and validates the pair as a unit.
func (c *Codec) parseToken(token string, last bool) (WordUnit, error) {
	word, suffix, err := splitToken(token)
	if err != nil {
		return WordUnit{}, err
	}
	index, err := c.table.Index(word)
	if err != nil {
		return WordUnit{}, err
	}
	return parseUnit(index, suffix, last)
}

// splitToken separates the trailing decimal digits from the word part. The
// suffix is one or two digits; no value in [0, 64] needs more, so a third
// digit is malformed rather than out of range. Digits may only appear in
// the suffix position.
func splitToken(token string) (string, int, error) {
	digits := 0
	for _, r := range token {
		if r >= '0' && r <= '9' {
			digits++
			continue
		}
		if digits > 0 {
			return "", 0, ErrMalformedToken
		}
	}
	if digits == 0 || digits > 2 || digits == len(token) {
		return "", 0, ErrMalformedToken
	}
	word := token[:len(token)-digits]
	suffix, err := strconv.Atoi(token[len(token)-digits:])
	if err != nil {
		return "", 0, ErrMalformedToken
	}
	return word, suffix, nil
}
