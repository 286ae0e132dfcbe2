// Package dict provides the fixed 1024-word table that the mnemonic codec
// maps 10-bit values onto, with O(1) lookups in both directions.
//
// The table is immutable for the lifetime of the process. The reverse
// (word -> index) map is built once when the package loads and is keyed by
// the first UniquePrefixLen characters of each word, which are guaranteed
// unique across the table. That means lookups accept abbreviated words:
// "sug" resolves to the same index as "sugar". Characters past the unique
// prefix are not significant.
package dict

import "strings"

const (
	// Size is the number of words in the table. Indexes range over
	// [0, Size-1] and fit in 10 bits.
	Size = 1024

	// UniquePrefixLen is the number of leading characters that uniquely
	// identify a word. Words in a phrase may be truncated to this length.
	UniquePrefixLen = 3
)

// Errors
var (
	ErrIndexOutOfRange = &DictError{"word index out of range"}
	ErrUnknownWord     = &DictError{"word is not in the dictionary"}
)

// DictError represents a dictionary lookup error
type DictError struct {
	Message string
}

func (e *DictError) Error() string {
	return e.Message
}

// Table is an index<->word bijection over a fixed word list. The zero value
// is not usable; obtain one from English.
type Table struct {
	words    []string
	byPrefix map[string]uint16
}

var english = mustLoad(englishWords)

// English returns the canonical English table. The returned Table is shared,
// read-only, and safe for concurrent use.
func English() *Table {
	return english
}

// Len returns the number of words in the table.
func (t *Table) Len() int {
	return len(t.words)
}

// Word returns the word at the given index. It fails with ErrIndexOutOfRange
// if index is not below Size.
func (t *Table) Word(index uint16) (string, error) {
	if int(index) >= len(t.words) {
		return "", ErrIndexOutOfRange
	}
	return t.words[index], nil
}

// Index returns the index of a word. Only the first UniquePrefixLen
// characters are significant, so abbreviated words resolve too. It fails
// with ErrUnknownWord if the word is shorter than the unique prefix or its
// prefix is not in the table. Matching is case-sensitive against the
// table's canonical lowercase form.
func (t *Table) Index(word string) (uint16, error) {
	if len(word) < UniquePrefixLen {
		return 0, ErrUnknownWord
	}
	index, ok := t.byPrefix[word[:UniquePrefixLen]]
	if !ok {
		return 0, ErrUnknownWord
	}
	return index, nil
}

// mustLoad parses a newline-separated word list and builds the reverse map.
// It panics on any shape violation (wrong count, short word, duplicate
// prefix): the table is compiled in, so a bad table is a build defect, not
// a runtime condition.
func mustLoad(raw string) *Table {
	words := strings.Split(raw, "\n")
	if len(words) != Size {
		panic("dict: word table must contain exactly 1024 words")
	}

	byPrefix := make(map[string]uint16, len(words))
	for i, w := range words {
		if len(w) < UniquePrefixLen {
			panic("dict: word shorter than unique prefix: " + w)
		}
		prefix := w[:UniquePrefixLen]
		if _, dup := byPrefix[prefix]; dup {
			panic("dict: duplicate word prefix: " + prefix)
		}
		byPrefix[prefix] = uint16(i)
	}

	return &Table{words: words, byPrefix: byPrefix}
}
