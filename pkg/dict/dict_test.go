package dict

import (
	"errors"
	"testing"
)

func TestTableShape(t *testing.T) {
	table := English()

	if table.Len() != Size {
		t.Fatalf("Expected %d words, got %d", Size, table.Len())
	}

	// Every word must be lowercase and at least as long as the unique
	// prefix, and no two words may share a prefix.
	seen := make(map[string]string, Size)
	for i := 0; i < table.Len(); i++ {
		w, err := table.Word(uint16(i))
		if err != nil {
			t.Fatalf("Word(%d) failed: %v", i, err)
		}
		if len(w) < UniquePrefixLen {
			t.Errorf("Word %q at index %d is shorter than the unique prefix", w, i)
		}
		for _, c := range w {
			if c < 'a' || c > 'z' {
				t.Errorf("Word %q at index %d contains non-lowercase character %q", w, i, c)
			}
		}
		prefix := w[:UniquePrefixLen]
		if prev, dup := seen[prefix]; dup {
			t.Errorf("Words %q and %q share prefix %q", prev, w, prefix)
		}
		seen[prefix] = w
	}
}

func TestTableFirstWord(t *testing.T) {
	// Index 0 is pinned: phrases documented elsewhere rely on "abbey0"
	// encoding the zero 16-bit group.
	w, err := English().Word(0)
	if err != nil {
		t.Fatalf("Word(0) failed: %v", err)
	}
	if w != "abbey" {
		t.Errorf("Expected word 0 to be %q, got %q", "abbey", w)
	}
}

func TestWordIndexRoundTrip(t *testing.T) {
	table := English()

	for i := 0; i < table.Len(); i++ {
		w, err := table.Word(uint16(i))
		if err != nil {
			t.Fatalf("Word(%d) failed: %v", i, err)
		}
		got, err := table.Index(w)
		if err != nil {
			t.Fatalf("Index(%q) failed: %v", w, err)
		}
		if got != uint16(i) {
			t.Errorf("Index(%q) = %d, want %d", w, got, i)
		}
	}
}

func TestIndexOutOfRange(t *testing.T) {
	_, err := English().Word(Size)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestIndexLookup(t *testing.T) {
	table := English()

	testCases := []struct {
		name    string
		word    string
		wantErr error
	}{
		{
			name: "exact word",
			word: "abbey",
		},
		{
			name: "abbreviated to unique prefix",
			word: "abb",
		},
		{
			name: "characters past the prefix are not significant",
			word: "abbreviated",
		},
		{
			name:    "unknown word",
			word:    "qqq",
			wantErr: ErrUnknownWord,
		},
		{
			name:    "shorter than unique prefix",
			word:    "ab",
			wantErr: ErrUnknownWord,
		},
		{
			name:    "empty word",
			word:    "",
			wantErr: ErrUnknownWord,
		},
		{
			name:    "wrong casing",
			word:    "Abbey",
			wantErr: ErrUnknownWord,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := table.Index(tc.word)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Index(%q): expected %v, got %v", tc.word, tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Index(%q) failed: %v", tc.word, err)
			}
			if got != 0 {
				t.Errorf("Index(%q) = %d, want 0", tc.word, got)
			}
		})
	}
}

func TestMustLoadInvariants(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{
			name: "wrong word count",
			raw:  "abbey\nabort",
		},
		{
			name: "duplicate prefix",
			raw:  buildList("abbey", "abbot"),
		},
		{
			name: "word shorter than prefix",
			raw:  buildList("abbey", "ab"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected mustLoad to panic")
				}
			}()
			mustLoad(tc.raw)
		})
	}
}

// buildList pads the given words out to a full 1024-entry list with
// synthetic filler so shape checks other than word count can be exercised.
func buildList(words ...string) string {
	list := append([]string(nil), words...)
	for b := 'b'; len(list) < Size; b++ {
		for c := 'a'; c <= 'z' && len(list) < Size; c++ {
			for d := 'a'; d <= 'z' && len(list) < Size; d++ {
				list = append(list, string([]rune{b, c, d, 'x'}))
			}
		}
	}
	raw := list[0]
	for _, w := range list[1:] {
		raw += "\n" + w
	}
	return raw
}

func BenchmarkIndex(b *testing.B) {
	table := English()
	for i := 0; i < b.N; i++ {
		if _, err := table.Index("sugar"); err != nil {
			b.Fatal(err)
		}
	}
}
