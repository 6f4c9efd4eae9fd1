package id

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzParsePrefixedID tests the ParsePrefixedID function with random inputs
func FuzzParsePrefixedID(f *testing.F) {
	// Seed corpus with valid and invalid cases
	seeds := []string{
		"co_xK9mP2vL3nQ",
		"co_abc123",
		"",
		"nounderscore",
		"_leadingunderscore",
		"trailing_",
		"multiple_under_scores_here",
		"__double__underscore__",
		"a_b",
		"*_special",
		"中文_测试",
		strings.Repeat("a", 1000) + "_" + strings.Repeat("b", 1000),
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(input) {
			return
		}

		prefix, shortID, err := ParsePrefixedID(input)

		if err != nil {
			if prefix != "" || shortID != "" {
				t.Errorf("ParsePrefixedID(%q) returned error but non-empty values: prefix=%q, shortID=%q", input, prefix, shortID)
			}
			return
		}

		// On success the parts must reassemble into the input
		reassembled := prefix + "_" + shortID
		if reassembled != input {
			t.Errorf("ParsePrefixedID(%q) parts do not reassemble: got %q", input, reassembled)
		}

		if strings.Contains(prefix, "_") {
			t.Errorf("ParsePrefixedID(%q) prefix contains underscore: %q", input, prefix)
		}
	})
}

func TestGenerate(t *testing.T) {
	id1, err := Generate(DefaultLength)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(id1) != DefaultLength {
		t.Errorf("Generate length = %d, want %d", len(id1), DefaultLength)
	}

	id2, err := Generate(DefaultLength)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if id1 == id2 {
		t.Error("two generated IDs are identical")
	}

	for _, r := range id1 {
		if !strings.ContainsRune(alphabet, r) {
			t.Errorf("generated ID contains character outside alphabet: %q", r)
		}
	}
}

func TestNewCompanySID(t *testing.T) {
	sid, err := NewCompanySID()
	if err != nil {
		t.Fatalf("NewCompanySID returned error: %v", err)
	}
	if err := ValidatePrefix(sid, PrefixCompany); err != nil {
		t.Errorf("generated SID failed prefix validation: %v", err)
	}
}
