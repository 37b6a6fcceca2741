package bpaf

import (
	"testing"

	"pgregory.net/rapid"
)

// TestTokenizeLongNamesRoundTrip checks, for arbitrary long-flag names and
// values whose alphabets contain no "=" (names may contain an interior
// "-", which the tokenizer leaves alone), that tokenizing "--name=value" always
// recovers exactly that name and value as a single Long token.
func TestTokenizeLongNamesRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-z][a-z0-9-]{0,12}`).Draw(t, "name")
		value := rapid.StringMatching(`[a-zA-Z0-9_./]{0,12}`).Draw(t, "value")

		toks, err := Tokenize([]string{"--" + name + "=" + value}, nil)
		if err != nil {
			t.Fatalf("Tokenize returned an error for a well-formed long flag: %v", err)
		}
		if len(toks.Items) != 1 {
			t.Fatalf("expected exactly one token, got %d", len(toks.Items))
		}
		long, ok := toks.Items[0].(Long)
		if !ok {
			t.Fatalf("expected a Long token, got %#v", toks.Items[0])
		}
		if long.Name != name {
			t.Fatalf("name mismatch: got %q, want %q", long.Name, name)
		}
		if long.Attached == nil || *long.Attached != value {
			t.Fatalf("attached value mismatch: got %v, want %q", long.Attached, value)
		}
	})
}

// TestDamerauLevenshteinIsZeroOnlyForEqualStrings checks the distance
// function's defining property directly against arbitrary short strings,
// rather than only the handful of fixed examples in suggest_test.go.
func TestDamerauLevenshteinIsZeroOnlyForEqualStrings(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.StringMatching(`[a-z]{0,8}`).Draw(t, "a")
		b := rapid.StringMatching(`[a-z]{0,8}`).Draw(t, "b")

		d := damerauLevenshtein(a, b)
		if (d == 0) != (a == b) {
			t.Fatalf("damerauLevenshtein(%q, %q) = %d, but equality is %v", a, b, d, a == b)
		}
		if d < 0 {
			t.Fatalf("distance must never be negative, got %d", d)
		}
	})
}
