package domain_test

import (
	"regexp"
	"testing"

	"keymint/pkg/domain"
)

// FuzzParseKey checks that ParseKey agrees with the published pattern on
// arbitrary input: whatever it accepts must match, whatever matches must be
// accepted, and acceptance must round-trip the raw text unchanged.
func FuzzParseKey(f *testing.F) {
	f.Add("K-h53dk-A")
	f.Add("not-a-key")
	f.Add("")
	f.Add("K-h53dk-AB")
	f.Add("A-00000-Z\x00")

	pattern := regexp.MustCompile(`^[A-Z]-[a-z0-9]{5}-[A-Z]$`)

	f.Fuzz(func(t *testing.T, raw string) {
		key, err := domain.ParseKey(raw)
		if pattern.MatchString(raw) {
			if err != nil {
				t.Fatalf("ParseKey(%q) rejected a well-formed key: %v", raw, err)
			}
			if key.String() != raw {
				t.Fatalf("ParseKey(%q) mangled the key: got %q", raw, key.String())
			}
			return
		}
		if err == nil {
			t.Fatalf("ParseKey(%q) accepted a malformed key", raw)
		}
	})
}
