package utils

import (
	"strings"
	"testing"
)

func TestGenerateJoinCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateJoinCode()
		if len(code) != joinCodeLength {
			t.Fatalf("expected %d chars, got %q", joinCodeLength, code)
		}
		for _, r := range code {
			if !strings.ContainsRune(joinCodeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
		seen[code] = true
	}
	// Not a uniqueness guarantee, but 100 collisions would mean a broken generator.
	if len(seen) < 2 {
		t.Fatal("generator keeps returning the same code")
	}
}
