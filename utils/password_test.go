package utils

import (
	"strings"
	"testing"
)

func TestGeneratePassword_LengthAndAlphabet(t *testing.T) {
	pw, err := GeneratePassword(12)
	if err != nil {
		t.Fatal(err)
	}
	if len(pw) != 12 {
		t.Errorf("length %d, want 12", len(pw))
	}
	for _, r := range pw {
		if !strings.ContainsRune(passwordAlphabet, r) {
			t.Errorf("unexpected character %q", r)
		}
	}
}

func TestGeneratePassword_DefaultsOnBadLength(t *testing.T) {
	pw, err := GeneratePassword(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(pw) != 12 {
		t.Errorf("length %d, want default 12", len(pw))
	}
}
