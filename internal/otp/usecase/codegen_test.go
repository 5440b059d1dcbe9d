package usecase

import (
	"strings"
	"testing"
)

func TestGenerateCodeNumeric(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		for i := 0; i < 50; i++ {
			code, err := GenerateCode(length, false)
			if err != nil {
				t.Fatalf("GenerateCode(%d) error = %v", length, err)
			}
			if len(code) != length {
				t.Fatalf("GenerateCode(%d) = %q, want %d digits", length, code, length)
			}
			if code[0] == '0' {
				t.Fatalf("GenerateCode(%d) = %q, leading zero", length, code)
			}
			for _, c := range code {
				if c < '0' || c > '9' {
					t.Fatalf("GenerateCode(%d) = %q, non-digit %q", length, code, c)
				}
			}
		}
	}
}

func TestGenerateCodeAlphanumeric(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateCode(8, true)
		if err != nil {
			t.Fatalf("GenerateCode() error = %v", err)
		}
		if len(code) != 8 {
			t.Fatalf("GenerateCode() = %q, want 8 chars", code)
		}
		for _, c := range code {
			if !strings.ContainsRune(alphanumericChars, c) {
				t.Fatalf("GenerateCode() = %q, unexpected char %q", code, c)
			}
		}
	}
}

func TestGenerateCodeInvalidLength(t *testing.T) {
	if _, err := GenerateCode(0, false); err == nil {
		t.Fatal("GenerateCode(0) expected error")
	}
	if _, err := GenerateCode(-3, true); err == nil {
		t.Fatal("GenerateCode(-3) expected error")
	}
}

func TestGenerateCodeDiffers(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		code, err := GenerateCode(6, false)
		if err != nil {
			t.Fatalf("GenerateCode() error = %v", err)
		}
		seen[code] = struct{}{}
	}

	// 20 draws from a million-value space colliding down to one value
	// would mean the generator is broken.
	if len(seen) < 2 {
		t.Fatalf("GenerateCode() produced %d distinct codes out of 20", len(seen))
	}
}
