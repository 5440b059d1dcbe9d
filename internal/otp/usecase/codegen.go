package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateCode produces a cryptographically random code of the given length.
//
// Numeric codes are drawn uniformly from [10^(length-1), 10^length), so the
// first digit is never zero and the code is always exactly length digits.
// Alphanumeric codes map random bytes onto digits and uppercase letters; the
// modulo step introduces a slight bias that is acceptable for one-time codes.
func GenerateCode(length int, alphanumeric bool) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}

	if alphanumeric {
		buf := make([]byte, length)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}

		for i, b := range buf {
			buf[i] = alphanumericChars[int(b)%len(alphanumericChars)]
		}

		return string(buf), nil
	}

	min := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length-1)), nil)
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(rand.Reader, new(big.Int).Sub(max, min))
	if err != nil {
		return "", fmt.Errorf("draw random number: %w", err)
	}

	return n.Add(n, min).String(), nil
}
