package order

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"strings"
)

const handoverCodeDigits = 6

var handoverCodeMax = big.NewInt(1_000_000)

// GenerateHandoverCode returns a zero-padded six digit code.
func GenerateHandoverCode() (string, error) {
	n, err := rand.Int(rand.Reader, handoverCodeMax)
	if err != nil {
		return "", err
	}
	code := n.String()
	return strings.Repeat("0", handoverCodeDigits-len(code)) + code, nil
}

func handoverCodeMatches(expected, presented string) bool {
	presented = strings.TrimSpace(presented)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) == 1
}
