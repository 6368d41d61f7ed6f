package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// GenerateOTP returns a code uniformly distributed in [100000, 999999].
func GenerateOTP() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return 0, err
	}
	return otpMin + int(n.Int64()), nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
