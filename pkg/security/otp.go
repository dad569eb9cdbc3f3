package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const otpRange = 900000 // 100000..999999, always six digits

// GenerateOtp draws a uniform six digit one-time passcode from crypto/rand.
func GenerateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
