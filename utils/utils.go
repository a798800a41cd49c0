package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	otp := ""
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			return "000000"
		}
		otp += fmt.Sprintf("%d", n.Int64())
	}
	return otp
}

// GenerateResetToken returns a random reset token and its SHA-256 hash.
// Only the hash is ever stored; the raw token goes out by email.
func GenerateResetToken() (string, string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	token := hex.EncodeToString(raw)
	return token, HashToken(token), nil
}

// HashToken hashes a reset token the same way it was stored
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
