// Package cryptox holds the credential primitives used by the development
// backend: bcrypt password hashes and numeric one-time codes.
package cryptox

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// OTPDigits is the length of codes produced by NewOTP.
const OTPDigits = 6

var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword returns a bcrypt hash of password at the default cost.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// CheckPassword compares password with a hash made by HashPassword.
// An empty hash never matches.
func CheckPassword(hash []byte, password string) error {
	if len(hash) == 0 {
		return ErrPasswordMismatch
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}

// NewOTP returns a uniformly random code in [100000, 999999], so it always
// has OTPDigits digits and survives a round trip through an integer.
func NewOTP() (int, error) {
	low := int64(1)
	for i := 1; i < OTPDigits; i++ {
		low *= 10
	}
	n, err := rand.Int(rand.Reader, big.NewInt(9*low))
	if err != nil {
		return 0, err
	}
	return int(n.Int64() + low), nil
}

// Wipe overwrites b with zeros. A nil slice is left alone.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
