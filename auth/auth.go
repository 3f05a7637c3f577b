// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var ErrInvalidPIN = errors.New("invalid admin PIN")

// ValidatePIN checks a client-supplied PIN against the configured one.
// Constant-time comparison; the PIN is the only admin credential.
func ValidatePIN(pin, expected string) error {
	if !hmac.Equal([]byte(pin), []byte(expected)) {
		return ErrInvalidPIN
	}
	return nil
}
