package utils

import (
	"encoding/hex"
	"errors"
	"strings"
)

// AddressLength is the byte width of an account address.
const AddressLength = 20

// ErrInvalidAddress indicates the supplied string is not a well-formed
// 20-byte hex address.
var ErrInvalidAddress = errors.New("invalid address")

// ParseAddress canonicalizes a user-supplied address string to lowercase
// "0x" + 40 hex characters. The input may carry any hex casing and the 0x
// prefix is optional.
func ParseAddress(s string) (string, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(raw) != AddressLength*2 {
		return "", ErrInvalidAddress
	}
	if _, err := hex.DecodeString(raw); err != nil {
		return "", ErrInvalidAddress
	}
	return "0x" + strings.ToLower(raw), nil
}

// NormalizeTopic canonicalizes a 32-byte log topic to lowercase with a 0x
// prefix. Returns false when the value is not valid hex of the right width.
func NormalizeTopic(s string) (string, bool) {
	raw := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(raw) != 64 {
		return "", false
	}
	if _, err := hex.DecodeString(raw); err != nil {
		return "", false
	}
	return "0x" + strings.ToLower(raw), true
}
