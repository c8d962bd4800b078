package shared

import (
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"strings"
	"unicode"
)

const MaxNameLen = 10

func StripHexPrefix(val string) string {
	return strings.TrimPrefix(strings.TrimPrefix(val, "0x"), "0X")
}

func EnsureHexPrefix(val string) string {
	if strings.HasPrefix(val, "0x") || strings.HasPrefix(val, "0X") {
		return val
	}
	return "0x" + val
}

// HexToBytes32 parses a 32-byte hex string, with or without 0x prefix.
func HexToBytes32(val string) ([32]byte, error) {
	var res [32]byte
	raw, err := hex.DecodeString(StripHexPrefix(val))
	if err != nil {
		return res, fmt.Errorf("invalid hex string '%s': %v", val, err)
	}
	if len(raw) != 32 {
		return res, fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(res[:], raw)
	return res, nil
}

func ValidateAddress(address string) error {
	if len(address) == 0 {
		return errors.New("contract address cannot be empty")
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("'%s' is not a valid contract address", address)
	}
	return nil
}

// ValidatePrivKeyHex checks that the value is a 32-byte hex-encoded key.
func ValidatePrivKeyHex(key string) error {
	raw, err := hex.DecodeString(StripHexPrefix(key))
	if err != nil {
		return errors.New("private key must be a hex string")
	}
	if len(raw) != 32 {
		return fmt.Errorf("private key must be 32 bytes, got %d", len(raw))
	}
	return nil
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}
