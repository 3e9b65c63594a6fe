// Package hexutil decodes the 0x-prefixed hex values used in EVM JSON-RPC payloads.
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmpty marks an empty hex value.
var ErrEmpty = errors.New("empty hex value")

// ParseQuantity decodes a 0x-prefixed hex quantity into a uint64.
func ParseQuantity(s string) (uint64, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok || digits == "" {
		return 0, fmt.Errorf("quantity %q is not 0x-prefixed hex", s)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse quantity %q: %w", s, err)
	}
	return v, nil
}

// ParseBytes decodes 0x-prefixed hex data into raw bytes.
func ParseBytes(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return nil, fmt.Errorf("data %q is not 0x-prefixed hex", s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("decode data %q: %w", s, err)
	}
	return b, nil
}

// Encode renders raw bytes as a 0x-prefixed hex string.
func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// EncodeQuantity renders a uint64 as a 0x-prefixed hex quantity.
func EncodeQuantity(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}
