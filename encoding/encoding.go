// Package encoding provides helpers to convert between string, numeric and
// byte representations used across the node.
package encoding

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	// Base10 decimal base
	Base10 = 10
	// BitSize64 64 bits
	BitSize64 = 64
	// TenToThePowerOf18 represents 1000000000000000000
	TenToThePowerOf18 = 1000000000000000000
	// Gwei represents 1000000000 wei
	Gwei = 1000000000
)

// DecodeUint64orHex decodes a string uint64 or hex string into a uint64
func DecodeUint64orHex(val *string) (uint64, error) {
	if val == nil {
		return 0, nil
	}

	str := *val
	base := Base10
	if strings.HasPrefix(str, "0x") {
		str = str[2:]
		base = 16
	}

	return strconv.ParseUint(str, base, BitSize64)
}

// DecodeBigIntHexOrDecimal parses a string that can be decimal or hexa (starts
// with 0x) into a *big.Int
func DecodeBigIntHexOrDecimal(s string) (*big.Int, error) {
	var r *big.Int
	var ok bool
	if strings.HasPrefix(s, "0x") { //nolint:gocritic
		// Value in hex format
		s = s[2:]
		r, ok = new(big.Int).SetString(s, 16)
	} else {
		// Value in decimal format
		r, ok = new(big.Int).SetString(s, Base10)
	}
	if !ok {
		return nil, fmt.Errorf("could not convert %q into big.Int", s)
	}

	return r, nil
}

// DecodeBytes decodes a hex string into a []byte
func DecodeBytes(val *string) ([]byte, error) {
	if val == nil {
		return []byte{}, nil
	}

	str := strings.TrimPrefix(*val, "0x")

	return hex.DecodeString(str)
}

// EncodeUint64 encodes a uint64 into a hex *string
func EncodeUint64(val uint64) *string {
	encoded := fmt.Sprintf("0x%x", val)
	return &encoded
}

// EncodeBytes encodes a []bytes into a hex *string
func EncodeBytes(val []byte) *string {
	encoded := "0x" + hex.EncodeToString(val)
	return &encoded
}
