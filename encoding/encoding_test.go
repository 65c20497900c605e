package encoding

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUint64orHex(t *testing.T) {
	dec := "123"
	v, err := DecodeUint64orHex(&dec)
	require.NoError(t, err)
	assert.Equal(t, uint64(123), v)

	hexa := "0x7b"
	v, err = DecodeUint64orHex(&hexa)
	require.NoError(t, err)
	assert.Equal(t, uint64(123), v)

	v, err = DecodeUint64orHex(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}

func TestDecodeBigIntHexOrDecimal(t *testing.T) {
	v, err := DecodeBigIntHexOrDecimal("0xff")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(255), v)

	v, err = DecodeBigIntHexOrDecimal("255")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(255), v)

	_, err = DecodeBigIntHexOrDecimal("nope")
	require.Error(t, err)
}

func TestDecodeBytes(t *testing.T) {
	str := "0x0102"
	b, err := DecodeBytes(&str)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)

	b, err = DecodeBytes(nil)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestEncodeRoundTrip(t *testing.T) {
	assert.Equal(t, "0x7b", *EncodeUint64(123))
	assert.Equal(t, "0x0102", *EncodeBytes([]byte{0x01, 0x02}))
}
