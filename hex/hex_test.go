package hex

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	b := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	e := EncodeToHex(b)
	assert.Equal(t, "0x0123456789abcdef", e)

	d, err := DecodeHex(e)
	require.NoError(t, err)
	assert.Equal(t, b, d)

	// without prefix
	d, err = DecodeHex("0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, b, d)

	// odd length gets a leading zero
	d, err = DecodeHex("0x123")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x23}, d)
}

func TestMustDecodeHex(t *testing.T) {
	assert.Equal(t, []byte{0xff}, MustDecodeHex("0xff"))
	assert.Panics(t, func() { MustDecodeHex("0xzz") })
}

func TestEncodeUint64(t *testing.T) {
	assert.Equal(t, "0x0", EncodeUint64(0))
	assert.Equal(t, "0xa", EncodeUint64(10))
	assert.Equal(t, "0xffffffffffffffff", EncodeUint64(math.MaxUint64))
	assert.Equal(t, uint64(10), DecodeUint64("0xa"))
}

func TestEncodeBig(t *testing.T) {
	assert.Equal(t, "0x0", EncodeBig(big.NewInt(0)))
	assert.Equal(t, "0x1f4", EncodeBig(big.NewInt(500)))
	assert.Equal(t, big.NewInt(500), DecodeBig("0x1f4"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("0xdeadBEEF"))
	assert.True(t, IsValid("1234"))
	assert.False(t, IsValid("0x123g"))
}
