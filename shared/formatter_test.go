package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStripHexPrefix(t *testing.T) {
	assert.Equal(t, "ab01", StripHexPrefix("0xab01"))
	assert.Equal(t, "ab01", StripHexPrefix("ab01"))
	assert.Equal(t, "", StripHexPrefix("0x"))
}

func TestEnsureHexPrefix(t *testing.T) {
	assert.Equal(t, "0xab01", EnsureHexPrefix("ab01"))
	assert.Equal(t, "0xab01", EnsureHexPrefix("0xab01"))
}

func TestHexToBytes32(t *testing.T) {
	val := "0d6a7dd1e6c8a1b5a1712dbb0e10bd0e0fecb1fe61d6ccb2cc5c5a9d082e29f2"
	res, err := HexToBytes32(val)
	assert.Nil(t, err)
	assert.Equal(t, byte(0x0d), res[0])
	assert.Equal(t, byte(0xf2), res[31])

	_, err = HexToBytes32("0d6a")
	assert.NotNil(t, err)
	_, err = HexToBytes32("not-hex")
	assert.NotNil(t, err)
}

func TestValidateAddress(t *testing.T) {
	assert.Nil(t, ValidateAddress("0x1CBd3b2770909D4e10f157cABC84C7264073C9Ec"))
	assert.NotNil(t, ValidateAddress(""))
	assert.NotNil(t, ValidateAddress("0x1234"))
	assert.NotNil(t, ValidateAddress("hello"))
}

func TestValidatePrivKeyHex(t *testing.T) {
	assert.Nil(t, ValidatePrivKeyHex("0d6a7dd1e6c8a1b5a1712dbb0e10bd0e0fecb1fe61d6ccb2cc5c5a9d082e29f2"))
	assert.NotNil(t, ValidatePrivKeyHex("0d6a"))
	assert.NotNil(t, ValidatePrivKeyHex("zz6a7dd1e6c8a1b5a1712dbb0e10bd0e0fecb1fe61d6ccb2cc5c5a9d082e29f2"))
}

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 3))
}
