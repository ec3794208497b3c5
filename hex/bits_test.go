package hex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoskit/ipcskit/pkg/types"
)

func TestBitLen(t *testing.T) {
	require.Equal(t, 4, MustParse("8").BitLen())
	require.Equal(t, 16, MustParse("00AB").BitLen())
	require.Equal(t, 16, MustParse("-00AB").BitLen())

	require.Equal(t, 4, MustParse("8").MinBitLen())
	require.Equal(t, 8, MustParse("00AB").MinBitLen())
	require.Equal(t, 0, MustParse("0").MinBitLen())
	require.Equal(t, 0, MustParse("000").MinBitLen())
}

func TestBit(t *testing.T) {
	// "8" is 1000 binary.
	v := MustParse("8")
	for pos, want := range []bool{true, false, false, false} {
		got, err := v.Bit(pos, FromLeft)
		require.NoError(t, err)
		require.Equal(t, want, got, "bit %d from left", pos)
	}
	got, err := v.Bit(3, FromRight)
	require.NoError(t, err)
	require.True(t, got)

	// "0A5" is 0000 1010 0101.
	v = MustParse("0A5")
	for pos, want := range []bool{
		false, false, false, false,
		true, false, true, false,
		false, true, false, true,
	} {
		got, err := v.Bit(pos, FromLeft)
		require.NoError(t, err)
		require.Equal(t, want, got, "bit %d from left", pos)

		mirror, err := v.Bit(v.BitLen()-1-pos, FromRight)
		require.NoError(t, err)
		require.Equal(t, got, mirror, "bit %d mirrored from right", pos)
	}
}

func TestBitOutOfRange(t *testing.T) {
	v := MustParse("8")
	for _, pos := range []int{-1, 4, 100} {
		_, err := v.Bit(pos, FromLeft)
		require.ErrorIs(t, err, types.ErrOutOfBounds, "pos %d from left", pos)
		_, err = v.Bit(pos, FromRight)
		require.ErrorIs(t, err, types.ErrOutOfBounds, "pos %d from right", pos)
	}
}

func TestSetBit(t *testing.T) {
	got, err := MustParse("0").SetBit(0, FromLeft)
	require.NoError(t, err)
	require.Equal(t, "8", got.String())

	// Width survives, including leading zeros.
	got, err = MustParse("0704").SetBit(12, FromLeft)
	require.NoError(t, err)
	require.Equal(t, "070C", got.String())

	got, err = MustParse("00").SetBit(0, FromRight)
	require.NoError(t, err)
	require.Equal(t, "01", got.String())

	// Setting an already-set bit changes nothing.
	got, err = MustParse("8").SetBit(0, FromLeft)
	require.NoError(t, err)
	require.Equal(t, "8", got.String())

	// Sign is preserved.
	got, err = MustParse("-4").SetBit(0, FromLeft)
	require.NoError(t, err)
	require.Equal(t, "-C", got.String())
}

func TestClearBit(t *testing.T) {
	got, err := MustParse("F").ClearBit(0, FromLeft)
	require.NoError(t, err)
	require.Equal(t, "7", got.String())

	got, err = MustParse("81").ClearBit(0, FromRight)
	require.NoError(t, err)
	require.Equal(t, "80", got.String())

	got, err = MustParse("80000000").ClearBit(0, FromLeft)
	require.NoError(t, err)
	require.Equal(t, "00000000", got.String())

	// A value cleared to zero loses its sign.
	got, err = MustParse("-8").ClearBit(0, FromLeft)
	require.NoError(t, err)
	require.Equal(t, "0", got.String())
	require.False(t, got.Negative())
}

func TestSetClearBitOutOfRange(t *testing.T) {
	_, err := MustParse("8").SetBit(4, FromLeft)
	require.ErrorIs(t, err, types.ErrOutOfBounds)
	_, err = MustParse("8").ClearBit(-1, FromRight)
	require.ErrorIs(t, err, types.ErrOutOfBounds)
}
