package hex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoskit/ipcskit/pkg/types"
)

func TestAddSub(t *testing.T) {
	cases := []struct {
		a, b string
		add  string
		sub  string
	}{
		{"A", "5", "F", "5"},
		{"00A", "5", "00F", "005"},
		{"A", "005", "F", "5"},
		{"F", "1", "10", "E"},
		{"4", "8", "C", "-4"},
		{"0004", "8", "000C", "-0004"},
		{"-4", "-8", "-C", "4"},
		{"-4", "8", "4", "-C"},
		{"0", "0", "0", "0"},
	}
	for _, tc := range cases {
		a, b := MustParse(tc.a), MustParse(tc.b)
		require.Equal(t, tc.add, a.Add(b).String(), "%s + %s", tc.a, tc.b)
		require.Equal(t, tc.sub, a.Sub(b).String(), "%s - %s", tc.a, tc.b)
	}
}

func TestMul(t *testing.T) {
	require.Equal(t, "10", MustParse("4").Mul(MustParse("4")).String())
	require.Equal(t, "-10", MustParse("-4").Mul(MustParse("4")).String())
	require.Equal(t, "10", MustParse("-4").Mul(MustParse("-4")).String())
	require.Equal(t, "0006", MustParse("0002").Mul(MustParse("3")).String())
	require.Equal(t, "000", MustParse("000").Mul(MustParse("FF")).String())
}

// Quotients round toward negative infinity and remainders take the
// divisor's sign, so Div and Mod stay consistent for every sign pairing.
func TestDivModFloor(t *testing.T) {
	cases := []struct {
		a, b string
		div  string
		mod  string
	}{
		{"5", "2", "2", "1"},
		{"-5", "2", "-3", "1"},
		{"5", "-2", "-3", "-1"},
		{"-5", "-2", "2", "-1"},
		{"6", "2", "3", "0"},
		{"-6", "2", "-3", "0"},
		{"00A", "3", "003", "001"},
	}
	for _, tc := range cases {
		a, b := MustParse(tc.a), MustParse(tc.b)
		q, err := a.Div(b)
		require.NoError(t, err, "%s / %s", tc.a, tc.b)
		require.Equal(t, tc.div, q.String(), "%s / %s", tc.a, tc.b)
		r, err := a.Mod(b)
		require.NoError(t, err, "%s %% %s", tc.a, tc.b)
		require.Equal(t, tc.mod, r.String(), "%s %% %s", tc.a, tc.b)
	}
}

func TestDivModByZero(t *testing.T) {
	_, err := MustParse("5").Div(MustParse("0"))
	require.ErrorIs(t, err, types.ErrDivideByZero)
	_, err = MustParse("5").Mod(MustParse("000"))
	require.ErrorIs(t, err, types.ErrDivideByZero)
}

func TestOrAnd(t *testing.T) {
	require.Equal(t, "9", MustParse("8").Or(MustParse("1")).String())
	require.Equal(t, "80000000", MustParse("80000000").Or(MustParse("0")).String())
	require.Equal(t, "854387AA", MustParse("80000000").Or(MustParse("054387AA")).String())

	require.Equal(t, "000", MustParse("0F0").And(MustParse("00F")).String())
	require.Equal(t, "0F0", MustParse("0F0").And(MustParse("FF0")).String())
	require.Equal(t, "8", MustParse("C").And(MustParse("A")).String())

	// Negative operands act as sign-extended two's complement.
	require.Equal(t, "-1", MustParse("-1").Or(MustParse("4")).String())
	require.Equal(t, "4", MustParse("-1").And(MustParse("4")).String())
}

func TestResize(t *testing.T) {
	cases := []struct {
		in   string
		bits int
		want string
	}{
		{"ABCD", 8, "CD"},
		{"ABCD", 16, "ABCD"},
		{"AB", 16, "00AB"},
		{"AB", 12, "0AB"},
		{"ABCD", 12, "BCD"},
		{"ABCD", 10, "3CD"},
		{"-ABCD", 8, "-CD"},
		{"-100", 8, "00"},
		{"F", 0, "0"},
		{"0", 8, "00"},
	}
	for _, tc := range cases {
		got, err := MustParse(tc.in).Resize(tc.bits)
		require.NoError(t, err, "Resize(%q, %d)", tc.in, tc.bits)
		require.Equal(t, tc.want, got.String(), "Resize(%q, %d)", tc.in, tc.bits)
	}

	_, err := MustParse("AB").Resize(-1)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestConcat(t *testing.T) {
	require.Equal(t, "ABCD", MustParse("AB").Concat(MustParse("CD")).String())
	require.Equal(t, "AB00CD", MustParse("AB").Concat(MustParse("00"), MustParse("CD")).String())

	// Only the receiver's sign survives.
	require.Equal(t, "-ABCD", MustParse("-AB").Concat(MustParse("CD")).String())
	require.Equal(t, "-ABCD", MustParse("-AB").Concat(MustParse("-CD")).String())
	require.Equal(t, "ABCD", MustParse("AB").Concat(MustParse("-CD")).String())

	require.Equal(t, "0AB", FromInt(0).Concat(MustParse("AB")).String())
	require.Equal(t, "AB", MustParse("AB").Concat().String())
}
