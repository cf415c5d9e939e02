package astrology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignOf_TotalAndMonotonic(t *testing.T) {
	valid := make(map[string]struct{}, 12)
	for _, name := range SignNames() {
		valid[name] = struct{}{}
	}

	lastIndex := 0
	for l := 0.0; l < 360; l += 0.25 {
		sign := SignOf(l)
		_, ok := valid[sign.Name]
		require.True(t, ok, "longitude %.2f mapped to %q", l, sign.Name)
		require.GreaterOrEqual(t, sign.Index, lastIndex, "longitude %.2f", l)
		require.Equal(t, int(l/30), sign.Index)
		lastIndex = sign.Index
	}
}

func TestSignOf_Boundaries(t *testing.T) {
	require.Equal(t, "Aries", SignOf(0).Name)
	require.Equal(t, "Aries", SignOf(29.9999).Name)
	require.Equal(t, "Taurus", SignOf(30).Name)
	require.Equal(t, "Pisces", SignOf(359.9999).Name)
	require.Equal(t, "Aries", SignOf(360).Name)
	require.Equal(t, "Pisces", SignOf(-1).Name)
	require.Equal(t, "Makara", SignOf(285).Rashi)
}

func TestNakshatraOf_TotalWithPada(t *testing.T) {
	valid := make(map[string]struct{}, 27)
	for _, name := range NakshatraNames() {
		valid[name] = struct{}{}
	}

	for l := 0.0; l < 360; l += 0.1 {
		nak, pada := NakshatraOf(l)
		_, ok := valid[nak.Name]
		require.True(t, ok, "longitude %.2f mapped to %q", l, nak.Name)
		require.GreaterOrEqual(t, pada, 1)
		require.LessOrEqual(t, pada, 4)
	}
}

func TestNakshatraOf_PadaQuarters(t *testing.T) {
	span := 360.0 / 27
	cases := []struct {
		longitude float64
		name      string
		pada      int
	}{
		{0, "Ashwini", 1},
		{span/4 + 0.01, "Ashwini", 2},
		{span/2 + 0.01, "Ashwini", 3},
		{span - 0.01, "Ashwini", 4},
		{span + 0.01, "Bharani", 1},
		{359.99, "Revati", 4},
	}
	for _, tc := range cases {
		nak, pada := NakshatraOf(tc.longitude)
		require.Equal(t, tc.name, nak.Name, "longitude %.4f", tc.longitude)
		require.Equal(t, tc.pada, pada, "longitude %.4f", tc.longitude)
	}
}

func TestNakshatraByName_IgnoresCaseAndSpaces(t *testing.T) {
	nak, ok := NakshatraByName("purvaphalguni")
	require.True(t, ok)
	require.Equal(t, "Purva Phalguni", nak.Name)
	require.Equal(t, Venus, nak.Lord)

	_, ok = NakshatraByName("Betelgeuse")
	require.False(t, ok)
}

func TestSignByName_AcceptsRashi(t *testing.T) {
	sign, ok := SignByName("meena")
	require.True(t, ok)
	require.Equal(t, "Pisces", sign.Name)
	require.Equal(t, Jupiter, sign.Lord)
}

func TestNormalizeDegrees(t *testing.T) {
	require.Equal(t, 0.0, NormalizeDegrees(720))
	require.InDelta(t, 350.0, NormalizeDegrees(-10), 1e-9)
	require.InDelta(t, 10.0, NormalizeDegrees(370), 1e-9)
}
