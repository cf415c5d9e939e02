package astrology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// placements builds a chart-like planet list with the given houses; every
// other body sits in house 3 at a longitude that keeps Kaal Sarp out.
func placements(houses map[Planet]int) []PlanetPosition {
	longitudes := map[Planet]float64{
		Sun: 10, Moon: 200, Mars: 40, Mercury: 15, Jupiter: 250,
		Venus: 20, Saturn: 300, Rahu: 100, Ketu: 280,
	}
	out := make([]PlanetPosition, 0, len(Planets))
	for _, p := range Planets {
		house, ok := houses[p]
		if !ok {
			house = 3
		}
		out = append(out, PlanetPosition{Name: p, Longitude: longitudes[p], House: house})
	}
	return out
}

func TestAnalyzeDoshas_NoAffliction(t *testing.T) {
	report := AnalyzeDoshas(placements(nil))
	require.False(t, report.Mangal)
	require.False(t, report.KaalSarp)
	require.Empty(t, report.Present)
	require.Empty(t, report.Remedies)
	require.Equal(t, SeverityNone, report.Severity)
}

func TestAnalyzeDoshas_MangalHouses(t *testing.T) {
	for _, house := range []int{1, 2, 4, 7, 8, 12} {
		report := AnalyzeDoshas(placements(map[Planet]int{Mars: house}))
		require.True(t, report.Mangal, "house %d", house)
		require.Equal(t, SeverityLow, report.Severity)
		require.Len(t, report.Remedies, 1)
		require.Contains(t, report.Present[0].Description, "house")
	}
	for _, house := range []int{3, 5, 6, 9, 10, 11} {
		report := AnalyzeDoshas(placements(map[Planet]int{Mars: house}))
		require.False(t, report.Mangal, "house %d", house)
	}
}

func TestAnalyzeDoshas_SeverityTiers(t *testing.T) {
	medium := AnalyzeDoshas(placements(map[Planet]int{Mars: 7, Saturn: 4}))
	require.True(t, medium.Mangal)
	require.True(t, medium.Shani)
	require.Equal(t, SeverityMedium, medium.Severity)

	high := AnalyzeDoshas(placements(map[Planet]int{Mars: 7, Saturn: 8, Rahu: 1, Ketu: 7}))
	require.True(t, high.Rahu)
	require.True(t, high.Ketu)
	require.Len(t, high.Present, 4)
	require.Equal(t, SeverityHigh, high.Severity)
	require.Len(t, high.Remedies, 4)
}

func TestAnalyzeDoshas_KaalSarp(t *testing.T) {
	planets := []PlanetPosition{
		{Name: Rahu, Longitude: 10, House: 3},
		{Name: Ketu, Longitude: 190, House: 9},
		{Name: Sun, Longitude: 20, House: 3},
		{Name: Moon, Longitude: 45, House: 4},
		{Name: Mars, Longitude: 60, House: 5},
		{Name: Mercury, Longitude: 25, House: 3},
		{Name: Jupiter, Longitude: 120, House: 6},
		{Name: Venus, Longitude: 35, House: 4},
		{Name: Saturn, Longitude: 170, House: 9},
	}
	report := AnalyzeDoshas(planets)
	require.True(t, report.KaalSarp)
	require.Equal(t, SeverityLow, report.Severity)

	planets[6].Longitude = 250
	require.False(t, AnalyzeDoshas(planets).KaalSarp)
}

func TestAnalyzeDoshas_Deterministic(t *testing.T) {
	planets := placements(map[Planet]int{Mars: 8, Rahu: 5})
	require.Equal(t, AnalyzeDoshas(planets), AnalyzeDoshas(planets))
}
