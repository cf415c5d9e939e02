package astrology

import "math"

// Calculate builds a chart from birth details. It is a pure function: the
// same details and ayanamsa always produce the same chart.
func Calculate(birth BirthDetails, mode Ayanamsa) (HoroscopeData, error) {
	moment, err := resolveBirth(birth)
	if err != nil {
		return HoroscopeData{}, err
	}
	if mode != AyanamsaLahiri {
		mode = AyanamsaNone
	}

	jd := JulianDay(moment.utc)
	shift := AyanamsaAt(mode, jd)

	var ascTropical float64
	if moment.latitude != nil && moment.longitude != nil {
		ascTropical = Ascendant(jd, *moment.latitude, *moment.longitude)
	} else {
		ascTropical = SunriseAscendant(SunLongitude(jd), moment.localHours)
	}
	ascendant := SignOf(ascTropical - shift)

	planets := make([]PlanetPosition, 0, len(Planets))
	for _, body := range Planets {
		lon := roundDegrees(PlanetLongitude(body, jd) - shift)
		sign := SignOf(lon)
		planets = append(planets, PlanetPosition{
			Name:       body,
			Longitude:  lon,
			Sign:       sign.Name,
			House:      wholeSignHouse(ascendant.Index, sign.Index),
			Retrograde: IsRetrograde(body, jd),
		})
	}

	sunLon := planets[0].Longitude
	moonLon := planets[1].Longitude
	nakshatra, pada := NakshatraOf(moonLon)
	doshas := AnalyzeDoshas(planets)

	return HoroscopeData{
		Birth:         birth,
		Zodiac:        mode,
		Ascendant:     ascendant.Name,
		MoonSign:      SignOf(moonLon).Name,
		SunSign:       SignOf(sunLon).Name,
		Nakshatra:     nakshatra.Name,
		Pada:          pada,
		Planets:       planets,
		Doshas:        doshas,
		Gemstone:      GemstoneFor(ascendant.Lord),
		Remedies:      chartRemedies(ascendant.Lord, doshas),
		EngineVersion: EngineVersion,
	}, nil
}

// wholeSignHouse counts houses from the ascendant sign, 1-based.
func wholeSignHouse(ascendantSign, planetSign int) int {
	return (planetSign-ascendantSign+12)%12 + 1
}

// roundDegrees normalizes and keeps four decimals, about a third of an
// arcsecond.
func roundDegrees(v float64) float64 {
	return NormalizeDegrees(math.Round(NormalizeDegrees(v)*1e4) / 1e4)
}
