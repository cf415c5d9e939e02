package astrology

import (
	"math"
	"time"
)

// j2000 is the Julian day of 2000-01-01 12:00 TT.
const j2000 = 2451545.0

const (
	lahiriAtJ2000      = 23.853
	lahiriRatePerYear  = 50.29 / 3600
	daysPerJulianYear  = 365.25
	sunriseHourApprox  = 6.0
	degreesPerHourTurn = 15.0
)

// orbit holds J2000 mean heliocentric elements for a circular orbit.
type orbit struct {
	meanLongitude float64 // degrees at J2000
	dailyMotion   float64 // degrees per day
	radius        float64 // AU
}

var orbits = map[Planet]orbit{
	Mercury: {252.251, 4.092339, 0.387},
	Venus:   {181.980, 1.602131, 0.723},
	Mars:    {355.433, 0.524033, 1.524},
	Jupiter: {34.351, 0.083091, 5.203},
	Saturn:  {50.077, 0.033460, 9.537},
}

// JulianDay converts a UTC instant to a Julian day number.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	year := t.Year()
	month := int(t.Month())
	day := float64(t.Day()) +
		(float64(t.Hour())+float64(t.Minute())/60+float64(t.Second())/3600)/24
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		day + b - 1524.5
}

// SunLongitude returns the apparent tropical longitude of the Sun.
func SunLongitude(jd float64) float64 {
	d := jd - j2000
	meanLongitude := 280.460 + 0.9856474*d
	meanAnomaly := rad(357.528 + 0.9856003*d)
	return NormalizeDegrees(meanLongitude + 1.915*math.Sin(meanAnomaly) + 0.020*math.Sin(2*meanAnomaly))
}

// MoonLongitude returns the tropical longitude of the Moon using the five
// largest periodic terms.
func MoonLongitude(jd float64) float64 {
	d := jd - j2000
	meanLongitude := 218.316 + 13.176396*d
	moonAnomaly := rad(134.963 + 13.064993*d)
	elongation := rad(297.850 + 12.190749*d)
	sunAnomaly := rad(357.528 + 0.9856003*d)
	return NormalizeDegrees(meanLongitude +
		6.289*math.Sin(moonAnomaly) +
		1.274*math.Sin(2*elongation-moonAnomaly) +
		0.658*math.Sin(2*elongation) +
		0.214*math.Sin(2*moonAnomaly) -
		0.186*math.Sin(sunAnomaly))
}

// MeanNode returns the longitude of the mean ascending lunar node (Rahu).
func MeanNode(jd float64) float64 {
	return NormalizeDegrees(125.0445 - 0.0529539*(jd-j2000))
}

// PlanetLongitude returns the tropical geocentric longitude of any of the
// nine grahas.
func PlanetLongitude(body Planet, jd float64) float64 {
	switch body {
	case Sun:
		return SunLongitude(jd)
	case Moon:
		return MoonLongitude(jd)
	case Rahu:
		return MeanNode(jd)
	case Ketu:
		return NormalizeDegrees(MeanNode(jd) + 180)
	}
	o, ok := orbits[body]
	if !ok {
		return 0
	}
	d := jd - j2000
	helio := rad(o.meanLongitude + o.dailyMotion*d)
	earth := rad(SunLongitude(jd) + 180)
	x := o.radius*math.Cos(helio) - math.Cos(earth)
	y := o.radius*math.Sin(helio) - math.Sin(earth)
	return NormalizeDegrees(deg(math.Atan2(y, x)))
}

// IsRetrograde reports whether a body's geocentric longitude decreases over
// the following day. The lunar nodes are always retrograde.
func IsRetrograde(body Planet, jd float64) bool {
	switch body {
	case Sun, Moon:
		return false
	case Rahu, Ketu:
		return true
	}
	delta := NormalizeDegrees(PlanetLongitude(body, jd+1)-PlanetLongitude(body, jd)+180) - 180
	return delta < 0
}

// AyanamsaAt returns the correction subtracted from tropical longitudes.
func AyanamsaAt(mode Ayanamsa, jd float64) float64 {
	if mode != AyanamsaLahiri {
		return 0
	}
	years := (jd - j2000) / daysPerJulianYear
	return lahiriAtJ2000 + lahiriRatePerYear*years
}

// Ascendant returns the tropical longitude rising on the eastern horizon for
// a geographic latitude and east-positive longitude.
func Ascendant(jd, latitude, longitude float64) float64 {
	d := jd - j2000
	lst := rad(NormalizeDegrees(280.46061837 + 360.98564736629*d + longitude))
	obliquity := rad(23.4393 - 0.0000004*d)
	lat := rad(latitude)
	y := math.Cos(lst)
	x := -(math.Sin(lst)*math.Cos(obliquity) + math.Tan(lat)*math.Sin(obliquity))
	return NormalizeDegrees(deg(math.Atan2(y, x)))
}

// SunriseAscendant approximates the ascendant without coordinates: the Sun
// rises at 06:00 local time and the ascendant advances 15° per hour.
func SunriseAscendant(sunLongitude, localHours float64) float64 {
	return NormalizeDegrees(sunLongitude + (localHours-sunriseHourApprox)*degreesPerHourTurn)
}

func rad(d float64) float64 { return d * math.Pi / 180 }

func deg(r float64) float64 { return r * 180 / math.Pi }
