package astrology

import (
	"math"
	"strings"
)

const (
	signSpan      = 30.0
	nakshatraSpan = 360.0 / 27
	padaSpan      = nakshatraSpan / 4
)

// Sign is one of the twelve rashis.
type Sign struct {
	Index   int
	Name    string
	Rashi   string
	Lord    Planet
	Element string
}

var signs = [12]Sign{
	{0, "Aries", "Mesha", Mars, "fire"},
	{1, "Taurus", "Vrishabha", Venus, "earth"},
	{2, "Gemini", "Mithuna", Mercury, "air"},
	{3, "Cancer", "Karka", Moon, "water"},
	{4, "Leo", "Simha", Sun, "fire"},
	{5, "Virgo", "Kanya", Mercury, "earth"},
	{6, "Libra", "Tula", Venus, "air"},
	{7, "Scorpio", "Vrishchika", Mars, "water"},
	{8, "Sagittarius", "Dhanu", Jupiter, "fire"},
	{9, "Capricorn", "Makara", Saturn, "earth"},
	{10, "Aquarius", "Kumbha", Saturn, "air"},
	{11, "Pisces", "Meena", Jupiter, "water"},
}

// Nakshatra is one of the 27 lunar mansions.
type Nakshatra struct {
	Index int
	Name  string
	Lord  Planet
}

var nakshatras = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// Vimshottari lords repeat every nine mansions starting at Ashwini.
var nakshatraLords = [9]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// NormalizeDegrees folds any angle into [0,360).
func NormalizeDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}

// SignOf maps an ecliptic longitude to its 30° sign.
func SignOf(longitude float64) Sign {
	idx := int(NormalizeDegrees(longitude) / signSpan)
	if idx > 11 {
		idx = 11
	}
	return signs[idx]
}

// NakshatraOf maps an ecliptic longitude to its mansion and pada (1-4).
func NakshatraOf(longitude float64) (Nakshatra, int) {
	norm := NormalizeDegrees(longitude)
	idx := int(norm / nakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	within := norm - float64(idx)*nakshatraSpan
	pada := int(within/padaSpan) + 1
	if pada < 1 {
		pada = 1
	}
	if pada > 4 {
		pada = 4
	}
	return nakshatraAt(idx), pada
}

func nakshatraAt(idx int) Nakshatra {
	return Nakshatra{Index: idx, Name: nakshatras[idx], Lord: nakshatraLords[idx%9]}
}

// SignByName accepts either the Western or the Sanskrit name.
func SignByName(name string) (Sign, bool) {
	needle := strings.TrimSpace(name)
	for _, s := range signs {
		if strings.EqualFold(s.Name, needle) || strings.EqualFold(s.Rashi, needle) {
			return s, true
		}
	}
	return Sign{}, false
}

// NakshatraByName matches case-insensitively and ignores spaces, so
// "purvaphalguni" and "Purva Phalguni" resolve to the same mansion.
func NakshatraByName(name string) (Nakshatra, bool) {
	needle := compactName(name)
	if needle == "" {
		return Nakshatra{}, false
	}
	for idx, n := range nakshatras {
		if compactName(n) == needle {
			return nakshatraAt(idx), true
		}
	}
	return Nakshatra{}, false
}

// SignNames returns the twelve sign names in zodiac order.
func SignNames() []string {
	out := make([]string, len(signs))
	for i, s := range signs {
		out[i] = s.Name
	}
	return out
}

// NakshatraNames returns the 27 mansion names in order.
func NakshatraNames() []string {
	out := make([]string, len(nakshatras))
	copy(out, nakshatras[:])
	return out
}

func compactName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
