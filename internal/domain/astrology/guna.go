package astrology

import (
	"fmt"
	"math"

	apperrors "github.com/yanqian/soulmatch/pkg/errors"
)

// MaxGuna is the best possible Ashtakoota total.
const MaxGuna = 36

type vashya int

const (
	vashyaChatushpada vashya = iota
	vashyaManava
	vashyaJalachara
	vashyaVanachara
	vashyaKeeta
)

var signVashya = [12]vashya{
	vashyaChatushpada, vashyaChatushpada, vashyaManava, vashyaJalachara,
	vashyaVanachara, vashyaManava, vashyaManava, vashyaKeeta,
	vashyaManava, vashyaJalachara, vashyaManava, vashyaJalachara,
}

var vashyaPoints = [5][5]int{
	{2, 1, 1, 0, 1},
	{1, 2, 0, 0, 1},
	{1, 0, 2, 1, 1},
	{0, 0, 1, 2, 0},
	{1, 1, 1, 0, 2},
}

// varna rank by element: water > fire > earth > air.
var elementVarna = map[string]int{"water": 4, "fire": 3, "earth": 2, "air": 1}

type yoni string

var nakshatraYoni = [27]yoni{
	"horse", "elephant", "sheep", "serpent", "serpent", "dog",
	"cat", "sheep", "cat", "rat", "rat", "cow",
	"buffalo", "tiger", "buffalo", "tiger", "deer", "deer",
	"dog", "monkey", "mongoose", "monkey", "lion", "horse",
	"lion", "cow", "elephant",
}

var yoniEnemies = map[yoni]yoni{
	"horse": "buffalo", "buffalo": "horse",
	"elephant": "lion", "lion": "elephant",
	"sheep": "monkey", "monkey": "sheep",
	"serpent": "mongoose", "mongoose": "serpent",
	"dog": "deer", "deer": "dog",
	"cat": "rat", "rat": "cat",
	"cow": "tiger", "tiger": "cow",
}

type gana int

const (
	ganaDeva gana = iota
	ganaManushya
	ganaRakshasa
)

var ganaNames = [3]string{"Deva", "Manushya", "Rakshasa"}

var nakshatraGana = [27]gana{
	ganaDeva, ganaManushya, ganaRakshasa, ganaManushya, ganaDeva, ganaManushya,
	ganaDeva, ganaDeva, ganaRakshasa, ganaRakshasa, ganaManushya, ganaManushya,
	ganaDeva, ganaRakshasa, ganaDeva, ganaRakshasa, ganaDeva, ganaRakshasa,
	ganaRakshasa, ganaManushya, ganaManushya, ganaDeva, ganaRakshasa, ganaRakshasa,
	ganaManushya, ganaManushya, ganaDeva,
}

var nadiNames = [3]string{"Adi", "Madhya", "Antya"}

// nadiPattern repeats every six mansions starting at Ashwini.
var nadiPattern = [6]int{0, 1, 2, 2, 1, 0}

type relation int

const (
	relEnemy relation = iota
	relNeutral
	relFriend
)

var naturalFriends = map[Planet][]Planet{
	Sun:     {Moon, Mars, Jupiter},
	Moon:    {Sun, Mercury},
	Mars:    {Sun, Moon, Jupiter},
	Mercury: {Sun, Venus},
	Jupiter: {Sun, Moon, Mars},
	Venus:   {Mercury, Saturn},
	Saturn:  {Mercury, Venus},
}

var naturalEnemies = map[Planet][]Planet{
	Sun:     {Venus, Saturn},
	Mars:    {Mercury},
	Mercury: {Moon},
	Jupiter: {Mercury, Venus},
	Venus:   {Sun, Moon},
	Saturn:  {Sun, Moon, Mars},
}

// moonPlacement is what every koota is computed from.
type moonPlacement struct {
	sign      Sign
	nakshatra Nakshatra
}

func placementOf(h HoroscopeData) (moonPlacement, error) {
	sign, ok := SignByName(h.MoonSign)
	if !ok {
		return moonPlacement{}, apperrors.Invalidf("unknown moon sign %q", h.MoonSign)
	}
	nak, ok := NakshatraByName(h.Nakshatra)
	if !ok {
		return moonPlacement{}, apperrors.Invalidf("unknown nakshatra %q", h.Nakshatra)
	}
	return moonPlacement{sign: sign, nakshatra: nak}, nil
}

// MatchGunas scores the eight kootas for a groom and bride chart.
func MatchGunas(groom, bride HoroscopeData) (GunaMatch, error) {
	g, err := placementOf(groom)
	if err != nil {
		return GunaMatch{}, err
	}
	b, err := placementOf(bride)
	if err != nil {
		return GunaMatch{}, err
	}
	return scoreKootas(g, b), nil
}

func scoreKootas(g, b moonPlacement) GunaMatch {
	kootas := []KootaScore{
		varnaKoota(g, b),
		vashyaKoota(g, b),
		taraKoota(g, b),
		yoniKoota(g, b),
		maitriKoota(g, b),
		ganaKoota(g, b),
		bhakootKoota(g, b),
		nadiKoota(g, b),
	}
	total := 0
	for _, k := range kootas {
		total += k.Points
	}
	return GunaMatch{Kootas: kootas, Total: total, Max: MaxGuna}
}

func varnaKoota(g, b moonPlacement) KootaScore {
	points := 0
	if elementVarna[g.sign.Element] >= elementVarna[b.sign.Element] {
		points = 1
	}
	return KootaScore{Name: "Varna", Points: points, Max: 1,
		Detail: fmt.Sprintf("%s (%s) with %s (%s)", g.sign.Name, g.sign.Element, b.sign.Name, b.sign.Element)}
}

func vashyaKoota(g, b moonPlacement) KootaScore {
	points := vashyaPoints[signVashya[g.sign.Index]][signVashya[b.sign.Index]]
	return KootaScore{Name: "Vashya", Points: points, Max: 2,
		Detail: fmt.Sprintf("%s with %s", g.sign.Name, b.sign.Name)}
}

// taraKoota counts mansions in both directions; the 3rd, 5th and 7th tara
// of each nine are inauspicious.
func taraKoota(g, b moonPlacement) KootaScore {
	fromBride := taraFavourable(b.nakshatra.Index, g.nakshatra.Index)
	fromGroom := taraFavourable(g.nakshatra.Index, b.nakshatra.Index)
	points := 0
	switch {
	case fromBride && fromGroom:
		points = 3
	case fromBride || fromGroom:
		points = 1
	}
	return KootaScore{Name: "Tara", Points: points, Max: 3,
		Detail: fmt.Sprintf("%s and %s", g.nakshatra.Name, b.nakshatra.Name)}
}

func taraFavourable(from, to int) bool {
	count := (to-from+27)%27 + 1
	tara := count % 9
	if tara == 0 {
		tara = 9
	}
	return tara != 3 && tara != 5 && tara != 7
}

func yoniKoota(g, b moonPlacement) KootaScore {
	gy, by := nakshatraYoni[g.nakshatra.Index], nakshatraYoni[b.nakshatra.Index]
	points := 2
	switch {
	case gy == by:
		points = 4
	case yoniEnemies[gy] == by:
		points = 0
	}
	return KootaScore{Name: "Yoni", Points: points, Max: 4, Detail: fmt.Sprintf("%s with %s", gy, by)}
}

func maitriKoota(g, b moonPlacement) KootaScore {
	gl, bl := g.sign.Lord, b.sign.Lord
	points := 0
	if gl == bl {
		points = 5
	} else {
		r1, r2 := relationOf(gl, bl), relationOf(bl, gl)
		if r1 < r2 {
			r1, r2 = r2, r1
		}
		switch {
		case r1 == relFriend && r2 == relFriend:
			points = 5
		case r1 == relFriend && r2 == relNeutral:
			points = 4
		case r1 == relNeutral && r2 == relNeutral:
			points = 3
		case r1 == relFriend && r2 == relEnemy:
			points = 1
		}
	}
	return KootaScore{Name: "Graha Maitri", Points: points, Max: 5,
		Detail: fmt.Sprintf("lords %s and %s", gl, bl)}
}

func relationOf(from, to Planet) relation {
	for _, p := range naturalFriends[from] {
		if p == to {
			return relFriend
		}
	}
	for _, p := range naturalEnemies[from] {
		if p == to {
			return relEnemy
		}
	}
	return relNeutral
}

func ganaKoota(g, b moonPlacement) KootaScore {
	gg, bg := nakshatraGana[g.nakshatra.Index], nakshatraGana[b.nakshatra.Index]
	lo, hi := gg, bg
	if lo > hi {
		lo, hi = hi, lo
	}
	points := 0
	switch {
	case lo == hi:
		points = 6
	case lo == ganaDeva && hi == ganaManushya:
		points = 5
	case lo == ganaDeva && hi == ganaRakshasa:
		points = 1
	}
	return KootaScore{Name: "Gana", Points: points, Max: 6,
		Detail: fmt.Sprintf("%s with %s", ganaNames[gg], ganaNames[bg])}
}

// bhakootKoota rewards the 1/7, 3/11 and 4/10 sign relationships.
func bhakootKoota(g, b moonPlacement) KootaScore {
	distance := (b.sign.Index-g.sign.Index+12)%12 + 1
	points := 0
	switch distance {
	case 1, 3, 4, 7, 10, 11:
		points = 7
	}
	return KootaScore{Name: "Bhakoot", Points: points, Max: 7,
		Detail: fmt.Sprintf("signs %d apart", distance)}
}

func nadiKoota(g, b moonPlacement) KootaScore {
	gn, bn := nadiPattern[g.nakshatra.Index%6], nadiPattern[b.nakshatra.Index%6]
	points := 8
	if gn == bn {
		points = 0
	}
	return KootaScore{Name: "Nadi", Points: points, Max: 8,
		Detail: fmt.Sprintf("%s with %s", nadiNames[gn], nadiNames[bn])}
}

// ScoreCompatibility combines two charts into a compatibility verdict.
func ScoreCompatibility(groom, bride HoroscopeData) (CompatibilityResult, error) {
	match, err := MatchGunas(groom, bride)
	if err != nil {
		return CompatibilityResult{}, err
	}

	score := int(math.Round(float64(match.Total) / float64(MaxGuna) * 100))
	verdict, analysis := verdictFor(match.Total)
	remedies := make([]string, 0, 4)
	for _, k := range match.Kootas {
		if k.Points != 0 {
			continue
		}
		switch k.Name {
		case "Nadi":
			remedies = append(remedies, compatibilityRemedyText["nadi"])
		case "Bhakoot":
			remedies = append(remedies, compatibilityRemedyText["bhakoot"])
		case "Gana":
			remedies = append(remedies, compatibilityRemedyText["gana"])
		}
	}

	switch {
	case groom.Doshas.Mangal && bride.Doshas.Mangal:
		analysis += " Both partners are Manglik, so the Mangal dosha cancels out."
	case groom.Doshas.Mangal || bride.Doshas.Mangal:
		analysis += " Only one partner is Manglik; a remedy is advised."
		remedies = append(remedies, compatibilityRemedyText["manglik"])
	}
	if match.Total < 18 {
		remedies = append(remedies, compatibilityRemedyText["low"])
	}

	groomCopy, brideCopy := groom, bride
	total := match.Total
	groomCopy.GunaScore = &total
	brideCopy.GunaScore = &total

	return CompatibilityResult{
		Score:     score,
		GunaTotal: match.Total,
		GunaMax:   MaxGuna,
		Verdict:   verdict,
		Analysis:  analysis,
		Kootas:    match.Kootas,
		Remedies:  remedies,
		First:     &groomCopy,
		Second:    &brideCopy,
	}, nil
}

func verdictFor(total int) (string, string) {
	switch {
	case total >= 33:
		return "excellent", fmt.Sprintf("%d of %d gunas match: an excellent union blessed on nearly every koota.", total, MaxGuna)
	case total >= 25:
		return "good", fmt.Sprintf("%d of %d gunas match: a good match with strong mutual understanding.", total, MaxGuna)
	case total >= 18:
		return "average", fmt.Sprintf("%d of %d gunas match: an acceptable match that needs patience and effort.", total, MaxGuna)
	default:
		return "not_advised", fmt.Sprintf("%d of %d gunas match: below the traditional threshold of 18.", total, MaxGuna)
	}
}
