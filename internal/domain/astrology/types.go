package astrology

import "time"

// EngineVersion identifies the calculation rules used to build a chart.
// Saved charts computed by an older version are recomputed on read.
const EngineVersion = "v1"

// Planet names one of the nine classical grahas.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
)

// Planets lists the grahas in the order they appear in a chart.
var Planets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// Ayanamsa selects the zodiac used for sign placement.
type Ayanamsa string

const (
	// AyanamsaNone keeps tropical longitudes.
	AyanamsaNone Ayanamsa = "none"
	// AyanamsaLahiri shifts longitudes into the sidereal zodiac.
	AyanamsaLahiri Ayanamsa = "lahiri"
)

// BirthDetails is the user supplied input for a chart.
type BirthDetails struct {
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Place     string   `json:"place"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	// UTCOffset is expressed in hours, e.g. 5.5 for IST.
	UTCOffset *float64 `json:"utcOffset,omitempty"`
}

// PlanetPosition is a single body placed in the chart.
type PlanetPosition struct {
	Name       Planet  `json:"name"`
	Longitude  float64 `json:"longitude"`
	Sign       string  `json:"sign"`
	House      int     `json:"house"`
	Retrograde bool    `json:"retrograde"`
}

// HoroscopeData is the computed chart returned to callers.
type HoroscopeData struct {
	Birth         BirthDetails     `json:"birth"`
	Zodiac        Ayanamsa         `json:"zodiac"`
	Ascendant     string           `json:"ascendant"`
	MoonSign      string           `json:"moonSign"`
	SunSign       string           `json:"sunSign"`
	Nakshatra     string           `json:"nakshatra"`
	Pada          int              `json:"pada"`
	Planets       []PlanetPosition `json:"planets"`
	Doshas        DoshaReport      `json:"doshas"`
	GunaScore     *int             `json:"gunaScore,omitempty"`
	Gemstone      Gemstone         `json:"gemstone"`
	Remedies      []string         `json:"remedies"`
	EngineVersion string           `json:"engineVersion"`
}

// Planet returns the position of the named body.
func (h HoroscopeData) Planet(name Planet) (PlanetPosition, bool) {
	for _, p := range h.Planets {
		if p.Name == name {
			return p, true
		}
	}
	return PlanetPosition{}, false
}

// DoshaKind identifies an affliction.
type DoshaKind string

const (
	DoshaMangal   DoshaKind = "mangal"
	DoshaShani    DoshaKind = "shani"
	DoshaRahu     DoshaKind = "rahu"
	DoshaKetu     DoshaKind = "ketu"
	DoshaKaalSarp DoshaKind = "kaal_sarp"
)

// Severity grades how afflicted a chart is.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Dosha describes one affliction found in a chart.
type Dosha struct {
	Kind        DoshaKind `json:"kind"`
	Name        string    `json:"name"`
	Planet      Planet    `json:"planet,omitempty"`
	House       int       `json:"house,omitempty"`
	Description string    `json:"description"`
}

// DoshaReport aggregates the affliction analysis.
type DoshaReport struct {
	Mangal   bool     `json:"mangal"`
	Shani    bool     `json:"shani"`
	Rahu     bool     `json:"rahu"`
	Ketu     bool     `json:"ketu"`
	KaalSarp bool     `json:"kaalSarp"`
	Present  []Dosha  `json:"present"`
	Severity Severity `json:"severity"`
	Remedies []string `json:"remedies"`
}

// Gemstone is the stone recommended for a ruling planet.
type Gemstone struct {
	Planet Planet `json:"planet"`
	Stone  string `json:"stone"`
	Metal  string `json:"metal"`
	Finger string `json:"finger"`
	Day    string `json:"day"`
}

// KootaScore is one of the eight Ashtakoota components.
type KootaScore struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Max    int    `json:"max"`
	Detail string `json:"detail"`
}

// GunaMatch is the raw Ashtakoota result.
type GunaMatch struct {
	Kootas []KootaScore `json:"kootas"`
	Total  int          `json:"total"`
	Max    int          `json:"max"`
}

// CompatibilityRequest pairs two birth charts. First is scored as the groom
// side and Second as the bride side for the asymmetric kootas.
type CompatibilityRequest struct {
	First  BirthDetails `json:"first"`
	Second BirthDetails `json:"second"`
}

// CompatibilityResult summarizes how well two charts match.
type CompatibilityResult struct {
	Score     int            `json:"score"`
	GunaTotal int            `json:"gunaTotal"`
	GunaMax   int            `json:"gunaMax"`
	Verdict   string         `json:"verdict"`
	Analysis  string         `json:"analysis"`
	Kootas    []KootaScore   `json:"kootas"`
	Remedies  []string       `json:"remedies"`
	First     *HoroscopeData `json:"first,omitempty"`
	Second    *HoroscopeData `json:"second,omitempty"`
}

// SeekerRole places the seeker on one side of the asymmetric kootas.
type SeekerRole string

const (
	RoleGroom SeekerRole = "groom"
	RoleBride SeekerRole = "bride"
)

// Candidate is a profile considered by RankMatches.
type Candidate struct {
	ID    string       `json:"id"`
	Birth BirthDetails `json:"birth"`
}

// RankRequest scores one seeker against many candidates.
type RankRequest struct {
	Seeker     BirthDetails `json:"seeker"`
	Role       SeekerRole   `json:"role"`
	Candidates []Candidate  `json:"candidates"`
}

// RankedMatch is a single row in a RankResponse.
type RankedMatch struct {
	ID        string `json:"id"`
	Score     int    `json:"score"`
	GunaTotal int    `json:"gunaTotal"`
	Verdict   string `json:"verdict"`
	Nakshatra string `json:"nakshatra"`
	MoonSign  string `json:"moonSign"`
}

// RankResponse orders candidates by compatibility.
type RankResponse struct {
	Seeker  HoroscopeData `json:"seeker"`
	Matches []RankedMatch `json:"matches"`
}

// PredictionRequest asks for the reading of a nakshatra on a date.
type PredictionRequest struct {
	Nakshatra string `json:"nakshatra"`
	Date      string `json:"date"`
}

// Prediction is the daily reading for a nakshatra.
type Prediction struct {
	Nakshatra   string `json:"nakshatra"`
	Date        string `json:"date"`
	Theme       string `json:"theme"`
	Message     string `json:"message"`
	LuckyColor  string `json:"luckyColor"`
	LuckyNumber int    `json:"luckyNumber"`
}

// SaveChartRequest persists a chart for the authenticated owner.
type SaveChartRequest struct {
	Label string       `json:"label"`
	Birth BirthDetails `json:"birth"`
}

// ChartRecord is a persisted chart owned by a user.
type ChartRecord struct {
	ID            string        `json:"id"`
	OwnerID       int64         `json:"ownerId"`
	Label         string        `json:"label"`
	Birth         BirthDetails  `json:"birth"`
	Horoscope     HoroscopeData `json:"horoscope"`
	EngineVersion string        `json:"engineVersion"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
