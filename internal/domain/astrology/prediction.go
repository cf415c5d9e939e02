package astrology

import "hash/fnv"

var nakshatraThemes = [27]string{
	"swift beginnings and healing",
	"restraint and transformation",
	"clarity that cuts through confusion",
	"growth, beauty and comfort",
	"curiosity and gentle searching",
	"storms that clear the air",
	"renewal and return",
	"nourishment and care",
	"insight and careful words",
	"honour and ancestry",
	"rest, pleasure and creativity",
	"partnership and generosity",
	"skill of the hands",
	"craft and brilliance",
	"independence and flexibility",
	"focused ambition",
	"devotion and friendship",
	"seniority and protection",
	"getting to the root of things",
	"invincible optimism",
	"lasting victory",
	"listening and learning",
	"rhythm and abundance",
	"healing in solitude",
	"intensity and purpose",
	"depth and stillness",
	"safe journeys and completion",
}

var dailyMessages = []string{
	"Conversations started today carry more warmth than usual; reach out to family.",
	"A patient approach to a pending decision will be rewarded before the week ends.",
	"Spend a quiet moment in prayer or meditation; it steadies a restless mind.",
	"An elder's advice opens a door you had overlooked.",
	"Favourable for meeting new people and exchanging horoscopes.",
	"Keep finances simple today and postpone large purchases.",
	"Your kindness is noticed; someone returns the favour unexpectedly.",
	"Good day for travel, study and sincere promises.",
	"Health improves with early rising and light food.",
	"Let go of an old grievance; it is blocking a new connection.",
	"Creative work flows easily; share it with someone you trust.",
	"Avoid hasty words in the evening and sleep early.",
}

var lordColours = map[Planet]string{
	Sun:     "saffron",
	Moon:    "white",
	Mars:    "red",
	Mercury: "green",
	Jupiter: "yellow",
	Venus:   "pink",
	Saturn:  "navy blue",
	Rahu:    "smoky grey",
	Ketu:    "brown",
}

// PredictFor returns the daily reading of a nakshatra. The selection is
// seeded by the mansion and the date, so the same pair always yields the
// same reading.
func PredictFor(nak Nakshatra, date string) Prediction {
	h := fnv.New32a()
	_, _ = h.Write([]byte(compactName(nak.Name)))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(date))
	seed := h.Sum32()
	return Prediction{
		Nakshatra:   nak.Name,
		Date:        date,
		Theme:       nakshatraThemes[nak.Index],
		Message:     dailyMessages[seed%uint32(len(dailyMessages))],
		LuckyColor:  lordColours[nak.Lord],
		LuckyNumber: int(seed/uint32(len(dailyMessages))%9) + 1,
	}
}
