package astrology

var doshaRemedyText = map[DoshaKind]string{
	DoshaMangal:   "Recite the Hanuman Chalisa on Tuesdays and offer red lentils at a temple.",
	DoshaShani:    "Light a sesame oil lamp under a peepal tree on Saturdays and serve the elderly.",
	DoshaRahu:     "Chant the Rahu beej mantra 108 times on Saturdays and donate blue cloth.",
	DoshaKetu:     "Worship Lord Ganesha on Tuesdays and feed stray dogs.",
	DoshaKaalSarp: "Perform the Kaal Sarp shanti puja at Trimbakeshwar or on Nag Panchami.",
}

var gemstones = map[Planet]Gemstone{
	Sun:     {Planet: Sun, Stone: "Ruby", Metal: "Gold", Finger: "Ring", Day: "Sunday"},
	Moon:    {Planet: Moon, Stone: "Pearl", Metal: "Silver", Finger: "Little", Day: "Monday"},
	Mars:    {Planet: Mars, Stone: "Red Coral", Metal: "Copper", Finger: "Ring", Day: "Tuesday"},
	Mercury: {Planet: Mercury, Stone: "Emerald", Metal: "Gold", Finger: "Little", Day: "Wednesday"},
	Jupiter: {Planet: Jupiter, Stone: "Yellow Sapphire", Metal: "Gold", Finger: "Index", Day: "Thursday"},
	Venus:   {Planet: Venus, Stone: "Diamond", Metal: "Platinum", Finger: "Middle", Day: "Friday"},
	Saturn:  {Planet: Saturn, Stone: "Blue Sapphire", Metal: "Iron", Finger: "Middle", Day: "Saturday"},
	Rahu:    {Planet: Rahu, Stone: "Hessonite", Metal: "Silver", Finger: "Middle", Day: "Saturday"},
	Ketu:    {Planet: Ketu, Stone: "Cat's Eye", Metal: "Silver", Finger: "Little", Day: "Tuesday"},
}

var lordMantras = map[Planet]string{
	Sun:     "Offer water to the rising Sun and chant the Aditya Hridayam on Sundays.",
	Moon:    "Chant Om Som Somaya Namah on Mondays and keep a fast with milk and rice.",
	Mars:    "Chant Om Angarakaya Namah on Tuesdays.",
	Mercury: "Chant Om Budhaya Namah on Wednesdays and donate green moong.",
	Jupiter: "Chant Om Gurave Namah on Thursdays and honour your teachers.",
	Venus:   "Chant Om Shukraya Namah on Fridays and donate white sweets.",
	Saturn:  "Chant Om Shanaischaraya Namah on Saturdays.",
}

var compatibilityRemedyText = map[string]string{
	"nadi":    "Nadi dosha: perform the Nadi Nivaran puja and donate grain equal to the couple's weight.",
	"bhakoot": "Bhakoot dosha: worship the lords of both moon signs together before the wedding.",
	"gana":    "Gana mismatch: recite the Vishnu Sahasranama together on Ekadashi.",
	"manglik": "Only one partner is Manglik: perform Kumbh Vivah or the Mangal shanti puja before marriage.",
	"low":     "Overall score is low: consult a family astrologer before fixing a muhurat.",
}

// GemstoneFor returns the stone of a planet.
func GemstoneFor(p Planet) Gemstone {
	return gemstones[p]
}

// chartRemedies merges the lord's mantra with the dosha remedies.
func chartRemedies(lord Planet, report DoshaReport) []string {
	out := make([]string, 0, len(report.Remedies)+1)
	if mantra, ok := lordMantras[lord]; ok {
		out = append(out, mantra)
	}
	out = append(out, report.Remedies...)
	return out
}
