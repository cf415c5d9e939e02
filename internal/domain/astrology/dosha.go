package astrology

import "fmt"

type afflictionRule struct {
	kind        DoshaKind
	name        string
	planet      Planet
	houses      map[int]struct{}
	description string
}

var afflictionRules = []afflictionRule{
	{
		kind:        DoshaMangal,
		name:        "Mangal Dosha",
		planet:      Mars,
		houses:      houseSet(1, 2, 4, 7, 8, 12),
		description: "Mars placed in house %d is said to strain marital harmony.",
	},
	{
		kind:        DoshaShani,
		name:        "Shani Dosha",
		planet:      Saturn,
		houses:      houseSet(1, 4, 7, 8, 12),
		description: "Saturn placed in house %d brings delays and heavy responsibilities.",
	},
	{
		kind:        DoshaRahu,
		name:        "Rahu Dosha",
		planet:      Rahu,
		houses:      houseSet(1, 5, 7, 8, 12),
		description: "Rahu placed in house %d clouds judgement and stirs restlessness.",
	},
	{
		kind:        DoshaKetu,
		name:        "Ketu Dosha",
		planet:      Ketu,
		houses:      houseSet(1, 2, 7, 8, 12),
		description: "Ketu placed in house %d creates detachment in relationships.",
	},
}

// kaalSarpBodies must all fall on one side of the nodal axis.
var kaalSarpBodies = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

func houseSet(houses ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(houses))
	for _, h := range houses {
		set[h] = struct{}{}
	}
	return set
}

// AnalyzeDoshas checks planetary house placements against the affliction
// tables. The result depends only on the input positions.
func AnalyzeDoshas(planets []PlanetPosition) DoshaReport {
	byName := make(map[Planet]PlanetPosition, len(planets))
	for _, p := range planets {
		byName[p.Name] = p
	}

	report := DoshaReport{Present: []Dosha{}}
	for _, rule := range afflictionRules {
		pos, ok := byName[rule.planet]
		if !ok {
			continue
		}
		if _, afflicted := rule.houses[pos.House]; !afflicted {
			continue
		}
		report.Present = append(report.Present, Dosha{
			Kind:        rule.kind,
			Name:        rule.name,
			Planet:      rule.planet,
			House:       pos.House,
			Description: fmt.Sprintf(rule.description, pos.House),
		})
		report.setFlag(rule.kind)
	}

	if hasKaalSarp(byName) {
		report.Present = append(report.Present, Dosha{
			Kind:        DoshaKaalSarp,
			Name:        "Kaal Sarp Dosha",
			Description: "All seven visible planets are hemmed between Rahu and Ketu.",
		})
		report.setFlag(DoshaKaalSarp)
	}

	report.Severity = severityFor(len(report.Present))
	report.Remedies = doshaRemedies(report.Present)
	return report
}

func (r *DoshaReport) setFlag(kind DoshaKind) {
	switch kind {
	case DoshaMangal:
		r.Mangal = true
	case DoshaShani:
		r.Shani = true
	case DoshaRahu:
		r.Rahu = true
	case DoshaKetu:
		r.Ketu = true
	case DoshaKaalSarp:
		r.KaalSarp = true
	}
}

func hasKaalSarp(byName map[Planet]PlanetPosition) bool {
	rahu, ok := byName[Rahu]
	if !ok {
		return false
	}
	var ahead, behind int
	for _, body := range kaalSarpBodies {
		pos, ok := byName[body]
		if !ok {
			return false
		}
		rel := NormalizeDegrees(pos.Longitude - rahu.Longitude)
		switch {
		case rel > 0 && rel < 180:
			ahead++
		case rel > 180:
			behind++
		default:
			// conjunct with a node
			return false
		}
	}
	return ahead == len(kaalSarpBodies) || behind == len(kaalSarpBodies)
}

func severityFor(count int) Severity {
	switch {
	case count <= 0:
		return SeverityNone
	case count == 1:
		return SeverityLow
	case count == 2:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

func doshaRemedies(present []Dosha) []string {
	out := make([]string, 0, len(present))
	for _, d := range present {
		if remedy, ok := doshaRemedyText[d.Kind]; ok {
			out = append(out, remedy)
		}
	}
	return out
}
