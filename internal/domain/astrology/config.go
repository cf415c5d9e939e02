package astrology

import "time"

// Config holds runtime knobs for the horoscope service.
type Config struct {
	Ayanamsa          Ayanamsa
	CacheTTL          time.Duration
	MaxRankCandidates int
	RankConcurrency   int
}
