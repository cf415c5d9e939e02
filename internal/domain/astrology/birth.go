package astrology

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/yanqian/soulmatch/pkg/errors"
	"github.com/yanqian/soulmatch/pkg/util"
)

const (
	minBirthYear = 1800
	maxBirthYear = 2200
	maxUTCOffset = 14.0
)

// birthMoment is the validated, resolved form of BirthDetails.
type birthMoment struct {
	utc        time.Time
	localHours float64
	latitude   *float64
	longitude  *float64
}

func resolveBirth(b BirthDetails) (birthMoment, error) {
	date, err := util.ParseDate(b.Date)
	if err != nil {
		return birthMoment{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date must be formatted as YYYY-MM-DD", err)
	}
	if date.Year() < minBirthYear || date.Year() > maxBirthYear {
		return birthMoment{}, apperrors.Invalidf("date year must be between %d and %d", minBirthYear, maxBirthYear)
	}
	hour, minute, second, err := parseClock(b.Time)
	if err != nil {
		return birthMoment{}, apperrors.Wrap(apperrors.CodeInvalidInput, "time must be formatted as HH:MM or HH:MM:SS", err)
	}
	if b.Latitude != nil && !inRange(*b.Latitude, -90, 90) {
		return birthMoment{}, apperrors.Invalidf("latitude must be between -90 and 90")
	}
	if b.Longitude != nil && !inRange(*b.Longitude, -180, 180) {
		return birthMoment{}, apperrors.Invalidf("longitude must be between -180 and 180")
	}
	if b.UTCOffset != nil && !inRange(*b.UTCOffset, -maxUTCOffset, maxUTCOffset) {
		return birthMoment{}, apperrors.Invalidf("utcOffset must be between -14 and 14 hours")
	}

	offset := 0.0
	switch {
	case b.UTCOffset != nil:
		offset = *b.UTCOffset
	case b.Longitude != nil:
		// local mean time
		offset = *b.Longitude / degreesPerHourTurn
	}

	local := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, time.UTC)
	utc := local.Add(-time.Duration(offset * float64(time.Hour)))
	return birthMoment{
		utc:        utc,
		localHours: float64(hour) + float64(minute)/60 + float64(second)/3600,
		latitude:   b.Latitude,
		longitude:  b.Longitude,
	}, nil
}

// parseClock accepts HH:MM with optional :SS.
func parseClock(raw string) (int, int, int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, 0, 0, errors.New("time cannot be empty")
	}
	parts := strings.Split(trimmed, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("unexpected time %q", raw)
	}
	limits := []int{23, 59, 59}
	fields := make([]int, 3)
	for i, part := range parts {
		v, ok := clockField(part, limits[i])
		if !ok {
			return 0, 0, 0, fmt.Errorf("invalid %s in %q", []string{"hour", "minute", "second"}[i], raw)
		}
		fields[i] = v
	}
	return fields[0], fields[1], fields[2], nil
}

// clockField parses one or two ASCII digits no larger than limit.
func clockField(part string, limit int) (int, bool) {
	if len(part) == 0 || len(part) > 2 {
		return 0, false
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(part)
	if err != nil || v > limit {
		return 0, false
	}
	return v, true
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

// canonicalBirth renders the fields that influence a chart in a stable form.
func canonicalBirth(b BirthDetails) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(b.Date))
	sb.WriteByte('|')
	sb.WriteString(strings.TrimSpace(b.Time))
	sb.WriteByte('|')
	sb.WriteString(strings.ToLower(strings.TrimSpace(b.Place)))
	for _, v := range []*float64{b.Latitude, b.Longitude, b.UTCOffset} {
		sb.WriteByte('|')
		if v != nil {
			sb.WriteString(strconv.FormatFloat(*v, 'f', 4, 64))
		}
	}
	return sb.String()
}
