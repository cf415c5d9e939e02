package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 1990-01-01 ")
	require.NoError(t, err)
	require.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), got)

	for _, raw := range []string{"", "1990-1-1", "01/01/1990", "1990-02-30"} {
		_, err := ParseDate(raw)
		require.Error(t, err, raw)
	}
}

func TestFormatDate(t *testing.T) {
	// 23:30 at UTC-5 is already the next day in UTC
	local := time.Date(2024, 4, 30, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	require.Equal(t, "2024-05-01", FormatDate(local))
}
