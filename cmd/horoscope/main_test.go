package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/soulmatch/internal/domain/astrology"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestChartCmd(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")
	out, err := execute(t, "chart", "--date", "1990-01-01", "--time", "12:00", "--ayanamsa", "none")
	require.NoError(t, err)

	var chart astrology.HoroscopeData
	require.NoError(t, json.Unmarshal([]byte(out), &chart))
	require.Equal(t, "Capricorn", chart.SunSign)
	require.Equal(t, astrology.AyanamsaNone, chart.Zodiac)
}

func TestChartCmd_Sidereal(t *testing.T) {
	out, err := execute(t, "chart", "--date", "1990-01-01", "--time", "12:00", "--ayanamsa", "lahiri")
	require.NoError(t, err)

	var chart astrology.HoroscopeData
	require.NoError(t, json.Unmarshal([]byte(out), &chart))
	require.Equal(t, "Sagittarius", chart.SunSign)
}

func TestChartCmd_RequiresTime(t *testing.T) {
	_, err := execute(t, "chart", "--date", "1990-01-01")
	require.Error(t, err)
	require.Contains(t, err.Error(), "time")
}

func TestMatchCmd(t *testing.T) {
	out, err := execute(t, "match",
		"--groom-date", "1990-01-01", "--groom-time", "12:00",
		"--bride-date", "1992-07-14", "--bride-time", "18:30", "--bride-lat", "28.61", "--bride-lon", "77.21",
	)
	require.NoError(t, err)

	var result astrology.CompatibilityResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Kootas, 8)
	require.Equal(t, astrology.MaxGuna, result.GunaMax)
}

func TestPredictCmd(t *testing.T) {
	first, err := execute(t, "predict", "Rohini", "--date", "2024-05-01")
	require.NoError(t, err)
	second, err := execute(t, "predict", "rohini", "--date", "2024-05-01")
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, err = execute(t, "predict", "Sirius")
	require.Error(t, err)
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("AUTH_SECRET", "cli-secret-cli-secret-cli-secret-00")
	out, err := execute(t, "token", "--user-id", "9", "--email", "a@b.c")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)
}

func TestTokenCmd_RequiresSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")
	_, err := execute(t, "token", "--user-id", "9")
	require.ErrorContains(t, err, "auth.secret")
}
