package astrology

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/soulmatch/pkg/errors"
)

func moonChart(sign, nakshatra string) HoroscopeData {
	return HoroscopeData{MoonSign: sign, Nakshatra: nakshatra}
}

func kootaPoints(kootas []KootaScore) map[string]int {
	out := make(map[string]int, len(kootas))
	for _, k := range kootas {
		out[k.Name] = k.Points
	}
	return out
}

func TestMatchGunas_Breakdowns(t *testing.T) {
	cases := []struct {
		name  string
		groom HoroscopeData
		bride HoroscopeData
		want  map[string]int
		total int
	}{
		{
			name:  "same mansion",
			groom: moonChart("Aries", "Ashwini"),
			bride: moonChart("Aries", "Ashwini"),
			want: map[string]int{
				"Varna": 1, "Vashya": 2, "Tara": 3, "Yoni": 4,
				"Graha Maitri": 5, "Gana": 6, "Bhakoot": 7, "Nadi": 0,
			},
			total: 28,
		},
		{
			name:  "cancer and pisces",
			groom: moonChart("Cancer", "Pushya"),
			bride: moonChart("Pisces", "Revati"),
			want: map[string]int{
				"Varna": 1, "Vashya": 2, "Tara": 3, "Yoni": 2,
				"Graha Maitri": 4, "Gana": 6, "Bhakoot": 0, "Nadi": 8,
			},
			total: 26,
		},
		{
			name:  "aries and virgo",
			groom: moonChart("Aries", "Ashwini"),
			bride: moonChart("Virgo", "Hasta"),
			want: map[string]int{
				"Varna": 1, "Vashya": 1, "Tara": 1, "Yoni": 0,
				"Graha Maitri": 0, "Gana": 6, "Bhakoot": 0, "Nadi": 0,
			},
			total: 9,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			match, err := MatchGunas(tc.groom, tc.bride)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, kootaPoints(match.Kootas)); diff != "" {
				t.Fatalf("koota points mismatch (-want +got):\n%s", diff)
			}
			require.Equal(t, tc.total, match.Total)
			require.Equal(t, MaxGuna, match.Max)
		})
	}
}

func TestMatchGunas_AlwaysWithinBounds(t *testing.T) {
	signs := SignNames()
	naks := NakshatraNames()
	for _, gs := range signs {
		for _, gn := range naks {
			groom := moonChart(gs, gn)
			for _, bs := range signs {
				for _, bn := range naks {
					match, err := MatchGunas(groom, moonChart(bs, bn))
					require.NoError(t, err)
					if match.Total < 0 || match.Total > MaxGuna {
						t.Fatalf("%s/%s with %s/%s scored %d", gs, gn, bs, bn, match.Total)
					}
				}
			}
		}
	}
}

func TestMatchGunas_UnknownMoonSign(t *testing.T) {
	_, err := MatchGunas(moonChart("Ophiuchus", "Ashwini"), moonChart("Aries", "Ashwini"))
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestScoreCompatibility_Verdicts(t *testing.T) {
	result, err := ScoreCompatibility(moonChart("Aries", "Ashwini"), moonChart("Aries", "Ashwini"))
	require.NoError(t, err)
	require.Equal(t, 78, result.Score)
	require.Equal(t, "good", result.Verdict)
	require.Equal(t, []string{compatibilityRemedyText["nadi"]}, result.Remedies)

	result, err = ScoreCompatibility(moonChart("Cancer", "Pushya"), moonChart("Pisces", "Revati"))
	require.NoError(t, err)
	require.Equal(t, 72, result.Score)
	require.Equal(t, 26, result.GunaTotal)
	require.Equal(t, []string{compatibilityRemedyText["bhakoot"]}, result.Remedies)

	result, err = ScoreCompatibility(moonChart("Aries", "Ashwini"), moonChart("Virgo", "Hasta"))
	require.NoError(t, err)
	require.Equal(t, 25, result.Score)
	require.Equal(t, "not_advised", result.Verdict)
	require.Equal(t, []string{
		compatibilityRemedyText["bhakoot"],
		compatibilityRemedyText["nadi"],
		compatibilityRemedyText["low"],
	}, result.Remedies)
	require.NotNil(t, result.First.GunaScore)
	require.Equal(t, 9, *result.First.GunaScore)
	require.Equal(t, 9, *result.Second.GunaScore)
}

func TestScoreCompatibility_DoesNotMutateInputs(t *testing.T) {
	groom := moonChart("Aries", "Ashwini")
	bride := moonChart("Leo", "Magha")
	_, err := ScoreCompatibility(groom, bride)
	require.NoError(t, err)
	require.Nil(t, groom.GunaScore)
	require.Nil(t, bride.GunaScore)
}

func TestScoreCompatibility_Manglik(t *testing.T) {
	groom := moonChart("Cancer", "Pushya")
	bride := moonChart("Pisces", "Revati")
	groom.Doshas.Mangal = true

	one, err := ScoreCompatibility(groom, bride)
	require.NoError(t, err)
	require.Contains(t, one.Analysis, "Only one partner is Manglik")
	require.Contains(t, one.Remedies, compatibilityRemedyText["manglik"])

	bride.Doshas.Mangal = true
	both, err := ScoreCompatibility(groom, bride)
	require.NoError(t, err)
	require.Contains(t, both.Analysis, "cancels out")
	require.NotContains(t, both.Remedies, compatibilityRemedyText["manglik"])
}

func TestVerdictFor_Thresholds(t *testing.T) {
	cases := map[int]string{0: "not_advised", 17: "not_advised", 18: "average", 24: "average", 25: "good", 32: "good", 33: "excellent", 36: "excellent"}
	for total, want := range cases {
		got, _ := verdictFor(total)
		require.Equal(t, want, got, "total %d", total)
	}
}
