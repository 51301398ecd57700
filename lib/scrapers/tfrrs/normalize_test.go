package tfrrs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitNameAndYear(t *testing.T) {
	testCases := []struct {
		raw  string
		name string
		year string
	}{
		{"Nico Young (JR-3)", "Nico Young", "JR-3"},
		{"NICO  YOUNG (JR-3)", "Nico Young", "JR-3"},
		{"JANE DOE", "Jane Doe", ""},
		{"Jane (A) Doe (SR)", "Jane Doe", "SR"},
		{"", "", ""},
	}
	for _, test := range testCases {
		name, year := SplitNameAndYear(test.raw)
		require.Equal(t, test.name, name, test.raw)
		require.Equal(t, test.year, year, test.raw)
	}
}

func TestNormalizeTime(t *testing.T) {
	testCases := []struct {
		raw     string
		seconds float64
		ok      bool
	}{
		{"58.3", 58.3, true},
		{"4:05.32", 245.32, true},
		{"1:02:03.0", 3723.0, true},
		{" 23:01.5 ", 1381.5, true},
		{"1:2:3:4", 0, false},
		{"4:xx.32", 0, false},
		// ParseFloat-isms that are not clock segments
		{"INF", 0, false},
		{"NaN", 0, false},
		{"-58.3", 0, false},
		{"4:-05.32", 0, false},
		{"", 0, false},
	}
	for _, test := range testCases {
		seconds, flag, ok := NormalizeTime(test.raw, false)
		require.Equal(t, test.ok, ok, test.raw)
		require.Empty(t, flag, test.raw)
		if test.ok {
			require.InDelta(t, test.seconds, seconds, 1e-9, test.raw)
		}
	}
}

func TestNormalizeTimeFlags(t *testing.T) {
	for _, raw := range []string{"NT", "DNS", "DNF", "DQ", "dns"} {
		_, flag, ok := NormalizeTime(raw, true)
		require.True(t, ok, raw)
		require.NotEmpty(t, flag, raw)

		_, flag, ok = NormalizeTime(raw, false)
		require.False(t, ok, raw)
		require.Empty(t, flag, raw)
	}

	_, flag, ok := NormalizeTime("DNS", true)
	require.True(t, ok)
	require.Equal(t, "DNS", flag)
}

func TestExtractIds(t *testing.T) {
	require.Equal(t, "7929458", ExtractAthleteID("/athletes/7929458/NAU/Nico_Young.html"))
	require.Equal(t, "", ExtractAthleteID(""))
	require.Equal(t, "", ExtractAthleteID("/athletes/abc/"))

	require.Equal(t,
		"AZ_college_m_Northern_Arizona",
		ExtractTeamSlug("/teams/tf/AZ_college_m_Northern_Arizona.html"),
	)
	require.Equal(t,
		"CA_college_f_Stanford",
		ExtractTeamSlug("https://www.tfrrs.org/teams/xc/CA_college_f_Stanford.html"),
	)
	require.Equal(t, "", ExtractTeamSlug(""))

	require.Equal(t, "92668", ExtractMeetID("/results/92668/m/"))
	require.Equal(t, "23218", ExtractMeetID("/results/xc/23218/"))
	require.Equal(t, "", ExtractMeetID("/rankings/"))
}
