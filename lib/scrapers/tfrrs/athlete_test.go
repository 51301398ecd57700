package tfrrs

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const athletePage = `
<html><body>
<h3 class="panel-title large-title">NICO YOUNG (JR-3)</h3>
<a href="/teams/tf/AZ_college_m_Northern_Arizona.html">
	<h3 class="panel-title">Northern Arizona</h3>
</a>
<div class="panel-second-title">
	<div class="float-right">
		<a href="/teams/xc/CA_college_m_Newbury_Park.html">Newbury Park</a>
		<a href="/rankings/">not a team link</a>
	</div>
</div>
<div id="meet-results">
	<table class="table-hover">
		<thead><tr><td>
			<a href="/results/92668/m/">Example Invitational</a>
			<span>May 3, 2024</span>
		</td></tr></thead>
		<tbody>
			<tr><td>800 Meters</td><td>1:46.32</td><td>1 (Finals)</td></tr>
			<tr><td>Men's 4x400 Relay</td><td>3:10.00</td><td>2</td></tr>
			<tr><td>High Jump</td><td>2.01m</td><td>4</td></tr>
			<tr><td>5000 Meters</td><td>13:10.00</td></tr>
		</tbody>
	</table>
	<table class="table-hover">
		<thead><tr><td>
			<a href="/results/xc/23218/">Conference XC Championships</a>
			<span>Nov 18, 2023</span>
		</td></tr></thead>
		<tbody>
			<tr><td>8K</td><td>28:30.1</td><td>3</td></tr>
		</tbody>
	</table>
</div>
</body></html>`

func athleteDoc(t *testing.T, page string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestParseAthleteProfile(t *testing.T) {
	profile, ok := parseAthleteProfile(athleteDoc(t, athletePage))
	require.True(t, ok)

	require.Equal(t, "Nico Young", profile.Name)
	require.Equal(t, "JR-3", profile.ClassYear)
	require.Equal(t, "AZ_college_m_Northern_Arizona", profile.TeamSlug)
	require.Equal(t, "Northern Arizona", profile.TeamName)
	require.Equal(t, "Male", profile.Gender)
	require.Equal(t, []string{"CA_college_m_Newbury_Park"}, profile.PreviousTeamSlugs)

	// relay + field rows are excluded, the short row is skipped
	require.Len(t, profile.Performances, 2)

	track := profile.Performances[0]
	require.Equal(t, "tf", track.MeetType)
	require.Equal(t, "92668", track.MeetID)
	require.Equal(t, "Example Invitational", track.MeetName)
	require.Equal(t, "May 3, 2024", track.Date)
	require.Equal(t, "800 Meters", track.Event)
	require.Equal(t, "1:46.32", track.Mark)
	require.Equal(t, "1", track.Place)
	require.Equal(t, "Finals", track.Round)

	xc := profile.Performances[1]
	require.Equal(t, "xc", xc.MeetType)
	require.Equal(t, "23218", xc.MeetID)
	require.Equal(t, "8K", xc.Event)
	require.Equal(t, "3", xc.Place)
	require.Empty(t, xc.Round)
}

func TestParseAthleteProfileGenders(t *testing.T) {
	require.Equal(t, "Male", genderFromSlug("AZ_college_m_Northern_Arizona"))
	require.Equal(t, "Female", genderFromSlug("CA_college_f_Stanford"))
	require.Equal(t, "Unknown", genderFromSlug("CA_college_Stanford"))
}

func TestParseAthleteProfileMissingTitle(t *testing.T) {
	_, ok := parseAthleteProfile(athleteDoc(t, "<html><body><p>no such athlete</p></body></html>"))
	require.False(t, ok)
}
