package tfrrs

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const teamPage = `
<html><body>
<h3 class="panel-title large-title">Northern Arizona</h3>
<div class="panel-second-title">
	<a href="/leagues/49.html">Big Sky</a>
	<a href="/leagues/1277.html">Mountain Region</a>
</div>
<table class="tablesaw">
	<tbody>
		<tr>
			<td><a href="/athletes/7929458/NAU/Nico_Young.html">Nico Young</a></td>
			<td>JR-3</td>
		</tr>
		<tr>
			<td>Walk-on Runner</td>
			<td>FR-1</td>
		</tr>
		<tr><td>lonely cell</td></tr>
	</tbody>
</table>
</body></html>`

func TestParseTeamRoster(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(teamPage))
	require.NoError(t, err)

	roster, ok := parseTeamRoster(doc, "xc")
	require.True(t, ok)

	require.Equal(t, "Northern Arizona", roster.Name)
	require.Equal(t, "xc", roster.Sport)
	require.Equal(t, "Big Sky", roster.Conference)
	require.Equal(t, "Mountain Region", roster.Region)

	require.Len(t, roster.Roster, 2)
	require.Equal(t, RosterEntry{
		Name:      "Nico Young",
		AthleteID: "7929458",
		Year:      "JR-3",
	}, roster.Roster[0])
	// athletes without a profile link keep their cell text
	require.Equal(t, RosterEntry{
		Name: "Walk-on Runner",
		Year: "FR-1",
	}, roster.Roster[1])
}

func TestParseTeamRosterNoTable(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><h3 class="panel-title">Some College</h3></body></html>`,
	))
	require.NoError(t, err)

	roster, ok := parseTeamRoster(doc, "tf")
	require.True(t, ok)
	require.Equal(t, "Some College", roster.Name)
	require.Empty(t, roster.Conference)
	require.Equal(t, []RosterEntry{}, roster.Roster)
}

func TestParseTeamRosterEmptyTable(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body>
		<h3 class="panel-title">Some College</h3>
		<table class="tablesaw"><tbody></tbody></table>
		</body></html>`,
	))
	require.NoError(t, err)

	roster, ok := parseTeamRoster(doc, "tf")
	require.True(t, ok)
	require.Equal(t, []RosterEntry{}, roster.Roster)
}

func TestParseTeamRosterMissingTitle(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<html><body></body></html>",
	))
	require.NoError(t, err)

	_, ok := parseTeamRoster(doc, "tf")
	require.False(t, ok)
}
