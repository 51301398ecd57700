package tfrrs

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const trackMeetPage = `
<html><body>
<h3 class="panel-title">Example Invitational</h3>
<div class="panel-heading-normal-text inline-block">May 3, 2024</div>
<div class="panel-heading-normal-text inline-block">Hayward Field, Eugene, OR</div>
<div class="panel-body">
	<style>
		.col_alt1 { display: none; }
		.col_alt2{display:none}
	</style>
</div>
<div class="col-lg-6">
	<div class="custom-table-title"><h3>Men's 800 Meters
Heat details</h3><span class="wind-text">+1.2</span></div>
	<table class="table-hover"><tbody>
		<tr>
			<td>1</td>
			<td><a href="/athletes/7929458/NAU/Nico_Young.html">Nico Young</a></td>
			<td>JR</td>
			<td><a href="/teams/tf/AZ_college_m_Northern_Arizona.html">Northern Arizona</a></td>
			<td class="col_alt1">1:47.00</td>
			<td class="heat_4_2_3200350_89 col_main">1:46.32</td>
		</tr>
		<tr><td colspan="4">incomplete row</td></tr>
	</tbody></table>
</div>
<div class="col-lg-6">
	<div class="custom-table-title"><h3>Men's 4x400 Relay</h3></div>
	<table class="table-hover"><tbody>
		<tr><td>1</td><td>A</td><td></td><td>B</td><td class="heat_4_1_77_1">3:10.00</td></tr>
	</tbody></table>
</div>
<div class="col-lg-6">
	<div class="custom-table-title"><h5>Women's 1500 Meters</h5></div>
	<table class="table-striped"><tbody>
		<tr>
			<td>1</td>
			<td><a href="/athletes/111/x/Jane_Roe.html">Jane Roe</a></td>
			<td>SO</td>
			<td><a href="/teams/tf/OR_college_f_Oregon.html">Oregon</a></td>
			<td class="round_3_445566_71">4:15.00</td>
		</tr>
	</tbody></table>
</div>
<div class="col-lg-6">
	<div class="custom-table-title"><h5>Women's 5000 Meters</h5></div>
	<table class="table-striped"><tbody>
		<tr>
			<td>1</td>
			<td><a href="/athletes/222/x/Ann_Poe.html">Ann Poe</a></td>
			<td>SR</td>
			<td><a href="/teams/tf/OR_college_f_Oregon.html">Oregon</a></td>
			<td class="round_4_445577_71">15:20.11</td>
		</tr>
	</tbody></table>
</div>
</body></html>`

func trackMeetDoc(t *testing.T) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trackMeetPage))
	require.NoError(t, err)
	return doc
}

func TestParseTrackMeet(t *testing.T) {
	meet := parseTrackMeet(trackMeetDoc(t), "m")

	require.Equal(t, "tf", meet.Type)
	require.Equal(t, "Example Invitational", meet.Name)
	require.Equal(t, "May 3, 2024", meet.Date)
	require.Equal(t, "Hayward Field, Eugene, OR", meet.Location)

	// relay excluded, round_3 event dropped wholesale, round_4 kept
	require.Len(t, meet.Events, 2)

	ev := meet.Events[0]
	require.Equal(t, "Men's 800 Meters", ev.Name)
	require.Equal(t, "m", ev.Gender)
	require.Equal(t, "finals", ev.Round)
	require.NotNil(t, ev.Heat)
	require.Equal(t, 2, *ev.Heat)
	require.Equal(t, "3200350", ev.EventUID)
	require.Equal(t, "+1.2", ev.Wind)
	require.Len(t, ev.Results, 1)

	p := ev.Results[0]
	require.Equal(t, "1", p.Place)
	require.Equal(t, "Nico Young", p.AthleteName)
	require.Equal(t, "7929458", p.AthleteID)
	require.Equal(t, "JR", p.Year)
	require.Equal(t, "Northern Arizona", p.TeamName)
	require.Equal(t, "AZ_college_m_Northern_Arizona", p.TeamSlug)
	// the hidden alternate column is skipped in favor of the visible one
	require.Equal(t, "1:46.32", p.Time)
	require.Equal(t, "heat_4_2_3200350_89", p.Marker)

	merged := meet.Events[1]
	require.Equal(t, "Women's 5000 Meters", merged.Name)
	require.Equal(t, "finals", merged.Round)
	require.NotNil(t, merged.Heat)
	require.Equal(t, 1, *merged.Heat)
	require.Equal(t, "445577", merged.EventUID)
}

func TestHiddenColumnClasses(t *testing.T) {
	hidden := hiddenColumnClasses(trackMeetDoc(t))
	require.True(t, hidden["col_alt1"])
	require.True(t, hidden["col_alt2"])
	require.False(t, hidden["col_main"])
}

func TestParseTrackMeetIdempotent(t *testing.T) {
	first := parseTrackMeet(trackMeetDoc(t), "m")
	second := parseTrackMeet(trackMeetDoc(t), "m")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated extraction differs (-first +second):\n%s", diff)
	}
}
