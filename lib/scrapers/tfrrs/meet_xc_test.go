package tfrrs

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const xcMeetPage = `
<html><body>
<h3 class="panel-title">State XC Championships</h3>
<div class="panel-heading-normal-text inline-block">Nov 18, 2023</div>
<div class="panel-heading-normal-text inline-block">Louisville,
	KY</div>
<a class="anchor" name="event1234"></a>
<div class="custom-table-title-xc"><h3>Men's 8K CC Individual Results</h3></div>
<div class="row">
	<table><tbody><tr><td colspan="6">team scores, skipped</td></tr></tbody></table>
</div>
<div class="row">
	<table><tbody>
		<tr>
			<td>1</td>
			<td><a href="/athletes/7929458/NAU/Nico_Young.html">Nico Young</a></td>
			<td>JR</td>
			<td><a href="/teams/xc/AZ_college_m_Northern_Arizona.html">Northern Arizona</a></td>
			<td>4:58.2</td>
			<td>23:01.5</td>
		</tr>
		<tr><td>2</td><td>incomplete</td></tr>
	</tbody></table>
</div>
<a class="anchor" name="event5678"></a>
<div class="custom-table-title-xc"><h3>Women's 6K</h3></div>
<div class="row"><div>team scores</div></div>
<div class="row"><p>no table here</p></div>
</body></html>`

func TestParseCrossCountryMeet(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(xcMeetPage))
	require.NoError(t, err)

	meet := parseCrossCountryMeet(doc)
	require.Equal(t, "xc", meet.Type)
	require.Equal(t, "State XC Championships", meet.Name)
	require.Equal(t, "Nov 18, 2023", meet.Date)
	require.Equal(t, "Louisville, KY", meet.Location)

	// the second anchor has no individual results table
	require.Len(t, meet.Events, 1)

	ev := meet.Events[0]
	require.Equal(t, "1234", ev.EventUID)
	// trailing text after "CC" is truncated
	require.Equal(t, "Men's 8K CC", ev.Name)
	require.Len(t, ev.Results, 1)

	p := ev.Results[0]
	require.Equal(t, "1", p.Place)
	require.Equal(t, "Nico Young", p.AthleteName)
	require.Equal(t, "7929458", p.AthleteID)
	require.Equal(t, "Northern Arizona", p.TeamName)
	require.Equal(t, "AZ_college_m_Northern_Arizona", p.TeamSlug)
	require.Equal(t, "23:01.5", p.Time)
}
