package tfrrs

import (
	"strings"

	"tfrrs-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func parseCrossCountryMeet(doc *goquery.Document) Meet {
	name, date, location := parseMeetHeader(doc)

	events := []Event{}
	doc.Find("a.anchor[name^='event']").Each(func(_ int, anchor *goquery.Selection) {
		ev, ok := parseCrossCountryEvent(doc, anchor)
		if ok {
			events = append(events, ev)
		}
	})

	return Meet{
		Type:     "xc",
		Name:     name,
		Date:     date,
		Location: location,
		Events:   events,
	}
}

// parseCrossCountryEvent extracts one race. The anchor only marks a
// position in the document; the title and result blocks follow it in
// document order. The first `row` container after the anchor holds team
// scores and is skipped; the second holds the individual results.
func parseCrossCountryEvent(doc *goquery.Document, anchor *goquery.Selection) (Event, bool) {
	id := strings.TrimSpace(strings.TrimPrefix(anchor.AttrOr("name", ""), "event"))
	if id == "" || len(anchor.Nodes) == 0 {
		return Event{}, false
	}

	titleNode := htmlutil.NextMatching(anchor.Nodes[0], func(n *html.Node) bool {
		return n.Data == "div" && htmlutil.HasClass(n, "custom-table-title-xc")
	})
	if titleNode == nil {
		return Event{}, false
	}
	eventName := htmlutil.Text(doc.FindNodes(titleNode).Find("h3").First())

	// source pages sometimes append trailing text after "CC"; truncate
	// right after it
	if before, _, found := strings.Cut(eventName, "CC"); found {
		eventName = strings.TrimSpace(before) + " CC"
	}

	isRow := func(n *html.Node) bool {
		return n.Data == "div" && htmlutil.HasClass(n, "row")
	}
	teamNode := htmlutil.NextMatching(anchor.Nodes[0], isRow)
	if teamNode == nil {
		return Event{}, false
	}
	indivNode := htmlutil.NextMatching(teamNode, isRow)
	if indivNode == nil {
		return Event{}, false
	}

	table := doc.FindNodes(indivNode).Find("table").First()
	if table.Length() == 0 {
		return Event{}, false
	}

	results := []Placement{}
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}

		athleteLink := cells.Eq(1).Find("a").First()
		teamLink := cells.Eq(3).Find("a").First()

		results = append(results, Placement{
			Place:       htmlutil.Text(cells.Eq(0)),
			AthleteName: htmlutil.Text(athleteLink),
			AthleteID:   ExtractAthleteID(athleteLink.AttrOr("href", "")),
			TeamName:    htmlutil.Text(teamLink),
			TeamSlug:    ExtractTeamSlug(teamLink.AttrOr("href", "")),
			Time:        htmlutil.Text(cells.Eq(5)),
		})
	})

	return Event{
		EventUID: id,
		Name:     eventName,
		Results:  results,
	}, true
}
