package tfrrs

import (
	"regexp"
	"strings"

	"tfrrs-backend/lib/htmlutil"
	"tfrrs-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// track pages hide their alternate time columns with inline styles like
// `.col_123 { display: none; }`
var hiddenClassRegex = regexp.MustCompile(`\.([a-zA-Z0-9_-]+)\s*\{[^}]*display\s*:\s*none`)

func parseTrackMeet(doc *goquery.Document, gender string) Meet {
	name, date, location := parseMeetHeader(doc)
	hidden := hiddenColumnClasses(doc)

	events := []Event{}
	doc.Find("div[class*='col-lg-']").Each(func(_ int, div *goquery.Selection) {
		if div.Find(".custom-table-title").Length() == 0 {
			return
		}
		ev, ok := parseTrackEvent(div, hidden)
		if !ok {
			return
		}
		ev.Gender = gender
		events = append(events, ev)
	})

	return Meet{
		Type:     "tf",
		Name:     name,
		Date:     date,
		Location: location,
		Events:   events,
	}
}

func hiddenColumnClasses(doc *goquery.Document) map[string]bool {
	hidden := map[string]bool{}
	doc.Find("div.panel-body style").Each(func(_ int, style *goquery.Selection) {
		for _, m := range hiddenClassRegex.FindAllStringSubmatch(style.Text(), -1) {
			hidden[m[1]] = true
		}
	})
	return hidden
}

// parseTrackEvent extracts one event block. ok is false for denylisted
// events, blocks without a results table, and non-canonical result sets
// (rows whose marker the classifier rejects discard the whole event,
// not just the row, since they are per-heat duplicates of a merged
// listing).
func parseTrackEvent(div *goquery.Selection, hidden map[string]bool) (Event, bool) {
	title := div.Find(".custom-table-title h3, .custom-table-title h5").First()
	if title.Length() == 0 {
		return Event{}, false
	}
	eventName, _, _ := strings.Cut(strings.TrimSpace(title.Text()), "\n")
	eventName = textutil.CollapseSpace(eventName)

	if eventName != "" && textutil.ContainsAnyFold(eventName, excludedTrackEventKeywords) {
		return Event{}, false
	}

	wind := htmlutil.Text(div.Find(".custom-table-title .wind-text").First())

	table := div.Find("table.table-hover, table.table-striped").First()
	if table.Length() == 0 {
		return Event{}, false
	}

	ev := Event{
		Name:    eventName,
		Wind:    wind,
		Results: []Placement{},
	}
	canonical := true
	table.Find("tbody tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return true
		}

		athleteLink := cells.Eq(1).Find("a").First()
		teamLink := cells.Eq(3).Find("a").First()

		clock, marker := visibleTimeCell(cells, hidden)
		round, heat, uid, valid := ParseEventMarker(marker)
		if !valid {
			canonical = false
			return false
		}
		ev.Round = round
		ev.EventUID = uid
		if heat > 0 {
			h := heat
			ev.Heat = &h
		}

		ev.Results = append(ev.Results, Placement{
			Place:       htmlutil.Text(cells.Eq(0)),
			AthleteName: htmlutil.Text(athleteLink),
			AthleteID:   ExtractAthleteID(athleteLink.AttrOr("href", "")),
			Year:        htmlutil.Text(cells.Eq(2)),
			TeamName:    htmlutil.Text(teamLink),
			TeamSlug:    ExtractTeamSlug(teamLink.AttrOr("href", "")),
			Time:        clock,
			Marker:      marker,
		})
		return true
	})
	if !canonical {
		return Event{}, false
	}

	return ev, true
}

// visibleTimeCell scans the cells after the team column for the first
// visible one carrying a non-empty time; its first class is the marker
// token.
func visibleTimeCell(cells *goquery.Selection, hidden map[string]bool) (string, string) {
	for i := 4; i < cells.Length(); i++ {
		td := cells.Eq(i)
		classes := strings.Fields(td.AttrOr("class", ""))
		if len(classes) == 0 || anyHidden(classes, hidden) {
			continue
		}
		if val := htmlutil.Text(td); val != "" {
			return val, classes[0]
		}
	}
	return "", ""
}

func anyHidden(classes []string, hidden map[string]bool) bool {
	for _, c := range classes {
		if hidden[c] {
			return true
		}
	}
	return false
}
