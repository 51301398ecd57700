package tfrrs

import (
	"context"
	"fmt"
	"log/slog"

	"tfrrs-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// GetTeam scrapes a team page. sport is the URL path segment ("tf" or
// "xc"); the returned roster may be empty when the page has no roster
// table.
func (c *Client) GetTeam(ctx context.Context, sport, slug string) (TeamRoster, error) {
	ctx, span := tracer.Start(ctx, "client:GetTeam")
	defer span.End()

	doc, err := c.getDocument(ctx, fmt.Sprintf("/teams/%s/%s.html", sport, slug))
	if err != nil {
		return TeamRoster{}, err
	}

	roster, ok := parseTeamRoster(doc, sport)
	if !ok {
		return TeamRoster{}, ErrNotFound
	}

	slog.DebugContext(ctx, "scraped team",
		"team", roster.Name,
		"sport", roster.Sport,
		"athletes", len(roster.Roster),
	)
	return roster, nil
}

func parseTeamRoster(doc *goquery.Document, sport string) (TeamRoster, bool) {
	name := htmlutil.Text(doc.Find("h3.panel-title.large-title, h3.panel-title").First())
	if name == "" {
		return TeamRoster{}, false
	}

	roster := TeamRoster{
		Name:   name,
		Sport:  sport,
		Roster: []RosterEntry{},
	}

	leagues := htmlutil.Anchors(doc.Find(".panel-second-title a[href*='/leagues/']"))
	if len(leagues) >= 1 {
		roster.Conference = leagues[0].Name
	}
	if len(leagues) >= 2 {
		roster.Region = leagues[1].Name
	}

	// a missing roster table still yields a valid (empty) roster
	table := doc.Find("table.tablesaw").First()
	if table.Length() == 0 {
		return roster, true
	}

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		nameCell := cells.Eq(0)
		athleteName := htmlutil.Text(nameCell)
		athleteId := ""
		if link := nameCell.Find("a").First(); link.Length() > 0 {
			athleteName = htmlutil.Text(link)
			athleteId = ExtractAthleteID(link.AttrOr("href", ""))
		}

		roster.Roster = append(roster.Roster, RosterEntry{
			Name:      athleteName,
			AthleteID: athleteId,
			Year:      htmlutil.Text(cells.Eq(1)),
		})
	})

	return roster, true
}
