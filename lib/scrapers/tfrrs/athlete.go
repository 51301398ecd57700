package tfrrs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tfrrs-backend/lib/htmlutil"
	"tfrrs-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// GetAthlete scrapes an athlete profile page.
func (c *Client) GetAthlete(ctx context.Context, id string) (AthleteProfile, error) {
	ctx, span := tracer.Start(ctx, "client:GetAthlete")
	defer span.End()

	doc, err := c.getDocument(ctx, fmt.Sprintf("/athletes/%s", id))
	if err != nil {
		return AthleteProfile{}, err
	}

	profile, ok := parseAthleteProfile(doc)
	if !ok {
		return AthleteProfile{}, ErrNotFound
	}

	slog.DebugContext(ctx, "scraped athlete",
		"athlete", profile.Name,
		"results", len(profile.Performances),
	)
	return profile, nil
}

// parseAthleteProfile extracts the whole profile. ok is false when the
// page has no title element, which is how the site renders unknown ids.
func parseAthleteProfile(doc *goquery.Document) (AthleteProfile, bool) {
	raw := htmlutil.Text(doc.Find("h3.panel-title.large-title").First())
	name, year := SplitNameAndYear(raw)
	if name == "" {
		return AthleteProfile{}, false
	}

	profile := AthleteProfile{
		Name:              name,
		ClassYear:         year,
		PreviousTeamSlugs: []string{},
		Performances:      []Performance{},
	}

	// the current team is the first team link whose text sits inside a
	// titled panel
	teamTitle := doc.Find("a[href*='/teams/'] h3.panel-title").First()
	if teamTitle.Length() > 0 {
		parent := teamTitle.ParentsFiltered("a[href]").First()
		slug := ExtractTeamSlug(parent.AttrOr("href", ""))
		if slug != "" {
			profile.TeamSlug = slug
			profile.TeamName = htmlutil.Text(teamTitle)
			profile.Gender = genderFromSlug(slug)
		}
	}

	doc.Find(".panel-second-title div.float-right a[href]").Each(
		func(_ int, a *goquery.Selection) {
			slug := ExtractTeamSlug(a.AttrOr("href", ""))
			if slug != "" {
				profile.PreviousTeamSlugs = append(profile.PreviousTeamSlugs, slug)
			}
		})

	doc.Find("div#meet-results table.table-hover").Each(
		func(_ int, table *goquery.Selection) {
			profile.Performances = append(
				profile.Performances,
				parsePerformanceTable(table)...,
			)
		})

	return profile, true
}

func genderFromSlug(slug string) string {
	slug = strings.ToLower(slug)
	switch {
	case strings.Contains(slug, "_m_"):
		return "Male"
	case strings.Contains(slug, "_f_"):
		return "Female"
	}
	return "Unknown"
}

// parsePerformanceTable extracts the non-relay results of one meet
// table on a profile page. The table header carries the meet metadata.
func parsePerformanceTable(table *goquery.Selection) []Performance {
	header := table.Find("thead")
	if header.Length() == 0 {
		return nil
	}

	meetLink := header.Find("a[href]").First()
	meetName := htmlutil.Text(meetLink)
	meetUrl := meetLink.AttrOr("href", "")
	meetType := "tf"
	if strings.Contains(meetUrl, "/xc/") {
		meetType = "xc"
	}
	meetDate := htmlutil.Text(header.Find("span").First())

	var results []Performance
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 3 {
			return
		}

		event := htmlutil.Text(cols.Eq(0))
		if event != "" && textutil.ContainsAnyFold(event, excludedEventKeywords) {
			return
		}

		place := htmlutil.Text(cols.Eq(2))
		round := ""
		if m := parenGroupRegex.FindStringSubmatch(place); m != nil {
			round = strings.TrimSpace(m[1])
			place = textutil.CollapseSpace(parenGroupRegex.ReplaceAllString(place, ""))
		}

		results = append(results, Performance{
			MeetType: meetType,
			MeetID:   ExtractMeetID(meetUrl),
			MeetName: meetName,
			Date:     meetDate,
			Event:    event,
			Mark:     htmlutil.Text(cols.Eq(1)),
			Place:    place,
			Round:    round,
		})
	})
	return results
}
