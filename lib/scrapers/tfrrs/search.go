package tfrrs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tfrrs-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

type SearchKind string

const (
	SearchAthletes SearchKind = "athlete"
	SearchTeams    SearchKind = "team"
	SearchMeets    SearchKind = "meet"
)

// Search runs a site search for athletes, teams or meets. The search
// endpoint wants an anti-forgery token scraped from the home page and
// replayed with the query, so the token fetch must succeed first. Both
// requests run over a fresh single-use session so that concurrent
// searches cannot clobber each other's session cookie. Transport or
// precondition failures yield an empty result set, not an error; only
// an unknown kind is reported as one.
func (c *Client) Search(ctx context.Context, kind SearchKind, query string) (SearchResults, error) {
	ctx, span := tracer.Start(ctx, "client:Search")
	defer span.End()

	switch kind {
	case SearchAthletes, SearchTeams, SearchMeets:
	default:
		return SearchResults{}, fmt.Errorf("%w: %q", ErrBadSearchKind, kind)
	}

	session := c.newSearchSession()

	token, err := authenticityToken(ctx, session)
	if err != nil {
		slog.WarnContext(ctx, "aborting search: unable to fetch token", "err", err)
		return SearchResults{}, nil
	}

	form := map[string]string{
		"authenticity_token": token,
		"athlete":            "",
		"team":               "",
		"meet":               "",
	}
	form[string(kind)] = query

	res, err := session.R().
		SetContext(ctx).
		SetFormData(form).
		Post("/search.html")
	if err != nil || !res.IsSuccess() {
		slog.WarnContext(ctx, "search request failed",
			"kind", string(kind), "err", err)
		return SearchResults{}, nil
	}

	html := safeDecode(res.Body(), res.Header().Get("Content-Encoding"))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		slog.WarnContext(ctx, "search response unparseable", "err", err)
		return SearchResults{}, nil
	}

	var results SearchResults
	switch kind {
	case SearchAthletes:
		results.Athletes = parseAthleteHits(doc)
	case SearchTeams:
		results.Teams = parseTeamHits(doc)
	case SearchMeets:
		results.Meets = parseMeetHits(doc)
	}

	slog.DebugContext(ctx, "search complete",
		"kind", string(kind),
		"query", query,
		"hits", results.Count(),
	)
	return results, nil
}

// authenticityToken fetches the home page over the search session and
// scrapes the single-use CSRF token from its search form.
func authenticityToken(ctx context.Context, session *resty.Client) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, tokenTimeout)
	defer cancel()

	doc, err := getDocument(ctx, session, "/")
	if err != nil {
		return "", err
	}

	token, ok := doc.Find(`input[name="authenticity_token"]`).First().Attr("value")
	if !ok || token == "" {
		return "", fmt.Errorf("could not find authenticity_token on homepage")
	}
	return token, nil
}

func searchRows(doc *goquery.Document) *goquery.Selection {
	return doc.Find("#myTable tbody tr")
}

func parseAthleteHits(doc *goquery.Document) []AthleteHit {
	hits := []AthleteHit{}
	searchRows(doc).Each(func(_ int, row *goquery.Selection) {
		athleteCell := row.Find("td#col0 a").First()
		id := ExtractAthleteID(athleteCell.AttrOr("href", ""))
		if id == "" {
			return
		}

		teamCell := row.Find("td#col1 a").First()
		hits = append(hits, AthleteHit{
			Name:      htmlutil.Text(athleteCell),
			AthleteID: id,
			TeamName:  htmlutil.Text(teamCell),
			TeamSlug:  ExtractTeamSlug(teamCell.AttrOr("href", "")),
		})
	})
	return hits
}

func parseTeamHits(doc *goquery.Document) []TeamHit {
	hits := []TeamHit{}
	searchRows(doc).Each(func(_ int, row *goquery.Selection) {
		teamCell := row.Find("td#col0 a").First()
		slug := ExtractTeamSlug(teamCell.AttrOr("href", ""))
		if slug == "" {
			return
		}

		hits = append(hits, TeamHit{
			Name:   htmlutil.Text(teamCell),
			Slug:   slug,
			Sport:  htmlutil.Text(row.Find("td:nth-of-type(2)")),
			Gender: htmlutil.Text(row.Find("td:nth-of-type(3)")),
		})
	})
	return hits
}

func parseMeetHits(doc *goquery.Document) []MeetHit {
	hits := []MeetHit{}
	searchRows(doc).Each(func(_ int, row *goquery.Selection) {
		meetCell := row.Find("td#col0 a").First()
		id := extractGroup(searchMeetIdRegex, meetCell.AttrOr("href", ""))
		if id == "" {
			return
		}

		hits = append(hits, MeetHit{
			Name:   htmlutil.Text(meetCell),
			MeetID: id,
			Date:   htmlutil.Text(row.Find("td:nth-of-type(2)")),
			Sport:  htmlutil.Text(row.Find("td:nth-of-type(3)")),
		})
	})
	return hits
}
