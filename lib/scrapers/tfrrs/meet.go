package tfrrs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tfrrs-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// GetMeet scrapes every event result of a meet. sport is "tf" or "xc";
// track meets additionally need a gender of "m" or "f". Cross country
// results pages are not gender partitioned, but the site still wants a
// gender segment in the URL, so those are always fetched as /m.
func (c *Client) GetMeet(ctx context.Context, id, sport, gender string) (Meet, error) {
	ctx, span := tracer.Start(ctx, "client:GetMeet")
	defer span.End()

	var path string
	if sport == "xc" {
		path = fmt.Sprintf("/results/xc/%s/m", id)
	} else {
		if gender != "m" && gender != "f" {
			return Meet{}, ErrBadGender
		}
		path = fmt.Sprintf("/results/%s/%s/", id, gender)
	}

	doc, err := c.getDocument(ctx, path)
	if err != nil {
		return Meet{}, err
	}

	meet, ok := parseMeet(doc, path)
	if !ok || (meet.Name == "" && len(meet.Events) == 0) {
		return Meet{}, ErrNotFound
	}

	slog.DebugContext(ctx, "scraped meet",
		"meet", meet.Name,
		"type", meet.Type,
		"events", len(meet.Events),
	)
	return meet, nil
}

// parseMeet dispatches on the URL shape: /xc/ pages are cross country,
// /m/ and /f/ pages are track & field for that gender. Anything else is
// unclassifiable.
func parseMeet(doc *goquery.Document, url string) (Meet, bool) {
	switch {
	case strings.Contains(url, "/xc/"):
		return parseCrossCountryMeet(doc), true
	case strings.Contains(url, "/m/"):
		return parseTrackMeet(doc, "m"), true
	case strings.Contains(url, "/f/"):
		return parseTrackMeet(doc, "f"), true
	}
	return Meet{}, false
}

// shared header layout of both meet page flavors
func parseMeetHeader(doc *goquery.Document) (name, date, location string) {
	name = htmlutil.Text(doc.Find("h3.panel-title").First())
	meta := doc.Find("div.panel-heading-normal-text.inline-block")
	if meta.Length() >= 1 {
		date = htmlutil.Text(meta.Eq(0))
	}
	if meta.Length() >= 2 {
		location = htmlutil.Text(meta.Eq(1))
	}
	return name, date, location
}
