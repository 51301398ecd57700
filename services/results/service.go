package results

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tfrrs-backend/lib/scrapers/tfrrs"
)

// Scraper is the slice of the tfrrs client the service needs; tests
// substitute it.
type Scraper interface {
	GetAthlete(ctx context.Context, id string) (tfrrs.AthleteProfile, error)
	GetMeet(ctx context.Context, id, sport, gender string) (tfrrs.Meet, error)
	GetTeam(ctx context.Context, sport, slug string) (tfrrs.TeamRoster, error)
	Search(ctx context.Context, kind tfrrs.SearchKind, query string) (tfrrs.SearchResults, error)
}

type Service struct {
	scraper Scraper
}

func NewService(scraper Scraper) Service {
	return Service{scraper: scraper}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, tfrrs.ErrNotFound):
		return "not_found"
	case errors.Is(err, tfrrs.ErrBadGender), errors.Is(err, tfrrs.ErrBadSearchKind):
		return "bad_request"
	}
	return "error"
}

func (s Service) GetAthlete(ctx context.Context, id string) (tfrrs.AthleteProfile, error) {
	start := time.Now()
	profile, err := s.scraper.GetAthlete(ctx, id)
	observeScrape("athlete", outcome(err), time.Since(start))
	if err != nil {
		slog.WarnContext(ctx, "athlete scrape failed", "id", id, "err", err)
		return tfrrs.AthleteProfile{}, err
	}
	return profile, nil
}

func (s Service) GetMeet(ctx context.Context, id, sport, gender string) (tfrrs.Meet, error) {
	start := time.Now()
	meet, err := s.scraper.GetMeet(ctx, id, sport, gender)
	observeScrape("meet", outcome(err), time.Since(start))
	if err != nil {
		slog.WarnContext(ctx, "meet scrape failed",
			"id", id, "sport", sport, "gender", gender, "err", err)
		return tfrrs.Meet{}, err
	}
	return meet, nil
}

func (s Service) GetTeam(ctx context.Context, sport, slug string) (tfrrs.TeamRoster, error) {
	start := time.Now()
	roster, err := s.scraper.GetTeam(ctx, sport, slug)
	observeScrape("team", outcome(err), time.Since(start))
	if err != nil {
		slog.WarnContext(ctx, "team scrape failed", "sport", sport, "slug", slug, "err", err)
		return tfrrs.TeamRoster{}, err
	}
	return roster, nil
}

func (s Service) Search(ctx context.Context, kind tfrrs.SearchKind, query string) (tfrrs.SearchResults, error) {
	start := time.Now()
	results, err := s.scraper.Search(ctx, kind, query)
	observeScrape("search", outcome(err), time.Since(start))
	if err != nil {
		slog.WarnContext(ctx, "search failed", "kind", string(kind), "err", err)
		return tfrrs.SearchResults{}, err
	}
	return results, nil
}
