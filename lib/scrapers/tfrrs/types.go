package tfrrs

// Records produced by the extractors. Everything is built fresh per
// scrape and owned by the caller; string fields that may be absent on
// the source page are empty rather than pointers, except where a real
// absent/zero distinction matters (heat numbers).

type AthleteProfile struct {
	Name              string        `json:"athlete_name"`
	ClassYear         string        `json:"class_year,omitempty"`
	TeamName          string        `json:"current_team_name,omitempty"`
	TeamSlug          string        `json:"current_team_slug,omitempty"`
	Gender            string        `json:"gender,omitempty"`
	PreviousTeamSlugs []string      `json:"previous_team_slugs"`
	Performances      []Performance `json:"results"`
}

type Performance struct {
	MeetType string `json:"meet_type"`
	MeetID   string `json:"meet_id,omitempty"`
	MeetName string `json:"meet_name,omitempty"`
	Date     string `json:"date,omitempty"`
	Event    string `json:"event"`
	Mark     string `json:"mark"`
	Place    string `json:"place"`
	Round    string `json:"round,omitempty"`
}

type Meet struct {
	Type     string  `json:"meet_type"`
	Name     string  `json:"meet_name,omitempty"`
	Date     string  `json:"meet_date,omitempty"`
	Location string  `json:"meet_location,omitempty"`
	Events   []Event `json:"events"`
}

type Event struct {
	EventUID string      `json:"event_id,omitempty"`
	Name     string      `json:"event_name,omitempty"`
	Gender   string      `json:"gender,omitempty"`
	Round    string      `json:"round,omitempty"`
	Heat     *int        `json:"heat,omitempty"`
	Wind     string      `json:"wind,omitempty"`
	Results  []Placement `json:"results"`
}

type Placement struct {
	Place       string `json:"place"`
	AthleteName string `json:"athlete_name,omitempty"`
	AthleteID   string `json:"athlete_id,omitempty"`
	Year        string `json:"year,omitempty"`
	TeamName    string `json:"team_name,omitempty"`
	TeamSlug    string `json:"team_slug,omitempty"`
	Time        string `json:"time"`
	// raw per-cell marker the time was read from, kept for traceability
	Marker string `json:"marker,omitempty"`
}

type TeamRoster struct {
	Name       string        `json:"team_name,omitempty"`
	Sport      string        `json:"sport_type,omitempty"`
	Conference string        `json:"conference,omitempty"`
	Region     string        `json:"region,omitempty"`
	Roster     []RosterEntry `json:"roster"`
}

type RosterEntry struct {
	Name      string `json:"athlete_name"`
	AthleteID string `json:"athlete_id,omitempty"`
	Year      string `json:"year,omitempty"`
}

type AthleteHit struct {
	Name      string `json:"athlete_name"`
	AthleteID string `json:"athlete_id"`
	TeamName  string `json:"team_name,omitempty"`
	TeamSlug  string `json:"team_slug,omitempty"`
}

type TeamHit struct {
	Name   string `json:"team_name"`
	Slug   string `json:"team_slug"`
	Sport  string `json:"sport,omitempty"`
	Gender string `json:"gender,omitempty"`
}

type MeetHit struct {
	Name   string `json:"meet_name"`
	MeetID string `json:"meet_id"`
	Date   string `json:"date,omitempty"`
	Sport  string `json:"sport,omitempty"`
}

// SearchResults holds the outcome of one search; only the slice matching
// the requested kind is populated.
type SearchResults struct {
	Athletes []AthleteHit `json:"athletes,omitempty"`
	Teams    []TeamHit    `json:"teams,omitempty"`
	Meets    []MeetHit    `json:"meets,omitempty"`
}

func (r SearchResults) Count() int {
	return len(r.Athletes) + len(r.Teams) + len(r.Meets)
}
