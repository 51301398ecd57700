package tfrrs

import "regexp"

var (
	athleteIdRegex = regexp.MustCompile(`/athletes/(\d+)/`)
	teamSlugRegex  = regexp.MustCompile(`/teams/(?:tf|xc)/([^/]+)\.html`)
	meetIdRegex    = regexp.MustCompile(`/results/(?:xc/)?(\d+)`)
	// search result meet links always carry a trailing slash after the id
	searchMeetIdRegex = regexp.MustCompile(`/results/(?:xc/)?(\d+)/`)
)

func extractGroup(re *regexp.Regexp, url string) string {
	if url == "" {
		return ""
	}
	m := re.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractAthleteID pulls the numeric athlete id out of a profile URL
// like /athletes/7929458/. Returns "" for absent or non-matching URLs.
func ExtractAthleteID(url string) string {
	return extractGroup(athleteIdRegex, url)
}

// ExtractTeamSlug pulls the team slug out of a URL like
// /teams/tf/OR_college_m_Oregon.html.
func ExtractTeamSlug(url string) string {
	return extractGroup(teamSlugRegex, url)
}

// ExtractMeetID pulls the numeric meet id out of a results URL,
// tolerating the /results/xc/ variant.
func ExtractMeetID(url string) string {
	return extractGroup(meetIdRegex, url)
}
