package tfrrs

import (
	"regexp"
	"strconv"
)

// Results cells carry an opaque class token encoding which round/heat a
// result set belongs to. Two shapes exist:
//
//	heat_<round>_<heat>_<eventUid>_<suffix>
//	round_<round>_<eventUid>_<suffix>
//
// The site emits one result set per round; only one of them is
// canonical. heat_ tokens are always authoritative. round_ tokens are
// authoritative only for round >= 4 (the merged finals listing of a
// combined heat page); lower rounds are per-heat duplicates that the
// caller must discard wholesale.
var (
	heatMarkerRegex  = regexp.MustCompile(`^heat_(\d+)_(\d+)_(\d+)_\d+`)
	roundMarkerRegex = regexp.MustCompile(`^round_(\d+)_(\d+)_\d+`)
)

var roundLabels = map[int]string{
	4: "finals",
	3: "semifinals",
	2: "quarterfinals",
	1: "preliminaries",
}

// ParseEventMarker classifies a marker token. heat is 0 when the token
// carries no heat number. valid=false means the owning event result set
// is a non-canonical duplicate (or the token is unrecognizable) and
// must be dropped.
func ParseEventMarker(token string) (round string, heat int, eventUid string, valid bool) {
	if token == "" {
		return "", 0, "", false
	}

	if m := heatMarkerRegex.FindStringSubmatch(token); m != nil {
		roundNum, _ := strconv.Atoi(m[1])
		heat, _ = strconv.Atoi(m[2])
		return roundLabels[roundNum], heat, m[3], true
	}
	if m := roundMarkerRegex.FindStringSubmatch(token); m != nil {
		roundNum, _ := strconv.Atoi(m[1])
		if roundNum < 4 {
			return "", 0, m[2], false
		}
		return "finals", 1, m[2], true
	}
	return "", 0, "", false
}
