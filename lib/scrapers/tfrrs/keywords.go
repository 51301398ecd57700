package tfrrs

// Keyword denylists for event names. Relay, para, field and combined
// events carry marks that aren't single clock times, so they are
// excluded everywhere. The "x" entry catches "4x400"-style names.
var excludedEventKeywords = []string{
	"relay", "x", "para", "jump", "vault", "shot", "discus",
	"hammer", "javelin", "weight", "athlon",
}

// Track meet pages additionally list distance medley / sprint medley
// relays under their abbreviations.
var excludedTrackEventKeywords = append(
	[]string{"dmr", "smr"},
	excludedEventKeywords...,
)
