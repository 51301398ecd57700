package tfrrs

import "errors"

var (
	// ErrNotFound means the page was fetched but its expected root
	// structure (title, results, roster) was absent.
	ErrNotFound = errors.New("tfrrs: entity not found")
	// ErrBadGender is returned for track meet requests without a
	// gender of "m" or "f".
	ErrBadGender = errors.New(`tfrrs: track meets require gender "m" or "f"`)
	// ErrBadSearchKind is returned for search kinds other than
	// athlete, team or meet.
	ErrBadSearchKind = errors.New("tfrrs: search kind must be athlete, team or meet")
)
