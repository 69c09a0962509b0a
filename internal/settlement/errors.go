package settlement

import "errors"

// Validation errors fail the whole call before any write. Callers branch
// with errors.Is to map them onto user-facing messages.
var (
	ErrEmptyRoster      = errors.New("both teams need at least one player")
	ErrRosterOverlap    = errors.New("a player cannot appear on both teams")
	ErrDuplicatePlayer  = errors.New("a player cannot appear twice on the same team")
	ErrUnknownPlayer    = errors.New("could not fetch all player profiles")
	ErrUnknownCourt     = errors.New("court not found")
	ErrUnsupportedSport = errors.New("unsupported sport")
	ErrInvalidResult    = errors.New("result must be team_a, team_b or draw")

	// ErrMatchInsert wraps a rejected match-record insert. No rating or
	// participant writes have happened when it is returned.
	ErrMatchInsert = errors.New("failed to create match record")
)
