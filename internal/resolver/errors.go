package resolver

import "errors"

var (
	// ErrUnrecognizedReference means the input is neither a match id nor a supported URL.
	ErrUnrecognizedReference = errors.New("unrecognized match reference")
	// ErrIdentityNotFound means neither identity lookup found the player.
	ErrIdentityNotFound = errors.New("player not found")
	// ErrNoRecentMatches means the player has no match history.
	ErrNoRecentMatches = errors.New("player has no recent matches")
	// ErrNoMatchingTimestamp means no recent match had a usable start time.
	ErrNoMatchingTimestamp = errors.New("no recent match near the given timestamp")
)
