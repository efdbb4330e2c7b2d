package game

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDeck         = errors.New("deck is empty")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidVisibility = errors.New("invalid dealer visibility")
	ErrInvalidRules      = errors.New("invalid rules")
)

// ErrMatchOver is returned by Start once the match has been decided.
var ErrMatchOver = fmt.Errorf("%w: match is over", ErrInvalidTransition)
