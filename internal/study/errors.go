package study

import "errors"

// ErrEmptyDeck is returned by NewSession when the deck has no cards.
var ErrEmptyDeck = errors.New("deck has no cards to study")
