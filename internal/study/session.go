// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package study

import (
	"fmt"

	"github.com/MKhiriev/go-flashcards/models"
)

// State is the coarse phase of a session.
type State int

const (
	// Ready means a card is on screen and accepts input.
	Ready State = iota
	// Complete means the user advanced past the last card.
	Complete
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session walks an ordered snapshot of cards.
//
// Invariants: 0 <= index < len(cards); flipped is false right after every
// index change; once complete, index == len(cards)-1.
//
// A Session is not safe for concurrent use.
type Session struct {
	cards    []models.Card
	index    int
	flipped  bool
	complete bool
}

// NewSession copies cards and positions the session on the first one.
// The caller's slice may be modified afterwards without affecting the session.
func NewSession(cards []models.Card) (*Session, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}

	snapshot := make([]models.Card, len(cards))
	copy(snapshot, cards)

	return &Session{cards: snapshot}, nil
}

// Flip toggles between term and definition of the current card.
func (s *Session) Flip() {
	if s.complete {
		return
	}
	s.flipped = !s.flipped
}

// Next moves to the following card, or completes the session on the last one.
func (s *Session) Next() {
	if s.complete {
		return
	}
	if s.index < len(s.cards)-1 {
		s.index++
		s.flipped = false
		return
	}
	s.complete = true
}

// Previous moves to the preceding card. It is a no-op on the first card.
func (s *Session) Previous() {
	if s.complete || s.index == 0 {
		return
	}
	s.index--
	s.flipped = false
}

// Restart returns to the first card, term side up. Allowed from any state.
func (s *Session) Restart() {
	s.index = 0
	s.flipped = false
	s.complete = false
}

// Current returns the card at the current index.
func (s *Session) Current() models.Card {
	return s.cards[s.index]
}

// Index returns the zero-based position of the current card.
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of cards in the session.
func (s *Session) Len() int {
	return len(s.cards)
}

// Flipped reports whether the definition side is showing.
func (s *Session) Flipped() bool {
	return s.flipped
}

// Complete reports whether the session has finished.
func (s *Session) Complete() bool {
	return s.complete
}

// State returns Ready or Complete.
func (s *Session) State() State {
	if s.complete {
		return Complete
	}
	return Ready
}

// Progress returns (index+1)/len*100.
func (s *Session) Progress() float64 {
	return float64(s.index+1) / float64(len(s.cards)) * 100
}

// Position returns the human-readable position, e.g. "2 / 3".
func (s *Session) Position() string {
	return fmt.Sprintf("%d / %d", s.index+1, len(s.cards))
}
