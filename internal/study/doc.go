// Package study implements the client-side study session: a pure state
// machine over a snapshot of a deck's cards.
//
// A session starts at the first card with its term showing. The user flips a
// card to reveal the definition, moves forward and backward, and completes the
// session by advancing past the last card. Complete is terminal until Restart.
//
// Sessions never perform I/O; loading the cards is the caller's job.
package study
