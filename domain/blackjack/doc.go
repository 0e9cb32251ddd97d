// Package blackjack implements the domain logic of a two-hand Blackjack table:
// cards, hand scoring, the bust estimator used by players, and the
// server-authoritative round state machine.
//
// # Core Types
//
// Card: a playing card with suit and rank.
//
// Hand: the ordered cards held by the player or the dealer. Its score is always
// derived from the cards, never stored.
//
// Round: drives one deal-through-settlement cycle against a Seat, drawing from a
// Shoe. The package has no network dependency; transports implement Seat.
//
// # Round Flow
//
// DealPlayer → DealerShowCard → PlayerTurn → DealerReveal → DealerAutoplay →
// Settle → End. A player bust settles the round immediately as a loss and the
// dealer never plays.
package blackjack
