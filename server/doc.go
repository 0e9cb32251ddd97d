// Package server hosts Blackjack sessions over TCP.
//
// A Server accepts connections on a listener, reads one Request frame from
// each, and then plays the requested number of rounds with that client in a
// goroutine of its own. The dealer side of every round is driven by
// blackjack.Round; this package only adapts the connection to a
// blackjack.Seat and keeps sessions apart, so that a failing client never
// affects another one or the accept loop.
package server
