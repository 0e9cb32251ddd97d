// Package client plays Blackjack sessions against a server.
//
// Discover waits for an Offer broadcast; Driver then runs a whole session
// over the resulting connection, leaving all presentation and decisions to
// a UI implementation.
package client
