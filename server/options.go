package server

import (
	"log/slog"
	"time"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

type option func(*Server)

// WithLogger sets the logger sessions derive their loggers from.
func WithLogger(logger *slog.Logger) option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAcceptPoll bounds how long Serve blocks in Accept before checking its context.
func WithAcceptPoll(poll time.Duration) option {
	return func(s *Server) {
		s.acceptPoll = poll
	}
}

// WithHandshakeTimeout bounds the wait for the Request frame. Zero disables it.
func WithHandshakeTimeout(timeout time.Duration) option {
	return func(s *Server) {
		s.handshakeTimeout = timeout
	}
}

// WithDealerPace sets the pause before each dealer draw.
func WithDealerPace(pace time.Duration) option {
	return func(s *Server) {
		s.dealerPace = pace
	}
}

// WithRoundPause sets the pause between two rounds of a session.
func WithRoundPause(pause time.Duration) option {
	return func(s *Server) {
		s.roundPause = pause
	}
}

// WithShoe replaces the source of a fresh shoe for every round.
func WithShoe(newShoe func() blackjack.Shoe) option {
	return func(s *Server) {
		s.newShoe = newShoe
	}
}
