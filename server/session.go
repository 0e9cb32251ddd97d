package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/network"
	"github.com/luca-patrignani/blackjack/protocol"
)

// handle runs one session to completion and releases the connection.
func (s *Server) handle(conn net.Conn) {
	logger := s.logger.With("remote", conn.RemoteAddr().String())
	defer func() {
		if r := recover(); r != nil {
			logger.Error("session panicked", "panic", r)
		}
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			logger.Debug("close connection", "err", err)
		}
	}()

	c := protocol.NewConn(conn)
	req, err := s.handshake(conn, c)
	if err != nil {
		logger.Warn("rejected connection", "err", err)
		return
	}
	logger = logger.With("team", req.TeamName)
	logger.Info("team joined", "rounds", req.Rounds)

	wins := 0
	for round := 1; round <= int(req.Rounds); round++ {
		result, err := s.playRound(c, logger.With("round", round))
		if err != nil {
			if network.IsConnectionError(err) || errors.Is(err, protocol.ErrConnectionLost) {
				logger.Info("team left", "round", round, "err", err)
			} else {
				logger.Warn("session aborted", "round", round, "err", err)
			}
			return
		}
		if result == blackjack.Win {
			wins++
		}
		if round < int(req.Rounds) && s.roundPause > 0 {
			time.Sleep(s.roundPause)
		}
	}
	logger.Info("session over", "rounds", req.Rounds, "wins", wins)
}

func (s *Server) handshake(conn net.Conn, c *protocol.Conn) (protocol.Request, error) {
	if s.handshakeTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.handshakeTimeout)); err != nil {
			return protocol.Request{}, err
		}
	}
	req, err := c.ReadRequest()
	if err != nil {
		return protocol.Request{}, err
	}
	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		return protocol.Request{}, err
	}
	return req, nil
}

func (s *Server) playRound(c *protocol.Conn, logger *slog.Logger) (blackjack.Result, error) {
	r := blackjack.NewRound(s.newShoe())
	r.Pace = s.dealerPace
	if err := r.Play(seat{conn: c, logger: logger}); err != nil {
		return blackjack.NotOver, fmt.Errorf("round: %w", err)
	}
	logger.Info("round settled",
		"player", r.Player.Score(),
		"dealer", r.Dealer.Score(),
		"result", r.Result.String(),
	)
	return r.Result, nil
}

// seat adapts a client connection to the dealer's view of a player.
type seat struct {
	conn   *protocol.Conn
	logger *slog.Logger
}

func (s seat) Deal(c blackjack.Card, result blackjack.Result) error {
	s.logger.Debug("deal", "card", c.Name(), "result", result.String())
	return s.conn.WriteServerPayload(protocol.NewServerPayload(c, result))
}

func (s seat) Decide() (blackjack.Decision, error) {
	p, err := s.conn.ReadClientPayload()
	if err != nil {
		return "", err
	}
	switch p.Decision {
	case blackjack.Hit, blackjack.Stand:
		s.logger.Debug("decision", "decision", string(p.Decision))
	default:
		s.logger.Warn("ignoring unknown decision", "decision", string(p.Decision))
	}
	return p.Decision, nil
}
