package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/protocol"
)

// Server is a Blackjack dealer accepting any number of concurrent sessions.
// Name and the listening port are fixed at construction and only read afterwards.
type Server struct {
	Name string

	listener         net.Listener
	logger           *slog.Logger
	acceptPoll       time.Duration
	handshakeTimeout time.Duration
	dealerPace       time.Duration
	roundPause       time.Duration
	newShoe          func() blackjack.Shoe
	sessions         sync.WaitGroup
}

type deadliner interface {
	SetDeadline(t time.Time) error
}

// New returns a server that will accept sessions on l once Serve is called.
func New(l net.Listener, name string, opts ...option) *Server {
	s := &Server{
		Name:             name,
		listener:         l,
		logger:           slog.Default(),
		acceptPoll:       time.Second,
		handshakeTimeout: 10 * time.Second,
		dealerPace:       500 * time.Millisecond,
		roundPause:       time.Second,
		newShoe: func() blackjack.Shoe {
			return blackjack.NewDeck()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Addr returns the listening address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Port returns the TCP port advertised in offers.
func (s *Server) Port() uint16 {
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return uint16(addr.Port)
	}
	return 0
}

// Offer returns the encoded Offer frame announcing this server.
func (s *Server) Offer() ([]byte, error) {
	return protocol.Offer{Port: s.Port(), ServerName: s.Name}.MarshalBinary()
}

// Serve accepts connections until ctx is done or the listener is closed.
// Sessions already started keep running; use Wait to block until they end.
func (s *Server) Serve(ctx context.Context) error {
	dl, canPoll := s.listener.(deadliner)
	s.logger.Info("serving", "name", s.Name, "addr", s.Addr().String())
	for {
		if ctx.Err() != nil {
			return nil
		}
		if canPoll {
			if err := dl.SetDeadline(time.Now().Add(s.acceptPoll)); err != nil {
				return fmt.Errorf("set accept deadline: %w", err)
			}
		}
		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.sessions.Add(1)
		go func() {
			defer s.sessions.Done()
			s.handle(conn)
		}()
	}
}

// Wait blocks until every started session has finished.
func (s *Server) Wait() {
	s.sessions.Wait()
}

// Close stops accepting connections. Running sessions are not interrupted.
func (s *Server) Close() error {
	return s.listener.Close()
}
