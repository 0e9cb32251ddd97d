package client

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"github.com/luca-patrignani/blackjack/discovery"
	"github.com/luca-patrignani/blackjack/protocol"
)

// Server is a table found on the network.
type Server struct {
	Name string
	// Addr is the TCP address of the table, host:port.
	Addr string
}

// Discover waits on l for the first valid Offer. Datagrams that are not
// offers are dropped.
func Discover(ctx context.Context, l *discovery.Listener, logger *slog.Logger) (Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	for {
		entry, err := l.Next(ctx)
		if err != nil {
			return Server{}, err
		}
		offer, err := protocol.DecodeOffer(entry.Info)
		if err != nil {
			logger.Debug("dropping datagram", "from", entry.Addr.String(), "err", err)
			continue
		}
		addr := net.JoinHostPort(entry.Addr.IP.String(), strconv.Itoa(int(offer.Port)))
		logger.Debug("offer received", "name", offer.ServerName, "addr", addr)
		return Server{Name: offer.ServerName, Addr: addr}, nil
	}
}
