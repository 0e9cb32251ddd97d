package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"
)

// Announcer broadcasts Info to Address:Port every IntervalBetweenAnnouncements.
// Zero values select BroadcastAddress and DefaultInterval.
type Announcer struct {
	Info                         []byte
	Port                         uint16
	Address                      string
	IntervalBetweenAnnouncements time.Duration
	Logger                       *slog.Logger
}

// Run sends one announcement immediately and then one per interval until ctx
// is done. It returns an error only if the socket cannot be set up.
func (a *Announcer) Run(ctx context.Context) error {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	address := a.Address
	if address == "" {
		address = BroadcastAddress
	}
	interval := a.IntervalBetweenAnnouncements
	if interval <= 0 {
		interval = DefaultInterval
	}
	dst, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(address, fmt.Sprint(a.Port)))
	if err != nil {
		return fmt.Errorf("resolve announce address: %w", err)
	}
	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return fmt.Errorf("open announce socket: %w", err)
	}
	defer conn.Close()

	logger.Info("announcing", "to", dst.String(), "every", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := conn.WriteToUDP(a.Info, dst); err != nil {
			logger.Warn("announcement failed", "to", dst.String(), "err", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
