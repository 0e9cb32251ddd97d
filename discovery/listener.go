package discovery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// Listener receives announcements sent to a UDP port.
type Listener struct {
	// Poll bounds each blocking read so that Next notices cancellation.
	Poll time.Duration
	conn *net.UDPConn
}

// Listen binds port on all interfaces, sharing it with other listeners on the
// same host when the platform allows. Port 0 picks a free port.
func Listen(port uint16) (*Listener, error) {
	lc := net.ListenConfig{Control: reuseControl}
	pc, err := lc.ListenPacket(context.Background(), "udp4", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen for announcements on port %d: %w", port, err)
	}
	return &Listener{Poll: DefaultPoll, conn: pc.(*net.UDPConn)}, nil
}

// Port returns the bound UDP port.
func (l *Listener) Port() uint16 {
	return uint16(l.conn.LocalAddr().(*net.UDPAddr).Port)
}

// Next blocks until an announcement arrives or ctx is done.
func (l *Listener) Next(ctx context.Context) (Entry, error) {
	poll := l.Poll
	if poll <= 0 {
		poll = DefaultPoll
	}
	buffer := make([]byte, maxDatagram)
	for {
		if err := ctx.Err(); err != nil {
			return Entry{}, err
		}
		if err := l.conn.SetReadDeadline(time.Now().Add(poll)); err != nil {
			return Entry{}, err
		}
		n, addr, err := l.conn.ReadFromUDP(buffer)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return Entry{}, err
		}
		info := make([]byte, n)
		copy(info, buffer[:n])
		return Entry{Info: info, Addr: addr, Time: time.Now()}, nil
	}
}

// Close releases the socket. A blocked Next returns net.ErrClosed.
func (l *Listener) Close() error {
	return l.conn.Close()
}
