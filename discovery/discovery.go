package discovery

import (
	"net"
	"time"
)

const (
	// BroadcastAddress is the limited broadcast address used by default.
	BroadcastAddress = "255.255.255.255"
	// DefaultInterval is the default pause between two announcements.
	DefaultInterval = time.Second
	// DefaultPoll bounds how long a Listener blocks before checking its context.
	DefaultPoll = time.Second

	maxDatagram = 1024
)

// Entry represents a single announcement received from a peer.
// Info contains the payload, Addr the sender and Time is when it was received.
type Entry struct {
	Info []byte
	Addr *net.UDPAddr
	Time time.Time
}
