// Package discovery provides a lightweight UDP broadcast service discovery
// mechanism.
//
// An Announcer periodically sends an opaque payload to a broadcast address,
// and a Listener receives those payloads on a shared port. Typical usage:
//
//	a := &discovery.Announcer{
//		Info:                         offer,
//		Port:                         13122,
//		IntervalBetweenAnnouncements: time.Second,
//	}
//	go a.Run(ctx)
//
//	l, err := discovery.Listen(13122)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer l.Close()
//	entry, err := l.Next(ctx)
//
// Behavior:
//   - Announcements go to 255.255.255.255 unless Address is set.
//   - Several listeners on one host may bind the same port where the platform
//     supports address reuse.
//   - Send failures are logged and retried on the next tick.
//   - The package does not interpret payloads; decoding is up to the caller.
package discovery
