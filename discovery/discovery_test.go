package discovery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestAnnounceAndListen(t *testing.T) {
	l, err := Listen(0)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Poll = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a := &Announcer{
		Info:                         []byte("table-1"),
		Port:                         l.Port(),
		Address:                      "127.0.0.1",
		IntervalBetweenAnnouncements: 50 * time.Millisecond,
	}
	fatal := make(chan error, 1)
	go func() {
		fatal <- a.Run(ctx)
	}()

	readCtx, readCancel := context.WithTimeout(ctx, 5*time.Second)
	defer readCancel()
	for i := range 3 {
		entry, err := l.Next(readCtx)
		if err != nil {
			t.Fatalf("announcement %d: %v", i, err)
		}
		if !bytes.Equal(entry.Info, a.Info) {
			t.Fatalf("expected %q, got %q", a.Info, entry.Info)
		}
		if entry.Addr == nil || !entry.Addr.IP.IsLoopback() {
			t.Fatalf("unexpected sender %v", entry.Addr)
		}
		if time.Since(entry.Time) < 0 {
			t.Fatal("time out of clock")
		}
	}
	cancel()
	select {
	case err := <-fatal:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("announcer did not stop after cancel")
	}
}

func TestNextHonoursContext(t *testing.T) {
	l, err := Listen(0)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Poll = 20 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err = l.Next(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("Next did not return promptly")
	}
}

func TestNextAfterClose(t *testing.T) {
	l, err := Listen(0)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Next(context.Background()); err == nil {
		t.Fatal("expected an error from a closed listener")
	}
}

func TestAnnouncerBadAddress(t *testing.T) {
	a := &Announcer{Address: "not an address", Port: 1}
	if err := a.Run(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
}

func TestManyAnnouncers(t *testing.T) {
	n := 3
	l, err := Listen(0)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for i := range n {
		a := &Announcer{
			Info:                         []byte(fmt.Sprint(i)),
			Port:                         l.Port(),
			Address:                      "127.0.0.1",
			IntervalBetweenAnnouncements: 30 * time.Millisecond,
		}
		go a.Run(ctx)
	}
	readCtx, readCancel := context.WithTimeout(ctx, 5*time.Second)
	defer readCancel()
	set := make(map[string]struct{})
	for len(set) < n {
		entry, err := l.Next(readCtx)
		if err != nil {
			t.Fatalf("found %d of %d announcers: %v", len(set), n, err)
		}
		set[string(entry.Info)] = struct{}{}
	}
}
