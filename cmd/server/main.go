package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/blackjack/config"
	"github.com/luca-patrignani/blackjack/discovery"
	"github.com/luca-patrignani/blackjack/network"
	"github.com/luca-patrignani/blackjack/server"
)

func main() {
	configPath := flag.String("config", "", "path of an optional config file")
	flag.Parse()

	cfg, err := config.LoadServer(*configPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, logger *slog.Logger) error {
	l, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Listen, err)
	}
	s := server.New(l, cfg.Name,
		server.WithLogger(logger),
		server.WithAcceptPoll(cfg.AcceptPoll),
		server.WithHandshakeTimeout(cfg.HandshakeTimeout),
		server.WithDealerPace(cfg.DealerPace),
		server.WithRoundPause(cfg.RoundPause),
	)
	defer s.Close()
	offer, err := s.Offer()
	if err != nil {
		return err
	}
	target, err := broadcastTarget(cfg.DiscoveryAddress)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Server started, listening on IP address %s port %d", network.LocalIP(), s.Port())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	announcer := &discovery.Announcer{
		Info:                         offer,
		Port:                         cfg.DiscoveryPort,
		Address:                      target,
		IntervalBetweenAnnouncements: cfg.DiscoveryInterval,
		Logger:                       logger,
	}
	go func() {
		if err := announcer.Run(ctx); err != nil {
			logger.Error("announcer stopped", "err", err)
		}
	}()

	if err := s.Serve(ctx); err != nil {
		return err
	}
	spinner, _ := pterm.DefaultSpinner.Start("Waiting for running sessions to finish ...")
	s.Wait()
	spinner.Success("All sessions finished")
	return nil
}

// broadcastTarget resolves the configured discovery address, where "auto"
// selects the broadcast address of the local interface's subnet.
func broadcastTarget(address string) (string, error) {
	if address != config.AutoAddress {
		return address, nil
	}
	subnet, err := network.SubnetOf(network.LocalIP())
	if err != nil {
		return "", err
	}
	broadcast, err := network.BroadcastAddress(subnet)
	if err != nil {
		return "", err
	}
	return broadcast.String(), nil
}
