package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/blackjack/client"
	"github.com/luca-patrignani/blackjack/config"
	"github.com/luca-patrignani/blackjack/discovery"
	"github.com/luca-patrignani/blackjack/network"
)

func main() {
	configPath := flag.String("config", "", "path of an optional config file")
	flag.Parse()

	cfg, err := config.LoadClient(*configPath)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	team := strings.TrimSpace(cfg.Team)
	if team == "" {
		team, _ = pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your team name").Show()
		team = strings.TrimSpace(team)
		pterm.Println()
	}
	pterm.Info.Printfln("Your team: %s", pterm.LightCyan(team))

	for ctx.Err() == nil {
		input, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("How many rounds? (default %d, type exit to quit)", cfg.RoundsDefault)).
			Show()
		rounds, quit := parseRounds(input, cfg.RoundsDefault)
		if quit {
			break
		}
		if err := playSession(ctx, cfg, logger, team, rounds); err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			pterm.Error.Println(err)
		}
		pterm.Warning.Println("Server disconnected, listening for offer requests...")
	}
	pterm.Info.Println("Goodbye")
}

func playSession(ctx context.Context, cfg config.Client, logger *slog.Logger, team string, rounds uint8) error {
	s, err := findServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Received offer from server %q at address %s, attempting to connect...", s.Name, s.Addr)
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", s.Addr, err)
	}
	defer conn.Close()

	driver := client.Driver{TeamName: team, UI: terminalUI{}, Logger: logger}
	summary, err := driver.Play(conn, rounds)
	printSummary(team, summary)
	return err
}

// findServer connects to the configured address when there is one and
// otherwise waits for an offer.
func findServer(ctx context.Context, cfg config.Client, logger *slog.Logger) (client.Server, error) {
	if cfg.Server != "" {
		addr, err := network.ResolvePartial(network.LocalIP(), cfg.Server, 0)
		if err != nil {
			return client.Server{}, fmt.Errorf("client.server %q: %w", cfg.Server, err)
		}
		if strings.HasSuffix(addr, ":0") {
			return client.Server{}, fmt.Errorf("client.server %q has no port", cfg.Server)
		}
		return client.Server{Name: addr, Addr: addr}, nil
	}
	l, err := discovery.Listen(cfg.DiscoveryPort)
	if err != nil {
		return client.Server{}, err
	}
	defer l.Close()
	l.Poll = cfg.DiscoveryPoll

	spinner, _ := pterm.DefaultSpinner.Start("Client started, listening for offer requests...")
	s, err := client.Discover(ctx, l, logger)
	if err != nil {
		spinner.Fail()
		return client.Server{}, err
	}
	spinner.Success()
	return s, nil
}
