package client

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/protocol"
)

// UI shows the progress of a session and takes the player's decisions.
type UI interface {
	RoundStarted(round, rounds int)
	PlayerCard(c blackjack.Card, hand blackjack.Hand)
	DealerCard(c blackjack.Card, hand blackjack.Hand)
	// Decide is only asked while the player's score is below 21. It is asked
	// again when it returns anything other than Hit or Stand.
	Decide(player blackjack.Hand, dealerUp blackjack.Card, odds blackjack.Odds) (blackjack.Decision, error)
	RoundOver(result blackjack.Result, player, dealer blackjack.Hand)
}

// Summary counts the outcomes of the rounds played so far.
type Summary struct {
	Rounds int
	Wins   int
	Ties   int
	Losses int
}

// WinRate returns the percentage of rounds won.
func (s Summary) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) * 100 / float64(s.Rounds)
}

func (s *Summary) add(result blackjack.Result) {
	s.Rounds++
	switch result {
	case blackjack.Win:
		s.Wins++
	case blackjack.Tie:
		s.Ties++
	case blackjack.Loss:
		s.Losses++
	}
}

// Driver plays one session on behalf of a team.
type Driver struct {
	TeamName string
	UI       UI
	Logger   *slog.Logger
}

// Play requests rounds from the server on rw and plays them all. The summary
// covers the rounds completed before any error.
func (d *Driver) Play(rw io.ReadWriter, rounds uint8) (Summary, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := protocol.NewConn(rw)
	var summary Summary
	if err := c.WriteRequest(protocol.Request{Rounds: rounds, TeamName: d.TeamName}); err != nil {
		return summary, fmt.Errorf("send request: %w", err)
	}
	for round := 1; round <= int(rounds); round++ {
		d.UI.RoundStarted(round, int(rounds))
		result, err := d.playRound(c, logger)
		if err != nil {
			return summary, fmt.Errorf("round %d: %w", round, err)
		}
		logger.Debug("round over", "round", round, "result", result.String())
		summary.add(result)
	}
	return summary, nil
}

func (d *Driver) playRound(c *protocol.Conn, logger *slog.Logger) (blackjack.Result, error) {
	var player, dealer blackjack.Hand
	for range 2 {
		card, result, err := readCard(c)
		if err != nil {
			return 0, err
		}
		player = append(player, card)
		d.UI.PlayerCard(card, player)
		if result != blackjack.NotOver {
			d.UI.RoundOver(result, player, dealer)
			return result, nil
		}
	}
	up, result, err := readCard(c)
	if err != nil {
		return 0, err
	}
	dealer = append(dealer, up)
	d.UI.DealerCard(up, dealer)
	if result != blackjack.NotOver {
		d.UI.RoundOver(result, player, dealer)
		return result, nil
	}

	for {
		decision := blackjack.Stand
		if player.Score() < blackjack.BlackjackScore {
			odds := blackjack.EstimateOdds(player.Ranks(), up.Rank())
			decision, err = d.UI.Decide(player, up, odds)
			if err != nil {
				return 0, err
			}
			if decision != blackjack.Hit && decision != blackjack.Stand {
				logger.Warn("ignoring unknown decision", "decision", string(decision))
				continue
			}
		}
		if err := c.WriteClientPayload(protocol.ClientPayload{Decision: decision}); err != nil {
			return 0, err
		}
		if decision != blackjack.Hit {
			break
		}
		card, result, err := readCard(c)
		if err != nil {
			return 0, err
		}
		player = append(player, card)
		d.UI.PlayerCard(card, player)
		if result != blackjack.NotOver {
			d.UI.RoundOver(result, player, dealer)
			return result, nil
		}
	}

	for {
		card, result, err := readCard(c)
		if err != nil {
			return 0, err
		}
		if result != blackjack.NotOver {
			d.UI.RoundOver(result, player, dealer)
			return result, nil
		}
		dealer = append(dealer, card)
		d.UI.DealerCard(card, dealer)
	}
}

func readCard(c *protocol.Conn) (blackjack.Card, blackjack.Result, error) {
	p, err := c.ReadServerPayload()
	if err != nil {
		return blackjack.Card{}, 0, err
	}
	card, err := p.Card()
	if err != nil {
		return blackjack.Card{}, 0, fmt.Errorf("server sent %w", err)
	}
	return card, p.Result, nil
}
