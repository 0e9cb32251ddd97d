package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/client"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

// terminalUI renders a session with pterm and asks decisions interactively.
type terminalUI struct{}

var _ client.UI = terminalUI{}

func (terminalUI) RoundStarted(round, rounds int) {
	pterm.DefaultSection.Printfln("Round %d of %d", round, rounds)
}

func (terminalUI) PlayerCard(c blackjack.Card, hand blackjack.Hand) {
	pterm.Info.Printfln("You got %s, your score is %d", c, hand.Score())
}

func (terminalUI) DealerCard(c blackjack.Card, hand blackjack.Hand) {
	pterm.Info.Printfln("Dealer shows %s, dealer score is %d", c, hand.Score())
}

func (terminalUI) Decide(player blackjack.Hand, dealerUp blackjack.Card, odds blackjack.Odds) (blackjack.Decision, error) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{
		{Data: handBox("|YOUR HAND|", player)},
		{Data: handBox("|DEALER|", blackjack.Hand{dealerUp})},
		{Data: oddsBox(odds)},
	}}).Render()
	selected, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Select your next action").
		WithOptions([]string{string(blackjack.Hit), string(blackjack.Stand)}).
		Show()
	if err != nil {
		return "", err
	}
	return blackjack.Decision(selected), nil
}

func (terminalUI) RoundOver(result blackjack.Result, player, dealer blackjack.Hand) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	text := pterm.Sprintfln("Your hand: %s (%d)", describe(player), player.Score())
	if len(dealer) > 0 {
		text += pterm.Sprintfln("Dealer hand: %s (%d)", describe(dealer), dealer.Score())
	}
	var title string
	switch result {
	case blackjack.Win:
		title = pterm.LightGreen("|YOU WIN|")
	case blackjack.Loss:
		title = pterm.LightRed("|DEALER WINS|")
	default:
		title = pterm.LightYellow("|TIE|")
	}
	pbox.WithTitle(title).WithTitleTopCenter().Println(text)
}

func handBox(title string, hand blackjack.Hand) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightCyan(title)).WithTitleTopLeft().Sprintf("%s\nScore: %d", describe(hand), hand.Score())
}

func oddsBox(odds blackjack.Odds) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow("|NEXT CARD|")).WithTitleTopLeft().Sprintf(
		"%s %.0f%%\n%s %.0f%%",
		pterm.LightGreen("Safe:"), odds.Safe,
		pterm.LightRed("Bust:"), odds.Bust,
	)
}

func describe(hand blackjack.Hand) string {
	cards := make([]string, len(hand))
	for i, c := range hand {
		cards[i] = c.String()
	}
	return strings.Join(cards, " - ")
}

func printSummary(team string, summary client.Summary) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle(pterm.LightCyan(team)).WithTitleTopCenter().Println(pterm.Sprintf(
		"Rounds played: %d\nWins: %d  Ties: %d  Losses: %d\nWin rate: %.1f%%",
		summary.Rounds, summary.Wins, summary.Ties, summary.Losses, summary.WinRate(),
	))
}
