package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/protocol"
	"github.com/luca-patrignani/blackjack/server"
)

type scriptedUI struct {
	decisions []blackjack.Decision
	asked     int
	odds      []blackjack.Odds
	results   []blackjack.Result
	player    []blackjack.Hand
	dealer    []blackjack.Hand
}

func (u *scriptedUI) RoundStarted(round, rounds int)                   {}
func (u *scriptedUI) PlayerCard(c blackjack.Card, hand blackjack.Hand) {}
func (u *scriptedUI) DealerCard(c blackjack.Card, hand blackjack.Hand) {}

func (u *scriptedUI) Decide(player blackjack.Hand, dealerUp blackjack.Card, odds blackjack.Odds) (blackjack.Decision, error) {
	u.asked++
	u.odds = append(u.odds, odds)
	if len(u.decisions) == 0 {
		return blackjack.Stand, nil
	}
	d := u.decisions[0]
	u.decisions = u.decisions[1:]
	return d, nil
}

func (u *scriptedUI) RoundOver(result blackjack.Result, player, dealer blackjack.Hand) {
	u.results = append(u.results, result)
	u.player = append(u.player, player)
	u.dealer = append(u.dealer, dealer)
}

func card(t *testing.T, suit, rank uint8) blackjack.Card {
	t.Helper()
	c, err := blackjack.NewCard(suit, rank)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

type step struct {
	card   blackjack.Card
	result blackjack.Result
	// expect, when set, is the decision read before sending this card
	expect blackjack.Decision
}

// fakeServer plays a scripted session on conn and reports the first deviation.
func fakeServer(conn net.Conn, rounds uint8, steps []step) error {
	defer conn.Close()
	c := protocol.NewConn(conn)
	req, err := c.ReadRequest()
	if err != nil {
		return err
	}
	if req.Rounds != rounds || req.TeamName != "Aces" {
		return errors.New("unexpected request")
	}
	for _, s := range steps {
		if s.expect != "" {
			p, err := c.ReadClientPayload()
			if err != nil {
				return err
			}
			if p.Decision != s.expect {
				return errors.New("unexpected decision " + string(p.Decision))
			}
		}
		if err := c.WriteServerPayload(protocol.NewServerPayload(s.card, s.result)); err != nil {
			return err
		}
	}
	return nil
}

func TestEarlyLossEndsRound(t *testing.T) {
	king := card(t, blackjack.Heart, blackjack.King)
	queen := card(t, blackjack.Spade, blackjack.Queen)
	five := card(t, blackjack.Club, 5)
	steps := []step{
		{card: king}, {card: queen}, {card: five},
		{card: king, result: blackjack.Loss, expect: blackjack.Hit},
		// second round: player stands on 20 and the dealer busts
		{card: king}, {card: queen}, {card: five},
		{card: card(t, blackjack.Diamond, 9), expect: blackjack.Stand},
		{card: card(t, blackjack.Diamond, blackjack.King)},
		{card: card(t, blackjack.Diamond, blackjack.King), result: blackjack.Win},
	}
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	fatal := make(chan error, 1)
	go func() {
		fatal <- fakeServer(serverSide, 2, steps)
	}()

	ui := &scriptedUI{decisions: []blackjack.Decision{blackjack.Hit, blackjack.Stand}}
	d := Driver{TeamName: "Aces", UI: ui}
	summary, err := d.Play(clientSide, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := <-fatal; err != nil {
		t.Fatal(err)
	}
	if summary != (Summary{Rounds: 2, Wins: 1, Losses: 1}) {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if ui.results[0] != blackjack.Loss || ui.results[1] != blackjack.Win {
		t.Fatalf("unexpected results %v", ui.results)
	}
	if score := ui.player[0].Score(); score != 30 {
		t.Fatalf("expected the busting hand to score 30, got %d", score)
	}
	if score := ui.dealer[1].Score(); score != 24 {
		t.Fatalf("expected dealer hand 5+9+K, got %d", score)
	}
}

func TestStandsOnTwentyOne(t *testing.T) {
	steps := []step{
		{card: card(t, blackjack.Heart, blackjack.Ace)},
		{card: card(t, blackjack.Club, blackjack.King)},
		{card: card(t, blackjack.Spade, 10)},
		{card: card(t, blackjack.Heart, 7), expect: blackjack.Stand},
		{card: card(t, blackjack.Heart, 7), result: blackjack.Win},
	}
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	fatal := make(chan error, 1)
	go func() {
		fatal <- fakeServer(serverSide, 1, steps)
	}()
	ui := &scriptedUI{decisions: []blackjack.Decision{blackjack.Hit}}
	d := Driver{TeamName: "Aces", UI: ui}
	summary, err := d.Play(clientSide, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := <-fatal; err != nil {
		t.Fatal(err)
	}
	if ui.asked != 0 {
		t.Fatalf("expected no question on 21, asked %d times", ui.asked)
	}
	if summary.WinRate() != 100 {
		t.Fatalf("expected a 100%% win rate, got %v", summary.WinRate())
	}
}

func TestOddsShownToUI(t *testing.T) {
	steps := []step{
		{card: card(t, blackjack.Heart, 10)},
		{card: card(t, blackjack.Club, 9)},
		{card: card(t, blackjack.Spade, 2)},
		{card: card(t, blackjack.Heart, 10), expect: blackjack.Stand},
		{card: card(t, blackjack.Diamond, 8)},
		{card: card(t, blackjack.Diamond, 8), result: blackjack.Loss},
	}
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	fatal := make(chan error, 1)
	go func() {
		fatal <- fakeServer(serverSide, 1, steps)
	}()
	ui := &scriptedUI{}
	d := Driver{TeamName: "Aces", UI: ui}
	if _, err := d.Play(clientSide, 1); err != nil {
		t.Fatal(err)
	}
	if err := <-fatal; err != nil {
		t.Fatal(err)
	}
	expected := blackjack.EstimateOdds([]uint8{10, 9}, 2)
	if len(ui.odds) != 1 || ui.odds[0] != expected {
		t.Fatalf("expected odds %+v, got %+v", expected, ui.odds)
	}
}

func TestConnectionLost(t *testing.T) {
	steps := []step{
		{card: card(t, blackjack.Heart, 10)},
	}
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	go fakeServer(serverSide, 3, steps)
	d := Driver{TeamName: "Aces", UI: &scriptedUI{}}
	summary, err := d.Play(clientSide, 3)
	if !errors.Is(err, protocol.ErrConnectionLost) {
		t.Fatalf("expected connection lost, got %v", err)
	}
	if summary.Rounds != 0 {
		t.Fatalf("expected no completed round, got %+v", summary)
	}
}

func TestAgainstServer(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	s := server.New(l, "Test Table",
		server.WithAcceptPoll(20*time.Millisecond),
		server.WithDealerPace(0),
		server.WithRoundPause(0),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Serve(ctx)
	defer s.Close()

	conn, err := net.Dial("tcp", s.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(10 * time.Second))

	ui := &scriptedUI{decisions: []blackjack.Decision{blackjack.Hit, blackjack.Hit}}
	d := Driver{TeamName: "Aces", UI: ui}
	summary, err := d.Play(conn, 5)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Rounds != 5 || summary.Wins+summary.Ties+summary.Losses != 5 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	for i, result := range ui.results {
		player, dealer := ui.player[i], ui.dealer[i]
		if player.Busted() {
			if result != blackjack.Loss {
				t.Fatalf("round %d: busted player got %s", i+1, result)
			}
			continue
		}
		if expected := blackjack.Outcome(player.Score(), dealer.Score()); result != expected {
			t.Fatalf("round %d: player %d dealer %d, expected %s got %s",
				i+1, player.Score(), dealer.Score(), expected, result)
		}
	}
}

func TestWinRate(t *testing.T) {
	if rate := (Summary{}).WinRate(); rate != 0 {
		t.Fatalf("expected 0 for no rounds, got %v", rate)
	}
	if rate := (Summary{Rounds: 4, Wins: 1}).WinRate(); rate != 25 {
		t.Fatalf("expected 25, got %v", rate)
	}
	// two of five requested rounds completed before a disconnect
	if rate := (Summary{Rounds: 2, Wins: 1, Losses: 1}).WinRate(); rate != 50 {
		t.Fatalf("expected 50 over completed rounds, got %v", rate)
	}
}

func TestUnknownDecisionAskedAgain(t *testing.T) {
	steps := []step{
		{card: card(t, blackjack.Heart, 10)},
		{card: card(t, blackjack.Club, 8)},
		{card: card(t, blackjack.Spade, 9)},
		{card: card(t, blackjack.Heart, 9), expect: blackjack.Stand},
		{card: card(t, blackjack.Heart, 9), result: blackjack.Tie},
	}
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	clientSide.SetDeadline(time.Now().Add(5 * time.Second))
	fatal := make(chan error, 1)
	go func() {
		fatal <- fakeServer(serverSide, 1, steps)
	}()
	ui := &scriptedUI{decisions: []blackjack.Decision{"h", "", blackjack.Stand}}
	d := Driver{TeamName: "Aces", UI: ui}
	summary, err := d.Play(clientSide, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := <-fatal; err != nil {
		t.Fatal(err)
	}
	if ui.asked != 3 {
		t.Fatalf("expected 3 questions, got %d", ui.asked)
	}
	if summary != (Summary{Rounds: 1, Ties: 1}) {
		t.Fatalf("unexpected summary %+v", summary)
	}
}
