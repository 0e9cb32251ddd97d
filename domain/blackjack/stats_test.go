package blackjack

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateOddsNineteen(t *testing.T) {
	// 50 cards remain; only aces (4) and twos (4) keep the hand at 21 or less.
	odds := EstimateOdds([]uint8{10, 9}, 0)
	if !almostEqual(odds.Safe, 16) {
		t.Fatalf("expected 16%% safe, got %f", odds.Safe)
	}
	if !almostEqual(odds.Bust, 84) {
		t.Fatalf("expected 84%% bust, got %f", odds.Bust)
	}
}

func TestEstimateOddsDealerCard(t *testing.T) {
	// The dealer shows a two: 49 cards remain and only 7 are safe.
	odds := EstimateOdds([]uint8{10, 9}, 2)
	if !almostEqual(odds.Safe, 700.0/49) {
		t.Fatalf("expected %f%% safe, got %f", 700.0/49, odds.Safe)
	}
	if !almostEqual(odds.Bust+odds.Safe, 100) {
		t.Fatalf("bust and safe must sum to 100, got %f", odds.Bust+odds.Safe)
	}
}

func TestEstimateOddsLowHand(t *testing.T) {
	odds := EstimateOdds([]uint8{2, 3}, King)
	if !almostEqual(odds.Safe, 100) || !almostEqual(odds.Bust, 0) {
		t.Fatalf("a hand of 5 cannot bust, got %+v", odds)
	}
}

func TestEstimateOddsNeverNegative(t *testing.T) {
	// Five aces in hand: the pool only holds four, the fifth is not subtracted.
	odds := EstimateOdds([]uint8{Ace, Ace, Ace, Ace, Ace}, Ace)
	if odds.Safe < 0 || odds.Bust < 0 {
		t.Fatalf("negative odds %+v", odds)
	}
}

func TestEstimateOddsEmptyPool(t *testing.T) {
	hand := make([]uint8, 0, 52)
	for rank := uint8(Ace); rank <= King; rank++ {
		for range 4 {
			hand = append(hand, rank)
		}
	}
	odds := EstimateOdds(hand, 0)
	if odds.Safe != 0 || odds.Bust != 0 {
		t.Fatalf("expected zero odds for an empty pool, got %+v", odds)
	}
}
