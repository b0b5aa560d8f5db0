package scoring

import "math"

// NeutralLeverage is reported when either side of a funding comparison
// is missing or non-positive.
const NeutralLeverage = 50.0

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// fundingComponent maps the candidate/opponent receipt ratio onto a
// 20..90 scale. The breakpoints are deliberately coarse, filings are
// noisy enough that finer gradations would be false precision.
func fundingComponent(ratio float64) float64 {
	switch {
	case ratio < 0.5:
		return 90
	case ratio < 0.75:
		return 75
	case ratio < 1.0:
		return 60
	case ratio < 1.5:
		return 40
	default:
		return 20
	}
}

// DonationLeverage scores how much marginal good a dollar does for a
// candidate, from their receipts, the best-funded opponent's receipts,
// and the race competitiveness on a 0..100 scale where 50 is a pure
// toss-up. Returns NeutralLeverage when either receipts figure is
// non-positive.
func DonationLeverage(receipts, opponentReceipts, competitiveness float64) float64 {
	if receipts <= 0 || opponentReceipts <= 0 {
		return NeutralLeverage
	}
	ratio := receipts / opponentReceipts
	funding := fundingComponent(ratio)
	closeness := 100 - math.Abs(competitiveness-50)*2
	score := funding*0.6 + closeness*0.4
	return round2(clamp(score, 0, 100))
}

// FundingComparison is the per-candidate result of comparing receipts
// against the strongest opponent in the same race.
type FundingComparison struct {
	OpponentReceipts float64
	Gap              float64
	Ratio            float64
	Leverage         float64
}

// CompareFunding derives the stored comparison columns for one
// candidate. Gap is receipts minus opponent receipts, so an underdog
// carries a negative gap.
func CompareFunding(receipts, opponentReceipts, competitiveness float64) FundingComparison {
	cmp := FundingComparison{
		OpponentReceipts: opponentReceipts,
		Gap:              round2(receipts - opponentReceipts),
		Leverage:         DonationLeverage(receipts, opponentReceipts, competitiveness),
	}
	if opponentReceipts > 0 {
		cmp.Ratio = round4(receipts / opponentReceipts)
	}
	return cmp
}
