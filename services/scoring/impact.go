package scoring

// Component weights for the overall impact score.
const (
	weightCompetitiveness = 0.30
	weightLeverage        = 0.35
	weightControl         = 0.20
	weightGrassroots      = 0.15
)

// Recommendation tiers. Lower bounds are inclusive.
const (
	TierHigh       = "High Impact"
	TierMediumHigh = "Medium-High Impact"
	TierMedium     = "Medium Impact"
	TierLower      = "Lower Priority"
)

// Baselines holds scoring components that are not yet derived from
// data. Until polling ingestion lands, race competitiveness inside the
// impact blend sits at a flat 50 and chamber-control impact at 60.
type Baselines struct {
	Competitiveness float64
	ControlImpact   float64
}

func DefaultBaselines() Baselines {
	return Baselines{
		Competitiveness: 50,
		ControlImpact:   60,
	}
}

// ImpactInputs is everything ComputeImpact needs for one candidate in
// one race.
type ImpactInputs struct {
	// 0..100, NeutralLeverage when no funding comparison exists
	DonationLeverage float64
	// 0..100 share of receipts from small-dollar donors
	SmallDollarPercentage float64
	Incumbent             bool
}

// Impact is the scored result. All components live on a 0..100 scale.
type Impact struct {
	Competitiveness float64
	Leverage        float64
	Control         float64
	Grassroots      float64
	Overall         float64
	Tier            string
}

// ComputeImpact blends the four components into an overall donation
// impact score. Challengers get a control bonus since flipping a seat
// moves chamber math twice as far as holding one.
func ComputeImpact(in ImpactInputs, base Baselines) Impact {
	competitiveness := clamp(base.Competitiveness, 0, 100)
	leverage := clamp(in.DonationLeverage, 0, 100)
	control := base.ControlImpact
	if !in.Incumbent {
		control += 10
	}
	control = clamp(control, 0, 100)
	grassroots := clamp(in.SmallDollarPercentage*2, 0, 100)

	overall := competitiveness*weightCompetitiveness +
		leverage*weightLeverage +
		control*weightControl +
		grassroots*weightGrassroots
	overall = round2(clamp(overall, 0, 100))

	return Impact{
		Competitiveness: competitiveness,
		Leverage:        leverage,
		Control:         control,
		Grassroots:      grassroots,
		Overall:         overall,
		Tier:            TierFor(overall),
	}
}

// TierFor maps an overall score to a recommendation tier.
func TierFor(overall float64) string {
	switch {
	case overall >= 75:
		return TierHigh
	case overall >= 60:
		return TierMediumHigh
	case overall >= 45:
		return TierMedium
	default:
		return TierLower
	}
}
