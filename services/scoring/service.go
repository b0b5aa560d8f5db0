package scoring

import (
	"context"
	"database/sql"

	"donorlens-backend/services/campaignstore"
	"donorlens-backend/services/campaignstore/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/scoring")

type Service struct {
	store campaignstore.Service
	base  Baselines
}

func NewService(store campaignstore.Service, base Baselines) Service {
	return Service{
		store: store,
		base:  base,
	}
}

// CompareRaceFunding walks every race and writes the funding comparison
// columns for each active candidate. The opponent figure is the
// highest receipts among the other candidates in the race who have not
// withdrawn. Races without a competitiveness rating compare against a
// toss-up.
func (s Service) CompareRaceFunding(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "CompareRaceFunding")
	defer span.End()

	qry := s.store.Queries()

	raceIds, err := qry.ListRaceIds(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	updated := 0
	for _, raceId := range raceIds {
		competitiveness := 50.0
		rating, err := qry.GetRaceCompetitiveness(ctx, raceId)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return updated, err
		}
		if rating.Valid {
			competitiveness = rating.Float64
		}

		entries, err := qry.ListRaceFinance(ctx, raceId)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return updated, err
		}

		for _, entry := range entries {
			if entry.Withdrew || !entry.TotalReceipts.Valid {
				continue
			}

			opponent := 0.0
			for _, other := range entries {
				if other.CandidateID == entry.CandidateID || other.Withdrew {
					continue
				}
				if other.TotalReceipts.Valid && other.TotalReceipts.Float64 > opponent {
					opponent = other.TotalReceipts.Float64
				}
			}
			if opponent <= 0 {
				continue
			}

			cmp := CompareFunding(entry.TotalReceipts.Float64, opponent, competitiveness)
			err = s.store.SetFinanceComparison(ctx, entry.CandidateID, campaignstore.FinanceComparison{
				OpponentTotalReceipts: sql.NullFloat64{Float64: cmp.OpponentReceipts, Valid: true},
				FundingGap:            sql.NullFloat64{Float64: cmp.Gap, Valid: true},
				FundingRatio:          sql.NullFloat64{Float64: cmp.Ratio, Valid: true},
				DonationLeverageScore: sql.NullFloat64{Float64: cmp.Leverage, Valid: true},
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return updated, err
			}
			updated++
		}
	}

	span.SetAttributes(attribute.Int("updated", updated))
	return updated, nil
}

// Recompute scores every (candidate, race) pair and upserts the
// result. Candidates with no finance comparison score against a
// neutral leverage.
func (s Service) Recompute(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "Recompute")
	defer span.End()

	qry := s.store.Queries()

	pairs, err := qry.ListScoringPairs(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	scored := 0
	for _, pair := range pairs {
		leverage := NeutralLeverage
		if pair.DonationLeverageScore.Valid {
			leverage = pair.DonationLeverageScore.Float64
		}
		smallDollar := 0.0
		if pair.SmallDollarPercentage.Valid {
			smallDollar = pair.SmallDollarPercentage.Float64
		}

		impact := ComputeImpact(ImpactInputs{
			DonationLeverage:      leverage,
			SmallDollarPercentage: smallDollar,
			Incumbent:             pair.Incumbent,
		}, s.base)

		err = qry.UpsertImpactScore(ctx, db.UpsertImpactScoreParams{
			CandidateID:              pair.CandidateID,
			RaceID:                   pair.RaceID,
			CompetitivenessScore:     impact.Competitiveness,
			FundingLeverageScore:     impact.Leverage,
			ControlImpactScore:       impact.Control,
			GrassrootsPotentialScore: impact.Grassroots,
			OverallImpactScore:       impact.Overall,
			RecommendationTier:       impact.Tier,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return scored, err
		}
		scored++
	}

	span.SetAttributes(attribute.Int("scored", scored))
	return scored, nil
}
