package campaignstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"donorlens-backend/lib/testutil"
	"donorlens-backend/services/campaignstore/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestService(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/campaignstore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	electionId, err := service.UpsertElection(ctx, Election{
		Date:        "2026-11-03",
		Type:        "GENERAL",
		State:       "US",
		District:    "ALL",
		Description: "2026 General Election",
	})
	require.NoError(t, err)
	require.NotZero(t, electionId)

	// same natural key resolves to the same row
	again, err := service.UpsertElection(ctx, Election{
		Date:     "2026-11-03",
		Type:     "GENERAL",
		State:    "US",
		District: "ALL",
	})
	require.NoError(t, err)
	require.Equal(t, electionId, again)

	raceId, err := service.EnsureRace(ctx, Race{
		ElectionId:  electionId,
		Office:      "House",
		RaceType:    "GENERAL",
		State:       "AZ",
		District:    "01",
		GeneralDate: "2026-11-03",
	})
	require.NoError(t, err)

	sameRace, err := service.EnsureRace(ctx, Race{
		Office:      "House",
		RaceType:    "GENERAL",
		State:       "AZ",
		District:    "01",
		GeneralDate: "2026-11-03",
	})
	require.NoError(t, err)
	require.Equal(t, raceId, sameRace)

	candidateId, err := service.UpsertCandidate(ctx, Candidate{
		FecCandidateId:  "H6AZ01234",
		Name:            "DOE, JANE",
		Party:           "DEMOCRATIC PARTY",
		Office:          "House",
		State:           "AZ",
		District:        "01",
		Incumbent:       false,
		CandidateStatus: "C",
		ElectionYear:    2026,
	})
	require.NoError(t, err)

	// reruns update in place
	sameCandidate, err := service.UpsertCandidate(ctx, Candidate{
		FecCandidateId:  "H6AZ01234",
		Name:            "DOE, JANE A.",
		Party:           "DEMOCRATIC PARTY",
		Office:          "House",
		State:           "AZ",
		District:        "01",
		Incumbent:       true,
		CandidateStatus: "C",
		ElectionYear:    2026,
	})
	require.NoError(t, err)
	require.Equal(t, candidateId, sameCandidate)

	count, err := service.qry.CountCandidates(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	err = service.LinkCandidateToRace(ctx, raceId, candidateId)
	require.NoError(t, err)
	// linking twice is a no-op
	err = service.LinkCandidateToRace(ctx, raceId, candidateId)
	require.NoError(t, err)

	err = service.ReplaceFinance(ctx, candidateId, Finance{
		TotalReceipts:           sql.NullFloat64{Float64: 400000, Valid: true},
		IndividualContributions: sql.NullFloat64{Float64: 300000, Valid: true},
		SmallDollarPercentage:   sql.NullFloat64{Float64: 75, Valid: true},
	})
	require.NoError(t, err)

	// replacement swaps the row, it never accumulates
	err = service.ReplaceFinance(ctx, candidateId, Finance{
		TotalReceipts: sql.NullFloat64{Float64: 500000, Valid: true},
	})
	require.NoError(t, err)

	finance, err := service.qry.GetFinance(ctx, candidateId)
	require.NoError(t, err)
	require.Equal(t, float64(500000), finance.TotalReceipts.Float64)
	require.False(t, finance.SmallDollarPercentage.Valid)

	err = service.SetFinanceComparison(ctx, candidateId, FinanceComparison{
		OpponentTotalReceipts: sql.NullFloat64{Float64: 1200000, Valid: true},
		FundingGap:            sql.NullFloat64{Float64: -700000, Valid: true},
		FundingRatio:          sql.NullFloat64{Float64: 0.4167, Valid: true},
		DonationLeverageScore: sql.NullFloat64{Float64: 94, Valid: true},
	})
	require.NoError(t, err)

	finance, err = service.qry.GetFinance(ctx, candidateId)
	require.NoError(t, err)
	require.Equal(t, float64(94), finance.DonationLeverageScore.Float64)

	err = service.SetRaceRating(ctx, raceId, 50, "Toss-up")
	require.NoError(t, err)
	rating, err := service.qry.GetRaceCompetitiveness(ctx, raceId)
	require.NoError(t, err)
	require.Equal(t, float64(50), rating.Float64)
}

func TestIssueAssignment(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/campaignstore/issues",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.SeedIssues(ctx)
	require.NoError(t, err)
	// idempotent
	err = service.SeedIssues(ctx)
	require.NoError(t, err)

	issues, err := service.qry.ListIssues(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 15)

	candidateId, err := service.UpsertCandidate(ctx, Candidate{
		FecCandidateId: "H6PA07777",
		Name:           "SMITH, JOHN",
		Party:          "REPUBLICAN PARTY",
		Office:         "House",
		State:          "PA",
		District:       "07",
	})
	require.NoError(t, err)

	err = service.AssignIssuePosition(ctx, IssuePosition{
		CandidateId: candidateId,
		IssueName:   "Crime & Safety",
		Position:    "Support",
		Strength:    "Strong",
		Priority:    1,
	})
	require.NoError(t, err)

	err = service.AssignIssuePosition(ctx, IssuePosition{
		CandidateId: candidateId,
		IssueName:   "No Such Issue",
	})
	require.ErrorIs(t, err, ErrUnknownIssue)

	rows, err := service.qry.ListCandidateIssues(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Crime & Safety", rows[0].IssueName)
	require.EqualValues(t, 1, rows[0].Priority)

	byIssue, err := service.qry.CandidatesForIssue(ctx, "Crime & Safety")
	require.NoError(t, err)
	require.Len(t, byIssue, 1)
	require.Equal(t, "SMITH, JOHN", byIssue[0].Name)
	require.False(t, byIssue[0].OverallImpactScore.Valid)

	byIssue, err = service.qry.CandidatesForIssue(ctx, "Climate Change")
	require.NoError(t, err)
	require.Empty(t, byIssue)
}

func TestWithdrawAndRaceFinance(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/campaignstore/withdraw",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	raceId, err := service.EnsureRace(ctx, Race{
		Office:      "House",
		RaceType:    "GENERAL",
		State:       "NC",
		District:    "01",
		GeneralDate: "2026-11-03",
	})
	require.NoError(t, err)

	var ids []int64
	for _, fec := range []string{"H6NC01001", "H6NC01002", "H6NC01003"} {
		id, err := service.UpsertCandidate(ctx, Candidate{
			FecCandidateId: fec,
			Name:           fec,
			Party:          "DEMOCRATIC PARTY",
			Office:         "House",
			State:          "NC",
			District:       "01",
		})
		require.NoError(t, err)
		require.NoError(t, service.LinkCandidateToRace(ctx, raceId, id))
		ids = append(ids, id)
	}

	err = service.WithdrawCandidate(ctx, raceId, ids[2], "2026-05-01")
	require.NoError(t, err)

	rows, err := service.qry.ListRaceFinance(ctx, raceId)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	withdrawn := 0
	for _, r := range rows {
		if r.Withdrew {
			withdrawn++
			require.Equal(t, ids[2], r.CandidateID)
		}
	}
	require.Equal(t, 1, withdrawn)
}
