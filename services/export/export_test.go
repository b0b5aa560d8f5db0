package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"donorlens-backend/lib/testutil"
	"donorlens-backend/services/campaignstore"
	"donorlens-backend/services/campaignstore/db"
	"donorlens-backend/services/scoring"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func TestWriteJson(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/export",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := campaignstore.NewService(setup.DB)
	service := NewService(store)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	require.NoError(t, store.SeedIssues(ctx))

	raceId, err := store.EnsureRace(ctx, campaignstore.Race{
		Office:      "House",
		RaceType:    "GENERAL",
		State:       "PA",
		District:    "07",
		GeneralDate: "2026-11-03",
	})
	require.NoError(t, err)
	require.NoError(t, store.SetRaceRating(ctx, raceId, 48, "Tilt D"))

	candidateId, err := store.UpsertCandidate(ctx, campaignstore.Candidate{
		FecCandidateId: "H6PA07001",
		Name:           "RIVERA, ANA",
		Party:          "DEMOCRATIC PARTY",
		Office:         "House",
		State:          "PA",
		District:       "07",
	})
	require.NoError(t, err)
	require.NoError(t, store.LinkCandidateToRace(ctx, raceId, candidateId))
	require.NoError(t, store.ReplaceFinance(ctx, candidateId, campaignstore.Finance{
		TotalReceipts:         sql.NullFloat64{Float64: 400_000, Valid: true},
		SmallDollarPercentage: sql.NullFloat64{Float64: 60, Valid: true},
	}))

	scorer := scoring.NewService(store, scoring.DefaultBaselines())
	_, err = scorer.Recompute(ctx)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "public")
	require.NoError(t, service.WriteJson(ctx, dir))

	for _, name := range []string{
		"candidates.json", "races.json", "issues.json",
		"candidate-issues.json", "demographics.json", "stats.json",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "candidates.json"))
	require.NoError(t, err)
	var candidates []CandidateRecord
	require.NoError(t, json.Unmarshal(raw, &candidates))
	require.Len(t, candidates, 1)

	want := CandidateRecord{
		Id:                    candidateId,
		Name:                  "RIVERA, ANA",
		Party:                 "DEMOCRATIC PARTY",
		Office:                "House",
		State:                 "PA",
		District:              "07",
		TotalReceipts:         floatPtr(400_000),
		SmallDollarPercentage: floatPtr(60),
		// neutral leverage challenger with a maxed grassroots component
		OverallImpactScore:   floatPtr(61.5),
		CompetitivenessScore: floatPtr(50),
		FundingLeverageScore: floatPtr(50),
		RecommendationTier:   stringPtr(scoring.TierMediumHigh),
	}
	if diff := cmp.Diff(want, candidates[0]); diff != "" {
		t.Fatalf("candidate export mismatch (-want +got):\n%s", diff)
	}

	raw, err = os.ReadFile(filepath.Join(dir, "races.json"))
	require.NoError(t, err)
	var races []RaceRecord
	require.NoError(t, json.Unmarshal(raw, &races))
	require.Len(t, races, 1)
	require.Equal(t, floatPtr(48), races[0].CompetitivenessScore)
	require.Equal(t, stringPtr("Tilt D"), races[0].CookRating)
	require.EqualValues(t, 1, races[0].CandidateCount)

	raw, err = os.ReadFile(filepath.Join(dir, "stats.json"))
	require.NoError(t, err)
	var stats StatsRecord
	require.NoError(t, json.Unmarshal(raw, &stats))
	require.EqualValues(t, 1, stats.TotalCandidates)
	require.EqualValues(t, 1, stats.TotalRaces)
	require.EqualValues(t, 15, stats.TotalIssues)
	require.EqualValues(t, 1, stats.CompetitiveRaces)
	require.NotEmpty(t, stats.LastUpdated)

	// empty tables export as [] not null
	raw, err = os.ReadFile(filepath.Join(dir, "demographics.json"))
	require.NoError(t, err)
	require.Equal(t, "[]", string(raw[:2]))
}
