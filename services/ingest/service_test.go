package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"donorlens-backend/lib/scrapers/ballotpedia"
	"donorlens-backend/lib/scrapers/census"
	"donorlens-backend/lib/scrapers/civic"
	"donorlens-backend/lib/scrapers/fec"
	"donorlens-backend/lib/scrapers/wikipedia"
	"donorlens-backend/lib/testutil"
	"donorlens-backend/services/campaignstore"
	"donorlens-backend/services/campaignstore/db"
	"donorlens-backend/services/scoring"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type fakeFec struct {
	house  []fec.Candidate
	senate []fec.Candidate
	totals map[string]*fec.Totals
	err    error
}

func (f fakeFec) Candidates(ctx context.Context, req fec.CandidatesRequest) ([]fec.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	if req.Office == "H" {
		return f.house, nil
	}
	return f.senate, nil
}

func (f fakeFec) CandidateTotals(ctx context.Context, candidateId string) (*fec.Totals, error) {
	return f.totals[candidateId], nil
}

type fakeRatings struct {
	ratings []ballotpedia.RaceRating
	err     error
}

func (f fakeRatings) FetchRatings(ctx context.Context) ([]ballotpedia.RaceRating, error) {
	return f.ratings, f.err
}

type fakeCensus struct {
	byDistrict map[string]*census.Demographics
}

func (f fakeCensus) DistrictDemographics(ctx context.Context, state, district string) (*census.Demographics, error) {
	return f.byDistrict[state+"-"+district], nil
}

type fakeWikipedia struct {
	byName map[string]*wikipedia.Biography
}

func (f fakeWikipedia) CandidateBiography(ctx context.Context, name string) (*wikipedia.Biography, error) {
	return f.byName[name], nil
}

type fakeCivic struct {
	hasKey    bool
	elections []civic.Election
}

func (f fakeCivic) HasKey() bool { return f.hasKey }

func (f fakeCivic) Elections(ctx context.Context) ([]civic.Election, error) {
	return f.elections, nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestRun(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/ingest",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := campaignstore.NewService(setup.DB)
	scorer := scoring.NewService(store, scoring.DefaultBaselines())

	sources := Sources{
		Fec: fakeFec{
			house: []fec.Candidate{
				{
					CandidateId:        "H6AZ01001",
					Name:               "GARCIA, MARIA",
					PartyFull:          "DEMOCRATIC PARTY",
					Office:             "H",
					State:              "AZ",
					District:           "01",
					IncumbentChallenge: "Challenger",
					CandidateStatus:    "C",
					ElectionYears:      []int{2026},
				},
				{
					CandidateId:        "H6AZ01002",
					Name:               "BAKER, TOM",
					PartyFull:          "REPUBLICAN PARTY",
					Office:             "H",
					State:              "AZ",
					District:           "01",
					IncumbentChallenge: "Incumbent",
					CandidateStatus:    "C",
					ElectionYears:      []int{2026},
				},
				// no filings for this one
				{
					CandidateId:     "H6TX23003",
					Name:            "NGUYEN, LINH",
					PartyFull:       "DEMOCRATIC PARTY",
					Office:          "H",
					State:           "TX",
					District:        "23",
					CandidateStatus: "C",
				},
			},
			senate: []fec.Candidate{
				{
					CandidateId:        "S6GA00001",
					Name:               "WRIGHT, ANGELA",
					PartyFull:          "DEMOCRATIC PARTY",
					Office:             "S",
					State:              "GA",
					IncumbentChallenge: "Incumbent",
					CandidateStatus:    "C",
					ElectionYears:      []int{2026},
				},
			},
			totals: map[string]*fec.Totals{
				"H6AZ01001": {
					Receipts:                400_000,
					Disbursements:           300_000,
					CashOnHandEndPeriod:     100_000,
					IndividualContributions: 300_000,
					CoverageEndDate:         "2026-06-30",
				},
				"H6AZ01002": {
					Receipts:                1_200_000,
					Disbursements:           800_000,
					IndividualContributions: 240_000,
				},
				"S6GA00001": {
					Receipts: 5_000_000,
				},
			},
		},
		Ballotpedia: fakeRatings{
			ratings: []ballotpedia.RaceRating{
				{State: "AZ", District: "01", Rating: "Toss-up", Competitiveness: 50},
				// no race exists for this district
				{State: "NV", District: "03", Rating: "Lean D", Competitiveness: 45},
			},
		},
		Census: fakeCensus{
			byDistrict: map[string]*census.Demographics{
				"AZ-01": {
					Population:      int64Ptr(780_000),
					MedianIncome:    int64Ptr(61_000),
					CollegeEducated: int64Ptr(195_000),
				},
			},
		},
		Wikipedia: fakeWikipedia{
			byName: map[string]*wikipedia.Biography{
				"Maria Garcia": {
					Title:    "Maria Garcia",
					Extract:  "Maria Garcia is an American politician.",
					ImageUrl: "https://example.org/garcia.jpg",
				},
			},
		},
		Civic: fakeCivic{
			hasKey: true,
			elections: []civic.Election{
				{Id: "9000", Name: "US 2026 Midterm Elections", ElectionDay: "2026-11-03", OcdDivisionId: "ocd-division/country:us"},
			},
		},
	}

	service := NewService(store, scorer, sources, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	summary, err := service.Run(ctx)
	require.NoError(t, err)
	require.Zero(t, summary.Failed)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4, stats.Candidates)
	require.EqualValues(t, 3, stats.Races)
	require.EqualValues(t, 15, stats.Issues)
	require.EqualValues(t, 4, stats.ImpactScores)
	require.EqualValues(t, 1, stats.CompetitiveRaces)

	qry := store.Queries()

	// the challenger ends up outspent 1:3 in a rated toss-up
	underdogId, err := qry.GetCandidateIdByFec(ctx, "H6AZ01001")
	require.NoError(t, err)
	finance, err := qry.GetFinance(ctx, underdogId)
	require.NoError(t, err)
	require.Equal(t, 1_200_000.0, finance.OpponentTotalReceipts.Float64)
	require.Equal(t, 94.0, finance.DonationLeverageScore.Float64)
	require.Equal(t, 75.0, finance.SmallDollarPercentage.Float64)

	// candidates without filings are skipped, not failed
	require.Contains(t, summary.Issues, RecordResult{
		Source: "fec/house",
		Key:    "H6TX23003",
		Status: StatusSkipped,
		Reason: "no filings on record",
	})

	// ratings for districts with no ingested race are skipped
	require.Contains(t, summary.Issues, RecordResult{
		Source: "ballotpedia",
		Key:    "NV-03",
		Status: StatusSkipped,
		Reason: "no matching race",
	})

	demos, err := qry.ListDemographics(ctx)
	require.NoError(t, err)
	require.Len(t, demos, 1)
	require.EqualValues(t, 780_000, demos[0].Population.Int64)
	require.InDelta(t, 25.0, demos[0].CollegeEducatedPercentage.Float64, 0.01)

	// party heuristic assigned issue positions during the run
	positions, err := qry.ListCandidateIssues(ctx)
	require.NoError(t, err)
	require.Len(t, positions, 6+5+6+6)

	log, err := qry.ListSourceLog(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(log), 5)
}

func TestRunRatingsFallback(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/ingest/fallback",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := campaignstore.NewService(setup.DB)
	scorer := scoring.NewService(store, scoring.DefaultBaselines())

	service := NewService(store, scorer, Sources{
		Ballotpedia: fakeRatings{err: errors.New("layout changed")},
		Civic:       fakeCivic{hasKey: false},
	}, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	summary, err := service.Run(ctx)
	require.NoError(t, err)

	// the default battleground list was consulted but no races exist,
	// so every entry reports as skipped
	require.Equal(t, len(ballotpedia.DefaultRatings())+1, summary.Skipped)

	// the failed fetch is on the audit log
	log, err := store.Queries().ListSourceLog(ctx)
	require.NoError(t, err)
	found := false
	for _, entry := range log {
		if entry.SourceName == "ballotpedia" && entry.Status == campaignstore.SourceStatusError {
			found = true
			require.Contains(t, entry.ErrorMessage.String, "layout changed")
		}
	}
	require.True(t, found)
}

func TestRunCandidateFetchFailure(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/ingest/fec-down",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := campaignstore.NewService(setup.DB)
	scorer := scoring.NewService(store, scoring.DefaultBaselines())

	service := NewService(store, scorer, Sources{
		Fec: fakeFec{err: errors.New("connection refused")},
	}, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	// an unreachable feed still yields a summary
	summary, err := service.Run(ctx)
	require.NoError(t, err)

	// both chambers report the fetch failure
	require.Equal(t, 2, summary.Failed)
	require.Contains(t, summary.Issues, RecordResult{
		Source: "fec/house",
		Key:    "candidates",
		Status: StatusFailed,
		Reason: "connection refused",
	})
	require.Contains(t, summary.Issues, RecordResult{
		Source: "fec/senate",
		Key:    "candidates",
		Status: StatusFailed,
		Reason: "connection refused",
	})

	log, err := store.Queries().ListSourceLog(ctx)
	require.NoError(t, err)
	statuses := map[string]string{}
	for _, entry := range log {
		statuses[entry.SourceName] = entry.Status
	}
	require.Equal(t, campaignstore.SourceStatusError, statuses["fec/house"])
	require.Equal(t, campaignstore.SourceStatusError, statuses["fec/senate"])
}

func TestRunPersistenceFailure(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/ingest/write-failure",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := campaignstore.NewService(setup.DB)
	scorer := scoring.NewService(store, scoring.DefaultBaselines())

	_, err := setup.DB.Exec("DROP TABLE candidate_issues")
	require.NoError(t, err)

	service := NewService(store, scorer, Sources{
		Fec: fakeFec{house: []fec.Candidate{{
			CandidateId:     "H6CA13001",
			Name:            "LOPEZ, ANA",
			PartyFull:       "DEMOCRATIC PARTY",
			Office:          "H",
			State:           "CA",
			District:        "13",
			CandidateStatus: "C",
		}}},
	}, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	summary, err := service.Run(ctx)
	require.NoError(t, err)

	// the write failure lands on the record, not the run
	require.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Issues, 1)
	record := summary.Issues[0]
	require.Equal(t, "fec/house", record.Source)
	require.Equal(t, "H6CA13001", record.Key)
	require.Equal(t, StatusFailed, record.Status)
	require.Contains(t, record.Reason, "candidate_issues")

	// the run carried on through scoring
	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Candidates)
	require.EqualValues(t, 1, stats.ImpactScores)
}

func TestIngestCandidateUnseededIssue(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/ingest/unseeded-issue",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := campaignstore.NewService(setup.DB)
	scorer := scoring.NewService(store, scoring.DefaultBaselines())
	service := NewService(store, scorer, Sources{Fec: fakeFec{}}, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	require.NoError(t, store.SeedIssues(ctx))
	_, err := setup.DB.Exec("DELETE FROM issues WHERE name = 'Climate Change'")
	require.NoError(t, err)

	electionId, err := store.UpsertElection(ctx, campaignstore.Election{
		Date:     "2026-11-03",
		Type:     "GENERAL",
		State:    "US",
		District: "ALL",
	})
	require.NoError(t, err)

	result := service.ingestCandidate(ctx, electionId, "H", fec.Candidate{
		CandidateId:     "H6WA08001",
		Name:            "CHEN, DAVID",
		PartyFull:       "DEMOCRATIC PARTY",
		Office:          "H",
		State:           "WA",
		District:        "08",
		CandidateStatus: "C",
	})

	// the stance on the missing issue is dropped, the candidate is not
	require.Equal(t, StatusSkipped, result.Status)
	require.Equal(t, "no filings on record", result.Reason)

	positions, err := store.Queries().ListCandidateIssues(ctx)
	require.NoError(t, err)
	require.Len(t, positions, 5)
}
