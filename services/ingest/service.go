package ingest

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"donorlens-backend/lib/scrapers/ballotpedia"
	"donorlens-backend/lib/scrapers/census"
	"donorlens-backend/lib/scrapers/civic"
	"donorlens-backend/lib/scrapers/fec"
	"donorlens-backend/lib/scrapers/wikipedia"
	"donorlens-backend/services/campaignstore"
	"donorlens-backend/services/campaignstore/db"
	"donorlens-backend/services/scoring"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("services/ingest")

type CandidateSource interface {
	Candidates(ctx context.Context, req fec.CandidatesRequest) ([]fec.Candidate, error)
	CandidateTotals(ctx context.Context, candidateId string) (*fec.Totals, error)
}

type RatingsSource interface {
	FetchRatings(ctx context.Context) ([]ballotpedia.RaceRating, error)
}

type DemographicsSource interface {
	DistrictDemographics(ctx context.Context, state, district string) (*census.Demographics, error)
}

type BiographySource interface {
	CandidateBiography(ctx context.Context, name string) (*wikipedia.Biography, error)
}

type ElectionsSource interface {
	HasKey() bool
	Elections(ctx context.Context) ([]civic.Election, error)
}

// Sources are the external feeds an ingest run pulls from. Any of them
// may be nil, the corresponding stage is then skipped.
type Sources struct {
	Fec         CandidateSource
	Ballotpedia RatingsSource
	Census      DemographicsSource
	Wikipedia   BiographySource
	Civic       ElectionsSource
}

type Options struct {
	// defaults to 2026
	ElectionYear int
	// defaults to the first Tuesday after Nov 1 of ElectionYear
	GeneralDate string
	// candidate caps per chamber, 300 House / 100 Senate by default
	HouseLimit  int
	SenateLimit int
	// how many districts to enrich with ACS demographics
	DemographicsLimit int
	// how many candidates to enrich with biographies
	BiographyLimit int
}

func (o Options) withDefaults() Options {
	if o.ElectionYear == 0 {
		o.ElectionYear = 2026
	}
	if o.GeneralDate == "" {
		o.GeneralDate = "2026-11-03"
	}
	if o.HouseLimit == 0 {
		o.HouseLimit = 300
	}
	if o.SenateLimit == 0 {
		o.SenateLimit = 100
	}
	if o.DemographicsLimit == 0 {
		o.DemographicsLimit = 20
	}
	if o.BiographyLimit == 0 {
		o.BiographyLimit = 10
	}
	return o
}

type Service struct {
	store   campaignstore.Service
	scorer  scoring.Service
	sources Sources
	opts    Options
}

func NewService(store campaignstore.Service, scorer scoring.Service, sources Sources, opts Options) Service {
	return Service{
		store:   store,
		scorer:  scorer,
		sources: sources,
		opts:    opts.withDefaults(),
	}
}

// ingested tracks what the candidate stage produced so the enrichment
// stages can work off it without re-querying the sources.
type ingested struct {
	candidateId int64
	name        string
	state       string
	district    string
	office      string
}

// Run executes a full ingest: candidates and filings, race ratings,
// demographics, biographies, election metadata, then the funding
// comparison and scoring passes. Individual record failures are
// reported in the summary, only infrastructure errors abort the run.
func (s Service) Run(ctx context.Context) (Summary, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	var summary Summary

	err := s.store.SeedIssues(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return summary, err
	}

	electionId, err := s.store.UpsertElection(ctx, campaignstore.Election{
		Date:        s.opts.GeneralDate,
		Type:        "GENERAL",
		State:       "US",
		District:    "ALL",
		Description: "General Election",
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return summary, err
	}

	var candidates []ingested
	if s.sources.Fec != nil {
		house, err := s.ingestChamber(ctx, &summary, electionId, "H", s.opts.HouseLimit)
		if err != nil {
			return summary, err
		}
		senate, err := s.ingestChamber(ctx, &summary, electionId, "S", s.opts.SenateLimit)
		if err != nil {
			return summary, err
		}
		candidates = append(house, senate...)
	}

	if s.sources.Ballotpedia != nil {
		err = s.ingestRatings(ctx, &summary)
		if err != nil {
			return summary, err
		}
	}
	if s.sources.Census != nil {
		err = s.ingestDemographics(ctx, &summary, candidates)
		if err != nil {
			return summary, err
		}
	}
	if s.sources.Wikipedia != nil {
		err = s.ingestBiographies(ctx, &summary, candidates)
		if err != nil {
			return summary, err
		}
	}
	if s.sources.Civic != nil {
		err = s.ingestElections(ctx, &summary)
		if err != nil {
			return summary, err
		}
	}

	compared, err := s.scorer.CompareRaceFunding(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return summary, err
	}
	scored, err := s.scorer.Recompute(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return summary, err
	}

	slog.InfoContext(ctx, "ingest complete",
		slog.Int("compared", compared),
		slog.Int("scored", scored),
		slog.String("summary", summary.String()))
	span.SetAttributes(
		attribute.Int("ok", summary.Ok),
		attribute.Int("skipped", summary.Skipped),
		attribute.Int("failed", summary.Failed),
	)
	return summary, nil
}

func officeName(code string) string {
	switch code {
	case "H":
		return "House"
	case "S":
		return "Senate"
	default:
		return code
	}
}

func (s Service) ingestChamber(ctx context.Context, summary *Summary, electionId int64, office string, limit int) ([]ingested, error) {
	ctx, span := tracer.Start(ctx, "ingestChamber")
	defer span.End()

	span.SetAttributes(attribute.String("office", office), attribute.Int("limit", limit))
	source := "fec/" + strings.ToLower(officeName(office))

	candidates, err := s.sources.Fec.Candidates(ctx, fec.CandidatesRequest{
		Year:   s.opts.ElectionYear,
		Office: office,
		Limit:  limit,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.WarnContext(ctx, "candidate fetch failed, continuing without this chamber",
			"source", source, "err", err)
		s.store.RecordSourceFetch(ctx, source, "", 0, campaignstore.SourceStatusError, err)
		summary.Add(failed(source, "candidates", err))
		return nil, nil
	}

	var out []ingested
	for _, candidate := range candidates {
		result := s.ingestCandidate(ctx, electionId, office, candidate)
		summary.Add(result.RecordResult)
		if result.RecordResult.Status != StatusFailed {
			out = append(out, result.ingested)
		}
	}

	err = s.store.RecordSourceFetch(ctx, source, "", int64(len(out)), campaignstore.SourceStatusSuccess, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return out, err
	}
	return out, nil
}

type candidateResult struct {
	RecordResult
	ingested
}

// ingestCandidate persists one FEC candidate and their filings. Write
// failures come back as a failed record, never as an error, so one bad
// row cannot sink the chamber.
func (s Service) ingestCandidate(ctx context.Context, electionId int64, office string, candidate fec.Candidate) candidateResult {
	ctx, span := tracer.Start(ctx, "ingestCandidate")
	defer span.End()

	span.SetAttributes(attribute.String("fec_candidate_id", candidate.CandidateId))
	source := "fec/" + strings.ToLower(officeName(office))

	district := candidate.District
	if district == "" {
		// senate seats carry no district number
		district = "00"
	}

	electionYear := int64(0)
	if len(candidate.ElectionYears) > 0 {
		electionYear = int64(candidate.ElectionYears[len(candidate.ElectionYears)-1])
	}

	candidateId, err := s.store.UpsertCandidate(ctx, campaignstore.Candidate{
		FecCandidateId:  candidate.CandidateId,
		Name:            candidate.Name,
		Party:           candidate.PartyFull,
		Office:          officeName(office),
		State:           candidate.State,
		District:        district,
		Incumbent:       candidate.Incumbent(),
		CandidateStatus: candidate.CandidateStatus,
		ElectionYear:    electionYear,
	})
	if err != nil {
		return s.candidateFailed(span, source, candidate.CandidateId, err)
	}

	raceId, err := s.store.EnsureRace(ctx, campaignstore.Race{
		ElectionId:  electionId,
		Office:      officeName(office),
		RaceType:    "GENERAL",
		State:       candidate.State,
		District:    district,
		GeneralDate: s.opts.GeneralDate,
	})
	if err != nil {
		return s.candidateFailed(span, source, candidate.CandidateId, err)
	}
	err = s.store.LinkCandidateToRace(ctx, raceId, candidateId)
	if err != nil {
		return s.candidateFailed(span, source, candidate.CandidateId, err)
	}

	for _, stance := range scoring.IssuesForParty(candidate.PartyFull) {
		err = s.store.AssignIssuePosition(ctx, campaignstore.IssuePosition{
			CandidateId: candidateId,
			IssueName:   stance.Issue,
			Position:    stance.Position,
			Strength:    stance.Strength,
			Priority:    int64(stance.Priority),
		})
		if errors.Is(err, campaignstore.ErrUnknownIssue) {
			// catalog drift, the stance has no home
			slog.WarnContext(ctx, "skipping stance on unseeded issue",
				"candidate", candidate.CandidateId, "issue", stance.Issue)
			continue
		}
		if err != nil {
			return s.candidateFailed(span, source, candidate.CandidateId, err)
		}
	}

	entry := ingested{
		candidateId: candidateId,
		name:        candidate.Name,
		state:       candidate.State,
		district:    district,
		office:      officeName(office),
	}

	totals, err := s.sources.Fec.CandidateTotals(ctx, candidate.CandidateId)
	if err != nil {
		return candidateResult{
			RecordResult: failed(source, candidate.CandidateId, err),
			ingested:     entry,
		}
	}
	if totals == nil {
		return candidateResult{
			RecordResult: skipped(source, candidate.CandidateId, "no filings on record"),
			ingested:     entry,
		}
	}

	err = s.store.ReplaceFinance(ctx, candidateId, financeFromTotals(totals))
	if err != nil {
		return s.candidateFailed(span, source, candidate.CandidateId, err)
	}
	return candidateResult{
		RecordResult: ok(source, candidate.CandidateId),
		ingested:     entry,
	}
}

func (s Service) candidateFailed(span trace.Span, source, key string, err error) candidateResult {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return candidateResult{RecordResult: failed(source, key, err)}
}

func financeFromTotals(totals *fec.Totals) campaignstore.Finance {
	smallDollar := sql.NullFloat64{}
	if totals.Receipts > 0 && totals.IndividualContributions > 0 {
		smallDollar = sql.NullFloat64{
			Float64: totals.IndividualContributions / totals.Receipts * 100,
			Valid:   true,
		}
	}
	period := sql.NullString{}
	if totals.CoverageEndDate != "" {
		period = sql.NullString{String: totals.CoverageEndDate, Valid: true}
	}
	return campaignstore.Finance{
		TotalReceipts:           sql.NullFloat64{Float64: totals.Receipts, Valid: true},
		TotalDisbursements:      sql.NullFloat64{Float64: totals.Disbursements, Valid: true},
		CashOnHand:              sql.NullFloat64{Float64: totals.CashOnHandEndPeriod, Valid: true},
		TotalContributions:      sql.NullFloat64{Float64: totals.Contributions, Valid: true},
		IndividualContributions: sql.NullFloat64{Float64: totals.IndividualContributions, Valid: true},
		PacContributions:        sql.NullFloat64{Float64: totals.PacContributions, Valid: true},
		PartyContributions:      sql.NullFloat64{Float64: totals.PartyContributions, Valid: true},
		CandidateContributions:  sql.NullFloat64{Float64: totals.CandidateContributions, Valid: true},
		SmallDollarPercentage:   smallDollar,
		ReportingPeriodEnd:      period,
	}
}

func (s Service) ingestRatings(ctx context.Context, summary *Summary) error {
	ctx, span := tracer.Start(ctx, "ingestRatings")
	defer span.End()

	ratings, err := s.sources.Ballotpedia.FetchRatings(ctx)
	if err != nil {
		// the ratings page layout shifts often enough that a static
		// battleground list is the fallback rather than a hard failure
		slog.WarnContext(ctx, "race ratings fetch failed, using defaults", "err", err)
		s.store.RecordSourceFetch(ctx, "ballotpedia", "", 0, campaignstore.SourceStatusError, err)
		ratings = ballotpedia.DefaultRatings()
	}

	applied := int64(0)
	for _, rating := range ratings {
		key := rating.State + "-" + rating.District
		raceId, err := s.store.Queries().GetRaceId(ctx, db.GetRaceIdParams{
			Office:      "House",
			State:       rating.State,
			District:    rating.District,
			GeneralDate: s.opts.GeneralDate,
		})
		if errors.Is(err, sql.ErrNoRows) {
			summary.Add(skipped("ballotpedia", key, "no matching race"))
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		err = s.store.SetRaceRating(ctx, raceId, rating.Competitiveness, rating.Rating)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		summary.Add(ok("ballotpedia", key))
		applied++
	}

	return s.store.RecordSourceFetch(ctx, "ballotpedia", "", applied, campaignstore.SourceStatusSuccess, nil)
}

func (s Service) ingestDemographics(ctx context.Context, summary *Summary, candidates []ingested) error {
	ctx, span := tracer.Start(ctx, "ingestDemographics")
	defer span.End()

	seen := map[string]bool{}
	added := int64(0)
	for _, candidate := range candidates {
		if candidate.office != "House" {
			continue
		}
		key := candidate.state + "-" + candidate.district
		if seen[key] {
			continue
		}
		if len(seen) >= s.opts.DemographicsLimit {
			break
		}
		seen[key] = true

		demo, err := s.sources.Census.DistrictDemographics(ctx, candidate.state, candidate.district)
		if err != nil {
			summary.Add(failed("census", key, err))
			continue
		}
		if demo == nil {
			summary.Add(skipped("census", key, "district unknown to the ACS"))
			continue
		}

		err = s.store.UpsertDemographics(ctx, demographicsParams(candidate.state, candidate.district, demo))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		summary.Add(ok("census", key))
		added++
	}

	return s.store.RecordSourceFetch(ctx, "census", "", added, campaignstore.SourceStatusSuccess, nil)
}

func demographicsParams(state, district string, demo *census.Demographics) db.UpsertDemographicsParams {
	params := db.UpsertDemographicsParams{
		State:    state,
		District: district,
	}
	if demo.Population != nil {
		params.Population = sql.NullInt64{Int64: *demo.Population, Valid: true}
	}
	if demo.MedianIncome != nil {
		params.MedianIncome = sql.NullFloat64{Float64: float64(*demo.MedianIncome), Valid: true}
	}
	if demo.CollegeEducated != nil && demo.Population != nil && *demo.Population > 0 {
		params.CollegeEducatedPercentage = sql.NullFloat64{
			Float64: float64(*demo.CollegeEducated) / float64(*demo.Population) * 100,
			Valid:   true,
		}
	}
	return params
}

// displayName converts the FEC's "LAST, FIRST" form into something a
// biography lookup can match.
func displayName(name string) string {
	last, first, found := strings.Cut(name, ", ")
	if !found {
		return name
	}
	return first + " " + last
}

func (s Service) ingestBiographies(ctx context.Context, summary *Summary, candidates []ingested) error {
	ctx, span := tracer.Start(ctx, "ingestBiographies")
	defer span.End()

	added := int64(0)
	for i, candidate := range candidates {
		if i >= s.opts.BiographyLimit {
			break
		}

		bio, err := s.sources.Wikipedia.CandidateBiography(ctx, displayName(candidate.name))
		if err != nil {
			summary.Add(failed("wikipedia", candidate.name, err))
			continue
		}
		if bio == nil {
			summary.Add(skipped("wikipedia", candidate.name, "no article found"))
			continue
		}

		err = s.store.SetCandidateBio(ctx, candidate.candidateId, bio.Extract, bio.ImageUrl)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		summary.Add(ok("wikipedia", candidate.name))
		added++
	}

	return s.store.RecordSourceFetch(ctx, "wikipedia", "", added, campaignstore.SourceStatusSuccess, nil)
}

func (s Service) ingestElections(ctx context.Context, summary *Summary) error {
	ctx, span := tracer.Start(ctx, "ingestElections")
	defer span.End()

	if !s.sources.Civic.HasKey() {
		summary.Add(skipped("civic", "elections", "no api key configured"))
		return s.store.RecordSourceFetch(ctx, "civic", "", 0, campaignstore.SourceStatusSkipped, nil)
	}

	elections, err := s.sources.Civic.Elections(ctx)
	if err != nil {
		summary.Add(failed("civic", "elections", err))
		return s.store.RecordSourceFetch(ctx, "civic", "", 0, campaignstore.SourceStatusError, err)
	}

	added := int64(0)
	for _, election := range elections {
		_, err := s.store.UpsertElection(ctx, campaignstore.Election{
			Date:        election.ElectionDay,
			Type:        "CIVIC",
			State:       "US",
			District:    election.OcdDivisionId,
			Description: election.Name,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		summary.Add(ok("civic", election.Id))
		added++
	}

	return s.store.RecordSourceFetch(ctx, "civic", "", added, campaignstore.SourceStatusSuccess, nil)
}
