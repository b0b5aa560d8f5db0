package campaignstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"donorlens-backend/services/campaignstore/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/campaignstore")

// ErrUnknownIssue marks an issue name with no row in the catalog.
var ErrUnknownIssue = errors.New("unknown issue")

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// Queries exposes the read side for callers that only need lookups.
func (s Service) Queries() *db.Queries {
	return s.qry
}

type Election struct {
	Date        string
	Type        string
	State       string
	District    string
	Description string
}

// UpsertElection returns the id of the existing row when one matches the
// natural key, otherwise it inserts.
func (s Service) UpsertElection(ctx context.Context, e Election) (int64, error) {
	ctx, span := tracer.Start(ctx, "UpsertElection")
	defer span.End()

	id, err := s.qry.GetElectionId(ctx, db.GetElectionIdParams{
		ElectionDate: e.Date,
		ElectionType: e.Type,
		State:        e.State,
		District:     e.District,
	})
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	id, err = s.qry.CreateElection(ctx, db.CreateElectionParams{
		ElectionDate: e.Date,
		ElectionType: e.Type,
		State:        e.State,
		District:     e.District,
		Description:  e.Description,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return id, nil
}

type Candidate struct {
	FecCandidateId  string
	Name            string
	Party           string
	Office          string
	State           string
	District        string
	Incumbent       bool
	CandidateStatus string
	ElectionYear    int64
}

func electionYear(year int64) sql.NullInt64 {
	if year == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: year, Valid: true}
}

// UpsertCandidate keys on the FEC candidate id. Repeated ingest runs
// update the row in place rather than duplicating it.
func (s Service) UpsertCandidate(ctx context.Context, c Candidate) (int64, error) {
	ctx, span := tracer.Start(ctx, "UpsertCandidate")
	defer span.End()

	span.SetAttributes(attribute.String("fec_candidate_id", c.FecCandidateId))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	id, err := txqry.GetCandidateIdByFec(ctx, c.FecCandidateId)
	switch {
	case err == nil:
		err = txqry.UpdateCandidate(ctx, db.UpdateCandidateParams{
			Name:            c.Name,
			Party:           c.Party,
			Office:          c.Office,
			State:           c.State,
			District:        c.District,
			Incumbent:       c.Incumbent,
			CandidateStatus: c.CandidateStatus,
			ElectionYear:    electionYear(c.ElectionYear),
			FecCandidateID:  c.FecCandidateId,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
	case errors.Is(err, sql.ErrNoRows):
		id, err = txqry.CreateCandidate(ctx, db.CreateCandidateParams{
			FecCandidateID:  c.FecCandidateId,
			Name:            c.Name,
			Party:           c.Party,
			Office:          c.Office,
			State:           c.State,
			District:        c.District,
			Incumbent:       c.Incumbent,
			CandidateStatus: c.CandidateStatus,
			ElectionYear:    electionYear(c.ElectionYear),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return id, nil
}

type Race struct {
	ElectionId  int64
	Office      string
	RaceType    string
	State       string
	District    string
	GeneralDate string
}

// EnsureRace returns the id of the race identified by
// (office, state, district, general_date), creating it when missing.
func (s Service) EnsureRace(ctx context.Context, r Race) (int64, error) {
	ctx, span := tracer.Start(ctx, "EnsureRace")
	defer span.End()

	id, err := s.qry.GetRaceId(ctx, db.GetRaceIdParams{
		Office:      r.Office,
		State:       r.State,
		District:    r.District,
		GeneralDate: r.GeneralDate,
	})
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	electionId := sql.NullInt64{}
	if r.ElectionId != 0 {
		electionId = sql.NullInt64{Int64: r.ElectionId, Valid: true}
	}
	id, err = s.qry.CreateRace(ctx, db.CreateRaceParams{
		ElectionID:  electionId,
		Office:      r.Office,
		RaceType:    r.RaceType,
		State:       r.State,
		District:    r.District,
		GeneralDate: r.GeneralDate,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return id, nil
}

func (s Service) LinkCandidateToRace(ctx context.Context, raceId, candidateId int64) error {
	ctx, span := tracer.Start(ctx, "LinkCandidateToRace")
	defer span.End()

	err := s.qry.LinkCandidateToRace(ctx, db.LinkCandidateToRaceParams{
		RaceID:      raceId,
		CandidateID: candidateId,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s Service) WithdrawCandidate(ctx context.Context, raceId, candidateId int64, date string) error {
	ctx, span := tracer.Start(ctx, "WithdrawCandidate")
	defer span.End()

	withdrawalDate := sql.NullString{}
	if date != "" {
		withdrawalDate = sql.NullString{String: date, Valid: true}
	}
	err := s.qry.WithdrawCandidate(ctx, db.WithdrawCandidateParams{
		WithdrawalDate: withdrawalDate,
		RaceID:         raceId,
		CandidateID:    candidateId,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s Service) SetRaceRating(ctx context.Context, raceId int64, competitiveness float64, cookRating string) error {
	ctx, span := tracer.Start(ctx, "SetRaceRating")
	defer span.End()

	rating := sql.NullString{}
	if cookRating != "" {
		rating = sql.NullString{String: cookRating, Valid: true}
	}
	err := s.qry.SetRaceRating(ctx, db.SetRaceRatingParams{
		CompetitivenessScore: sql.NullFloat64{Float64: competitiveness, Valid: true},
		CookRating:           rating,
		ID:                   raceId,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Finance holds one candidate's filing totals. NaN is not an accepted
// value; absent figures use the Valid flag.
type Finance struct {
	TotalReceipts           sql.NullFloat64
	TotalDisbursements      sql.NullFloat64
	CashOnHand              sql.NullFloat64
	TotalContributions      sql.NullFloat64
	IndividualContributions sql.NullFloat64
	PacContributions        sql.NullFloat64
	PartyContributions      sql.NullFloat64
	CandidateContributions  sql.NullFloat64
	SmallDollarPercentage   sql.NullFloat64
	ReportingPeriodEnd      sql.NullString
}

// ReplaceFinance swaps out the candidate's finance row wholesale. Each
// candidate carries at most one row so stale totals never linger.
func (s Service) ReplaceFinance(ctx context.Context, candidateId int64, f Finance) error {
	ctx, span := tracer.Start(ctx, "ReplaceFinance")
	defer span.End()

	span.SetAttributes(attribute.Int64("candidate_id", candidateId))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeleteFinance(ctx, candidateId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	err = txqry.CreateFinance(ctx, db.CreateFinanceParams{
		CandidateID:             candidateId,
		TotalReceipts:           f.TotalReceipts,
		TotalDisbursements:      f.TotalDisbursements,
		CashOnHand:              f.CashOnHand,
		TotalContributions:      f.TotalContributions,
		IndividualContributions: f.IndividualContributions,
		PacContributions:        f.PacContributions,
		PartyContributions:      f.PartyContributions,
		CandidateContributions:  f.CandidateContributions,
		SmallDollarPercentage:   f.SmallDollarPercentage,
		ReportingPeriodEnd:      f.ReportingPeriodEnd,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

type FinanceComparison struct {
	OpponentTotalReceipts sql.NullFloat64
	FundingGap            sql.NullFloat64
	FundingRatio          sql.NullFloat64
	DonationLeverageScore sql.NullFloat64
}

func (s Service) SetFinanceComparison(ctx context.Context, candidateId int64, cmp FinanceComparison) error {
	ctx, span := tracer.Start(ctx, "SetFinanceComparison")
	defer span.End()

	err := s.qry.SetFinanceComparison(ctx, db.SetFinanceComparisonParams{
		OpponentTotalReceipts: cmp.OpponentTotalReceipts,
		FundingGap:            cmp.FundingGap,
		FundingRatio:          cmp.FundingRatio,
		DonationLeverageScore: cmp.DonationLeverageScore,
		CandidateID:           candidateId,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s Service) SetCandidateBio(ctx context.Context, candidateId int64, bio, imageUrl string) error {
	ctx, span := tracer.Start(ctx, "SetCandidateBio")
	defer span.End()

	bioVal := sql.NullString{}
	if bio != "" {
		bioVal = sql.NullString{String: bio, Valid: true}
	}
	imageVal := sql.NullString{}
	if imageUrl != "" {
		imageVal = sql.NullString{String: imageUrl, Valid: true}
	}
	err := s.qry.SetCandidateBio(ctx, db.SetCandidateBioParams{
		Bio:      bioVal,
		ImageUrl: imageVal,
		ID:       candidateId,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s Service) UpsertDemographics(ctx context.Context, arg db.UpsertDemographicsParams) error {
	ctx, span := tracer.Start(ctx, "UpsertDemographics")
	defer span.End()

	err := s.qry.UpsertDemographics(ctx, arg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

type IssuePosition struct {
	CandidateId int64
	IssueName   string
	Position    string
	Strength    string
	Priority    int64
}

// AssignIssuePosition links a candidate to an issue by name. The issue
// must already exist, typically via SeedIssues.
func (s Service) AssignIssuePosition(ctx context.Context, p IssuePosition) error {
	ctx, span := tracer.Start(ctx, "AssignIssuePosition")
	defer span.End()

	issues, err := s.qry.ListIssues(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	var issueId int64
	for _, issue := range issues {
		if issue.Name == p.IssueName {
			issueId = issue.ID
			break
		}
	}
	if issueId == 0 {
		err := fmt.Errorf("%w: %s", ErrUnknownIssue, p.IssueName)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = s.qry.CreateCandidateIssue(ctx, db.CreateCandidateIssueParams{
		CandidateID: p.CandidateId,
		IssueID:     issueId,
		Position:    p.Position,
		Strength:    p.Strength,
		Priority:    p.Priority,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// data_sources row statuses.
const (
	SourceStatusSuccess = "success"
	SourceStatusError   = "error"
	SourceStatusSkipped = "skipped"
)

func (s Service) RecordSourceFetch(ctx context.Context, name, url string, recordsAdded int64, status string, fetchErr error) error {
	ctx, span := tracer.Start(ctx, "RecordSourceFetch")
	defer span.End()

	message := sql.NullString{}
	if fetchErr != nil {
		message = sql.NullString{String: fetchErr.Error(), Valid: true}
	}
	err := s.qry.CreateSourceLog(ctx, db.CreateSourceLogParams{
		SourceName:   name,
		SourceUrl:    url,
		RecordsAdded: recordsAdded,
		Status:       status,
		ErrorMessage: message,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

type Stats struct {
	Candidates       int64
	Races            int64
	Issues           int64
	ImpactScores     int64
	HighImpact       int64
	CompetitiveRaces int64
}

func (s Service) Stats(ctx context.Context) (Stats, error) {
	ctx, span := tracer.Start(ctx, "Stats")
	defer span.End()

	var out Stats
	counts := []struct {
		dest  *int64
		count func(context.Context) (int64, error)
	}{
		{&out.Candidates, s.qry.CountCandidates},
		{&out.Races, s.qry.CountRaces},
		{&out.Issues, s.qry.CountIssues},
		{&out.ImpactScores, s.qry.CountImpactScores},
		{&out.HighImpact, s.qry.CountHighImpact},
		{&out.CompetitiveRaces, s.qry.CountCompetitiveRaces},
	}
	for _, c := range counts {
		value, err := c.count(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Stats{}, err
		}
		*c.dest = value
	}
	return out, nil
}
