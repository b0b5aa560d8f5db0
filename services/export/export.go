package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"donorlens-backend/services/campaignstore"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/export")

type Service struct {
	store campaignstore.Service
}

func NewService(store campaignstore.Service) Service {
	return Service{store: store}
}

type CandidateRecord struct {
	Id                      int64    `json:"id"`
	Name                    string   `json:"name"`
	Party                   string   `json:"party"`
	Office                  string   `json:"office"`
	State                   string   `json:"state"`
	District                string   `json:"district"`
	Incumbent               bool     `json:"incumbent"`
	ElectionYear            *int64   `json:"election_year"`
	TotalReceipts           *float64 `json:"total_receipts"`
	TotalDisbursements      *float64 `json:"total_disbursements"`
	CashOnHand              *float64 `json:"cash_on_hand"`
	IndividualContributions *float64 `json:"individual_contributions"`
	OpponentTotalReceipts   *float64 `json:"opponent_total_receipts"`
	FundingGap              *float64 `json:"funding_gap"`
	DonationLeverageScore   *float64 `json:"donation_leverage_score"`
	SmallDollarPercentage   *float64 `json:"small_dollar_percentage"`
	OverallImpactScore      *float64 `json:"overall_impact_score"`
	CompetitivenessScore    *float64 `json:"competitiveness_score"`
	FundingLeverageScore    *float64 `json:"funding_leverage_score"`
	RecommendationTier      *string  `json:"recommendation_tier"`
}

type RaceRecord struct {
	Id                   int64    `json:"id"`
	Office               string   `json:"office"`
	RaceType             string   `json:"race_type"`
	State                string   `json:"state"`
	District             string   `json:"district"`
	GeneralDate          string   `json:"general_date"`
	CompetitivenessScore *float64 `json:"competitiveness_score"`
	CookRating           *string  `json:"cook_rating"`
	IsSwingDistrict      bool     `json:"is_swing_district"`
	CandidateCount       int64    `json:"candidate_count"`
}

type IssueRecord struct {
	Id             int64  `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	CandidateCount int64  `json:"candidate_count"`
}

type CandidateIssueRecord struct {
	CandidateId int64  `json:"candidate_id"`
	IssueId     int64  `json:"issue_id"`
	IssueName   string `json:"issue_name"`
	Position    string `json:"position"`
	Strength    string `json:"strength"`
	Priority    int64  `json:"priority"`
}

type DemographicsRecord struct {
	State                     string   `json:"state"`
	District                  string   `json:"district"`
	Population                *int64   `json:"population"`
	MedianIncome              *float64 `json:"median_income"`
	CollegeEducatedPercentage *float64 `json:"college_educated_percentage"`
}

type StatsRecord struct {
	TotalCandidates      int64  `json:"total_candidates"`
	TotalRaces           int64  `json:"total_races"`
	TotalIssues          int64  `json:"total_issues"`
	HighImpactCandidates int64  `json:"high_impact_candidates"`
	CompetitiveRaces     int64  `json:"competitive_races"`
	LastUpdated          string `json:"last_updated"`
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func writeJson(dir, name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), append(raw, '\n'), 0644)
}

// WriteJson dumps the datastore into the flat JSON files the web
// frontend reads. Files land in dir, which is created when missing.
func (s Service) WriteJson(ctx context.Context, dir string) error {
	ctx, span := tracer.Start(ctx, "WriteJson")
	defer span.End()

	span.SetAttributes(attribute.String("dir", dir))

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	qry := s.store.Queries()

	candidateRows, err := qry.ListCandidateExport(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	candidates := make([]CandidateRecord, len(candidateRows))
	for i, r := range candidateRows {
		candidates[i] = CandidateRecord{
			Id:                      r.ID,
			Name:                    r.Name,
			Party:                   r.Party,
			Office:                  r.Office,
			State:                   r.State,
			District:                r.District,
			Incumbent:               r.Incumbent,
			ElectionYear:            nullInt(r.ElectionYear),
			TotalReceipts:           nullFloat(r.TotalReceipts),
			TotalDisbursements:      nullFloat(r.TotalDisbursements),
			CashOnHand:              nullFloat(r.CashOnHand),
			IndividualContributions: nullFloat(r.IndividualContributions),
			OpponentTotalReceipts:   nullFloat(r.OpponentTotalReceipts),
			FundingGap:              nullFloat(r.FundingGap),
			DonationLeverageScore:   nullFloat(r.DonationLeverageScore),
			SmallDollarPercentage:   nullFloat(r.SmallDollarPercentage),
			OverallImpactScore:      nullFloat(r.OverallImpactScore),
			CompetitivenessScore:    nullFloat(r.CompetitivenessScore),
			FundingLeverageScore:    nullFloat(r.FundingLeverageScore),
			RecommendationTier:      nullString(r.RecommendationTier),
		}
	}

	raceRows, err := qry.ListRacesWithCandidateCount(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	races := make([]RaceRecord, len(raceRows))
	for i, r := range raceRows {
		races[i] = RaceRecord{
			Id:                   r.ID,
			Office:               r.Office,
			RaceType:             r.RaceType,
			State:                r.State,
			District:             r.District,
			GeneralDate:          r.GeneralDate,
			CompetitivenessScore: nullFloat(r.CompetitivenessScore),
			CookRating:           nullString(r.CookRating),
			IsSwingDistrict:      r.IsSwingDistrict,
			CandidateCount:       r.CandidateCount,
		}
	}

	issueRows, err := qry.ListIssuesWithCandidateCount(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	issues := make([]IssueRecord, len(issueRows))
	for i, r := range issueRows {
		issues[i] = IssueRecord{
			Id:             r.ID,
			Name:           r.Name,
			Category:       r.Category,
			Description:    r.Description,
			CandidateCount: r.CandidateCount,
		}
	}

	positionRows, err := qry.ListCandidateIssues(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	positions := make([]CandidateIssueRecord, len(positionRows))
	for i, r := range positionRows {
		positions[i] = CandidateIssueRecord{
			CandidateId: r.CandidateID,
			IssueId:     r.IssueID,
			IssueName:   r.IssueName,
			Position:    r.Position,
			Strength:    r.Strength,
			Priority:    r.Priority,
		}
	}

	demoRows, err := qry.ListDemographics(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	demographics := make([]DemographicsRecord, len(demoRows))
	for i, r := range demoRows {
		demographics[i] = DemographicsRecord{
			State:                     r.State,
			District:                  r.District,
			Population:                nullInt(r.Population),
			MedianIncome:              nullFloat(r.MedianIncome),
			CollegeEducatedPercentage: nullFloat(r.CollegeEducatedPercentage),
		}
	}

	dbStats, err := s.store.Stats(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	stats := StatsRecord{
		TotalCandidates:      dbStats.Candidates,
		TotalRaces:           dbStats.Races,
		TotalIssues:          dbStats.Issues,
		HighImpactCandidates: dbStats.HighImpact,
		CompetitiveRaces:     dbStats.CompetitiveRaces,
		LastUpdated:          time.Now().UTC().Format(time.RFC3339),
	}

	files := []struct {
		name string
		data any
	}{
		{"candidates.json", candidates},
		{"races.json", races},
		{"issues.json", issues},
		{"candidate-issues.json", positions},
		{"demographics.json", demographics},
		{"stats.json", stats},
	}
	for _, f := range files {
		err = writeJson(dir, f.name, f.data)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	return nil
}
