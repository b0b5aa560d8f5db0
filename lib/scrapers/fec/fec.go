package fec

import (
	"context"
	"donorlens-backend/lib/telemetry"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/fec")

// DemoKey is the rate-limited key the FEC hands out without registration.
const DemoKey = "DEMO_KEY"

const defaultBaseUrl = "https://api.open.fec.gov/v1"

type ClientOptions struct {
	BaseUrl string
	ApiKey  string
	// pause after each request, respecting the FEC rate limit
	Delay time.Duration
}

type Client struct {
	http   *resty.Client
	apiKey string
	delay  time.Duration
}

func NewClient(opts ClientOptions) Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = defaultBaseUrl
	}
	if opts.ApiKey == "" {
		opts.ApiKey = DemoKey
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetHeader("user-agent", "donorlens/1.0")
	client.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(client, "scrapers/fec/http")

	return Client{
		http:   client,
		apiKey: opts.ApiKey,
		delay:  opts.Delay,
	}
}

type Candidate struct {
	CandidateId        string `json:"candidate_id"`
	Name               string `json:"name"`
	Party              string `json:"party"`
	PartyFull          string `json:"party_full"`
	Office             string `json:"office"`
	OfficeFull         string `json:"office_full"`
	State              string `json:"state"`
	District           string `json:"district"`
	IncumbentChallenge string `json:"incumbent_challenge_full"`
	CandidateStatus    string `json:"candidate_status"`
	ElectionYears      []int  `json:"election_years"`
}

// Incumbent reports whether the FEC labels this candidate the incumbent
// of the seat they are running for.
func (c Candidate) Incumbent() bool {
	return c.IncumbentChallenge == "Incumbent"
}

type candidatesResponse struct {
	Results []Candidate `json:"results"`
}

type CandidatesRequest struct {
	Year int
	// "H", "S", "P" or empty for all
	Office string
	Limit  int
}

// Candidates pages through /candidates/ until either the requested limit
// is reached or the API runs out of records.
func (c Client) Candidates(ctx context.Context, req CandidatesRequest) ([]Candidate, error) {
	ctx, span := tracer.Start(ctx, "Candidates")
	defer span.End()

	var candidates []Candidate
	page := 1

	for len(candidates) < req.Limit {
		perPage := req.Limit - len(candidates)
		if perPage > 100 {
			perPage = 100
		}

		r := c.http.R().
			SetContext(ctx).
			SetQueryParam("api_key", c.apiKey).
			SetQueryParam("election_year", strconv.Itoa(req.Year)).
			SetQueryParam("per_page", strconv.Itoa(perPage)).
			SetQueryParam("page", strconv.Itoa(page)).
			SetQueryParam("sort", "name").
			SetQueryParam("candidate_status", "C")
		if req.Office != "" {
			r.SetQueryParam("office", req.Office)
		}

		var body candidatesResponse
		res, err := r.SetResult(&body).Get("/candidates/")
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch candidates")
			return candidates, err
		}
		if res.IsError() {
			err = fmt.Errorf("fec candidates: %s", res.Status())
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch candidates")
			return candidates, err
		}

		if len(body.Results) == 0 {
			break
		}
		candidates = append(candidates, body.Results...)
		page++

		time.Sleep(c.delay)

		if len(body.Results) < perPage {
			break
		}
	}

	if len(candidates) > req.Limit {
		candidates = candidates[:req.Limit]
	}
	return candidates, nil
}

type Totals struct {
	Receipts                float64 `json:"receipts"`
	Disbursements           float64 `json:"disbursements"`
	CashOnHandEndPeriod     float64 `json:"cash_on_hand_end_period"`
	Contributions           float64 `json:"contributions"`
	IndividualContributions float64 `json:"individual_contributions"`
	PacContributions        float64 `json:"other_political_committee_contributions"`
	PartyContributions      float64 `json:"political_party_committee_contributions"`
	CandidateContributions  float64 `json:"candidate_contribution"`
	CoverageEndDate         string  `json:"coverage_end_date"`
}

type totalsResponse struct {
	Results []Totals `json:"results"`
}

// CandidateTotals returns the latest-cycle financial totals for one
// candidate, or nil when the FEC has none on file.
func (c Client) CandidateTotals(ctx context.Context, candidateId string) (*Totals, error) {
	ctx, span := tracer.Start(ctx, "CandidateTotals")
	defer span.End()

	var body totalsResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey).
		SetQueryParam("per_page", "1").
		SetQueryParam("sort", "-cycle").
		SetResult(&body).
		Get(fmt.Sprintf("/candidate/%s/totals/", candidateId))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch candidate totals")
		return nil, err
	}
	if res.IsError() {
		err = fmt.Errorf("fec totals: %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch candidate totals")
		return nil, err
	}

	if len(body.Results) == 0 {
		return nil, nil
	}

	time.Sleep(c.delay)
	return &body.Results[0], nil
}
