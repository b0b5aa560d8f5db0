package census

import (
	"context"
	"donorlens-backend/lib/telemetry"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/census")

const defaultBaseUrl = "https://api.census.gov/data/2021/acs/acs5"

// the ACS returns this in place of suppressed or unavailable estimates
const suppressedSentinel = "-666666666"

// B01003_001E total population, B19013_001E median household income,
// B15003_022E bachelor's degrees, B01001_001E total (for percentages)
const acsVariables = "B01003_001E,B19013_001E,B15003_022E,B01001_001E"

type ClientOptions struct {
	BaseUrl string
	Delay   time.Duration
}

type Client struct {
	http  *resty.Client
	delay time.Duration
}

func NewClient(opts ClientOptions) Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = defaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(client, "scrapers/census/http")

	return Client{http: client, delay: opts.Delay}
}

type Demographics struct {
	Population      *int64
	MedianIncome    *int64
	CollegeEducated *int64
}

// DistrictDemographics fetches ACS 5-year estimates for one congressional
// district. It returns nil when the district is unknown to the ACS.
func (c Client) DistrictDemographics(ctx context.Context, state, district string) (*Demographics, error) {
	ctx, span := tracer.Start(ctx, "DistrictDemographics")
	defer span.End()

	fips, ok := stateFips[state]
	if !ok {
		return nil, fmt.Errorf("unknown state abbreviation: %q", state)
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("get", acsVariables).
		SetQueryParam("for", fmt.Sprintf("congressional district:%s", district)).
		SetQueryParam("in", fmt.Sprintf("state:%s", fips)).
		Get("")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch district demographics")
		return nil, err
	}
	if res.IsError() {
		err = fmt.Errorf("census acs5: %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch district demographics")
		return nil, err
	}

	// the census api speaks rows of strings, header row first
	var rows [][]string
	err = json.Unmarshal(res.Body(), &rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode census response")
		return nil, err
	}
	if len(rows) < 2 || len(rows[1]) < 3 {
		return nil, nil
	}

	values := rows[1]
	out := &Demographics{
		Population:      parseEstimate(values[0]),
		MedianIncome:    parseEstimate(values[1]),
		CollegeEducated: parseEstimate(values[2]),
	}

	time.Sleep(c.delay)
	return out, nil
}

func parseEstimate(v string) *int64 {
	if v == "" || v == suppressedSentinel {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

var stateFips = map[string]string{
	"AL": "01", "AK": "02", "AZ": "04", "AR": "05", "CA": "06",
	"CO": "08", "CT": "09", "DE": "10", "FL": "12", "GA": "13",
	"HI": "15", "ID": "16", "IL": "17", "IN": "18", "IA": "19",
	"KS": "20", "KY": "21", "LA": "22", "ME": "23", "MD": "24",
	"MA": "25", "MI": "26", "MN": "27", "MS": "28", "MO": "29",
	"MT": "30", "NE": "31", "NV": "32", "NH": "33", "NJ": "34",
	"NM": "35", "NY": "36", "NC": "37", "ND": "38", "OH": "39",
	"OK": "40", "OR": "41", "PA": "42", "RI": "44", "SC": "45",
	"SD": "46", "TN": "47", "TX": "48", "UT": "49", "VT": "50",
	"VA": "51", "WA": "53", "WV": "54", "WI": "55", "WY": "56",
}
