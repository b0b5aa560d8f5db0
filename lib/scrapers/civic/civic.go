package civic

import (
	"context"
	"donorlens-backend/lib/telemetry"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/civic")

const defaultBaseUrl = "https://www.googleapis.com/civicinfo/v2"

type ClientOptions struct {
	BaseUrl string
	// the google civic api refuses requests without a key
	ApiKey string
	Delay  time.Duration
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

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(client, "scrapers/civic/http")

	return Client{http: client, apiKey: opts.ApiKey, delay: opts.Delay}
}

// HasKey reports whether the client was configured with an api key.
// Without one the source should be skipped, not treated as failing.
func (c Client) HasKey() bool {
	return c.apiKey != ""
}

type Election struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	ElectionDay   string `json:"electionDay"`
	OcdDivisionId string `json:"ocdDivisionId"`
}

type electionsResponse struct {
	Elections []Election `json:"elections"`
}

func (c Client) Elections(ctx context.Context) ([]Election, error) {
	ctx, span := tracer.Start(ctx, "Elections")
	defer span.End()

	if !c.HasKey() {
		return nil, fmt.Errorf("google civic api key not provided")
	}

	var body electionsResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetResult(&body).
		Get("/elections")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch elections")
		return nil, err
	}
	if res.IsError() {
		err = fmt.Errorf("google civic elections: %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch elections")
		return nil, err
	}

	time.Sleep(c.delay)
	return body.Elections, nil
}
