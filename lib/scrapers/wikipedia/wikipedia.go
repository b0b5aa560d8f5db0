package wikipedia

import (
	"context"
	"donorlens-backend/lib/telemetry"
	"fmt"
	"time"

	"github.com/antzucaro/matchr"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/wikipedia")

const defaultBaseUrl = "https://en.wikipedia.org/w/api.php"

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
	client.SetHeader("user-agent", "donorlens/1.0")
	client.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(client, "scrapers/wikipedia/http")

	return Client{http: client, delay: opts.Delay}
}

type Biography struct {
	Title    string
	Extract  string
	ImageUrl string
}

type queryResponse struct {
	Query struct {
		Pages map[string]struct {
			Title    string `json:"title"`
			Extract  string `json:"extract"`
			Original struct {
				Source string `json:"source"`
			} `json:"original"`
		} `json:"pages"`
	} `json:"query"`
}

// CandidateBiography looks up the intro extract and lead image for a
// candidate. When the API returns several pages, the title closest to the
// requested name wins. Returns nil when no page has an extract.
func (c Client) CandidateBiography(ctx context.Context, name string) (*Biography, error) {
	ctx, span := tracer.Start(ctx, "CandidateBiography")
	defer span.End()

	var body queryResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":      "query",
			"format":      "json",
			"titles":      name,
			"prop":        "extracts|pageimages",
			"exintro":     "true",
			"explaintext": "true",
			"piprop":      "original",
		}).
		SetResult(&body).
		Get("")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch candidate biography")
		return nil, err
	}
	if res.IsError() {
		err = fmt.Errorf("wikipedia query: %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch candidate biography")
		return nil, err
	}

	var best *Biography
	var bestSimilarity float64
	for _, page := range body.Query.Pages {
		if page.Extract == "" {
			continue
		}
		similarity := matchr.JaroWinkler(name, page.Title, false)
		if best == nil || similarity > bestSimilarity {
			best = &Biography{
				Title:    page.Title,
				Extract:  page.Extract,
				ImageUrl: page.Original.Source,
			}
			bestSimilarity = similarity
		}
	}

	if best != nil {
		time.Sleep(c.delay)
	}
	return best, nil
}
