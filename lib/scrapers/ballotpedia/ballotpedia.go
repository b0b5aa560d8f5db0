package ballotpedia

import (
	"bytes"
	"context"
	"donorlens-backend/lib/telemetry"
	"fmt"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/ballotpedia")

const defaultRatingsUrl = "https://ballotpedia.org/United_States_Congress_elections,_2026"

type ClientOptions struct {
	RatingsUrl string
	Delay      time.Duration
}

type Client struct {
	http       *resty.Client
	ratingsUrl string
	delay      time.Duration
}

func NewClient(opts ClientOptions) Client {
	if opts.RatingsUrl == "" {
		opts.RatingsUrl = defaultRatingsUrl
	}

	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	telemetry.InstrumentResty(client, "scrapers/ballotpedia/http")

	return Client{
		http:       client,
		ratingsUrl: opts.RatingsUrl,
		delay:      opts.Delay,
	}
}

type RaceRating struct {
	State    string
	District string
	Rating   string
	// 0-100, 50 is a perfect toss-up
	Competitiveness float64
}

// race ratings expressed as distance from a toss-up
var ratingCompetitiveness = map[string]float64{
	"Toss-up":  50,
	"Tilt D":   48,
	"Tilt R":   52,
	"Lean D":   45,
	"Lean R":   55,
	"Likely D": 35,
	"Likely R": 65,
	"Safe D":   15,
	"Safe R":   85,
}

// FetchRatings scrapes the congressional race-rating table. Rows whose
// rating column is not a recognized rating label are skipped.
func (c Client) FetchRatings(ctx context.Context) ([]RaceRating, error) {
	ctx, span := tracer.Start(ctx, "FetchRatings")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.ratingsUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch race ratings")
		return nil, err
	}
	if res.IsError() {
		err = fmt.Errorf("ballotpedia ratings: %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch race ratings")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse race ratings html")
		return nil, err
	}

	ratings := ParseRatings(doc)
	if len(ratings) == 0 {
		err = fmt.Errorf("no race ratings found at %s", c.ratingsUrl)
		span.RecordError(err)
		span.SetStatus(codes.Error, "empty race ratings table")
		return nil, err
	}

	time.Sleep(c.delay)
	return ratings, nil
}

// ParseRatings walks every table row looking for a "ST-NN" district cell
// followed by a rating cell.
func ParseRatings(doc *goquery.Document) []RaceRating {
	var out []RaceRating

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		district := strings.TrimSpace(cells.Eq(0).Text())
		rating := strings.TrimSpace(cells.Eq(cells.Length() - 1).Text())

		competitiveness, ok := ratingCompetitiveness[rating]
		if !ok {
			return
		}

		parts := strings.SplitN(district, "-", 2)
		if len(parts) != 2 || len(parts[0]) != 2 {
			return
		}

		out = append(out, RaceRating{
			State:           strings.ToUpper(parts[0]),
			District:        parts[1],
			Rating:          rating,
			Competitiveness: competitiveness,
		})
	})

	return out
}

// DefaultRatings is the built-in 2026 battleground list used when the
// live ratings table cannot be fetched.
func DefaultRatings() []RaceRating {
	return []RaceRating{
		{State: "AZ", District: "01", Rating: "Toss-up", Competitiveness: 50},
		{State: "CA", District: "13", Rating: "Lean D", Competitiveness: 45},
		{State: "PA", District: "07", Rating: "Toss-up", Competitiveness: 50},
		{State: "MI", District: "03", Rating: "Lean R", Competitiveness: 55},
		{State: "NC", District: "01", Rating: "Toss-up", Competitiveness: 50},
		{State: "TX", District: "23", Rating: "Lean R", Competitiveness: 55},
		{State: "NV", District: "03", Rating: "Toss-up", Competitiveness: 50},
		{State: "GA", District: "06", Rating: "Lean D", Competitiveness: 45},
	}
}
