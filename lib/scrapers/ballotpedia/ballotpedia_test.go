package ballotpedia

import (
	"context"
	"donorlens-backend/lib/telemetry"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const ratingsPage = `<html><body>
<table>
<tr><th>District</th><th>Incumbent</th><th>Rating</th></tr>
<tr><td>AZ-01</td><td>Jane Doe</td><td>Toss-up</td></tr>
<tr><td>ca-13</td><td>Alex Smith</td><td>Lean D</td></tr>
<tr><td>TX-23</td><td>Sam Jones</td><td>Lean R</td></tr>
<tr><td>NY-15</td><td>Pat Lee</td><td>Uncontested</td></tr>
<tr><td>not a district</td><td>n/a</td><td>Toss-up</td></tr>
<tr><td>only one cell</td></tr>
</table>
</body></html>`

func TestParseRatings(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(ratingsPage))
	require.NoError(t, err)

	ratings := ParseRatings(doc)
	require.Equal(t, []RaceRating{
		{State: "AZ", District: "01", Rating: "Toss-up", Competitiveness: 50},
		{State: "CA", District: "13", Rating: "Lean D", Competitiveness: 45},
		{State: "TX", District: "23", Rating: "Lean R", Competitiveness: 55},
	}, ratings)
}

func TestFetchRatings(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/ballotpedia")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ratingsPage))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{RatingsUrl: srv.URL})
	ratings, err := client.FetchRatings(context.Background())
	require.NoError(t, err)
	require.Len(t, ratings, 3)
	require.Equal(t, "AZ", ratings[0].State)
}

func TestFetchRatingsEmptyTable(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/ballotpedia")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>page layout changed</p></body></html>`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{RatingsUrl: srv.URL})
	_, err := client.FetchRatings(context.Background())
	require.Error(t, err)
}

func TestDefaultRatings(t *testing.T) {
	ratings := DefaultRatings()
	require.NotEmpty(t, ratings)
	for _, r := range ratings {
		require.Len(t, r.State, 2)
		require.NotEmpty(t, r.District)
		require.GreaterOrEqual(t, r.Competitiveness, float64(0))
		require.LessOrEqual(t, r.Competitiveness, float64(100))
	}
}
