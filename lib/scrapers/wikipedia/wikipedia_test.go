package wikipedia

import (
	"context"
	"donorlens-backend/lib/telemetry"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidateBiography(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/wikipedia")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "query", r.URL.Query().Get("action"))
		require.Equal(t, "Maria Garcia", r.URL.Query().Get("titles"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":{"pages":{
			"100":{"title":"Maria Garcia","extract":"Maria Garcia is an American politician.",
				"original":{"source":"https://upload.wikimedia.org/garcia.jpg"}},
			"200":{"title":"Maria Garcia (singer)","extract":"Maria Garcia is a singer."}
		}}}`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{BaseUrl: srv.URL})
	bio, err := client.CandidateBiography(context.Background(), "Maria Garcia")
	require.NoError(t, err)
	require.NotNil(t, bio)

	// the exact-title page wins over the disambiguated one
	require.Equal(t, "Maria Garcia", bio.Title)
	require.Equal(t, "Maria Garcia is an American politician.", bio.Extract)
	require.Equal(t, "https://upload.wikimedia.org/garcia.jpg", bio.ImageUrl)
}

func TestCandidateBiographyNoArticle(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/wikipedia")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":{"pages":{"-1":{"title":"Nobody Here"}}}}`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{BaseUrl: srv.URL})
	bio, err := client.CandidateBiography(context.Background(), "Nobody Here")
	require.NoError(t, err)
	require.Nil(t, bio)
}
