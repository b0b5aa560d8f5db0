package census

import (
	"context"
	"donorlens-backend/lib/telemetry"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistrictDemographics(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/census")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, acsVariables, r.URL.Query().Get("get"))
		require.Equal(t, "congressional district:01", r.URL.Query().Get("for"))
		require.Equal(t, "state:04", r.URL.Query().Get("in"))

		_, _ = w.Write([]byte(`[
			["B01003_001E","B19013_001E","B15003_022E","B01001_001E","state","congressional district"],
			["781345","61234","142890","781345","04","01"]
		]`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{BaseUrl: srv.URL})
	demo, err := client.DistrictDemographics(context.Background(), "AZ", "01")
	require.NoError(t, err)
	require.NotNil(t, demo)
	require.Equal(t, int64(781345), *demo.Population)
	require.Equal(t, int64(61234), *demo.MedianIncome)
	require.Equal(t, int64(142890), *demo.CollegeEducated)
}

func TestDistrictDemographicsSuppressed(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/census")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			["B01003_001E","B19013_001E","B15003_022E","B01001_001E","state","congressional district"],
			["781345","-666666666","142890","781345","04","01"]
		]`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{BaseUrl: srv.URL})
	demo, err := client.DistrictDemographics(context.Background(), "AZ", "01")
	require.NoError(t, err)
	require.NotNil(t, demo)
	require.Equal(t, int64(781345), *demo.Population)
	require.Nil(t, demo.MedianIncome)
}

func TestDistrictDemographicsUnknownDistrict(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/census")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[["B01003_001E","B19013_001E","B15003_022E","B01001_001E"]]`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{BaseUrl: srv.URL})
	demo, err := client.DistrictDemographics(context.Background(), "AZ", "99")
	require.NoError(t, err)
	require.Nil(t, demo)
}

func TestDistrictDemographicsUnknownState(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/census")
	defer cleanup()

	client := NewClient(ClientOptions{})
	_, err := client.DistrictDemographics(context.Background(), "ZZ", "01")
	require.Error(t, err)
}
