package encore_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/encore/pkg/encoresdk"
	"github.com/stretchr/testify/require"
)

// TestConcertLifecycle drives CRUD, listing and the aggregate endpoints.
func TestConcertLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := encoresdk.NewSDKClient(baseURL)
	session := registerUser(t, client, "promoter@example.com")

	_, err := client.NewSessionFromToken("").CreateConcert(t.Context(), concertRequest("Rock Night", "Rock", "$30", "London", 30))
	assertStatus(t, err, http.StatusUnauthorized, "create without token")

	rock, err := session.CreateConcert(t.Context(), concertRequest("Rock Night", "Rock", "$30", "London", 30))
	require.NoError(t, err)
	require.Equal(t, "$30.00", rock.Price)

	_, err = session.CreateConcert(t.Context(), concertRequest("Metal Madness", "Metal", "$40", "Berlin", 60))
	require.NoError(t, err)
	_, err = session.CreateConcert(t.Context(), concertRequest("Jazz Hands", "Jazz", "$25.5", "New York", 90))
	require.NoError(t, err, "unknown genres are created on demand")

	_, err = session.CreateConcert(t.Context(), concertRequest("", "Rock", "30", "London", -1))
	assertStatus(t, err, http.StatusBadRequest, "invalid concert")
	var apiErr *encoresdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Contains(t, apiErr.Fields, "name")
	require.Contains(t, apiErr.Fields, "price")
	require.Contains(t, apiErr.Fields, "date")

	list, err := client.ListConcerts(t.Context(), encoresdk.ConcertQuery{})
	require.NoError(t, err)
	require.Equal(t, 3, list.TotalCount)
	require.Equal(t, "Jazz Hands", list.Concerts[0].Name, "newest date first by default")
	require.NotEmpty(t, list.LastUpdate)

	minPrice := 28.0
	list, err = client.ListConcerts(t.Context(), encoresdk.ConcertQuery{Country: "UK", MinPrice: &minPrice})
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalCount)
	require.Equal(t, rock.ID, list.Concerts[0].ID)

	updated, err := session.UpdateConcert(t.Context(), rock.ID, concertRequest("Rock Night", "Rock", "$35", "Manchester", 30))
	require.NoError(t, err)
	require.Equal(t, "Manchester", updated.Location)

	analytics, err := client.GetAnalytics(t.Context())
	require.NoError(t, err)
	require.Len(t, analytics.PriceDistributionData, 3)
	require.Len(t, analytics.PriceTrendData, 3)

	stats, err := client.GetStatistics(t.Context())
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.VenueStats.TotalConcerts)
	require.NotEmpty(t, stats.ExecutionTime)

	_, err = session.DeleteConcert(t.Context(), rock.ID)
	require.NoError(t, err)
	_, err = client.GetConcert(t.Context(), rock.ID)
	require.True(t, encoresdk.IsNotFound(err))
}

// TestConcertBulk applies a mixed batch and checks per-operation results.
func TestConcertBulk(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := encoresdk.NewSDKClient(baseURL)
	session := registerUser(t, client, "bulk@example.com")

	good := concertRequest("Punk Attack", "Punk", "$38", "Los Angeles", 10)
	bad := concertRequest("Punk Attack", "Punk", "free", "Los Angeles", 10)

	results, err := session.Bulk(t.Context(), []encoresdk.BulkOperation{
		{Type: "create", Data: &good},
		{Type: "create", Data: &bad},
		{Type: "delete", ID: 4242},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.True(t, results[0].Success)
	require.False(t, results[1].Success)
	require.Contains(t, results[1].Errors, "price")
	require.False(t, results[2].Success)

	created, err := client.GetConcert(t.Context(), results[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Punk Attack", created.Name)
}

// TestFilterOptions checks the static filter lists.
func TestFilterOptions(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := encoresdk.NewSDKClient(baseURL)

	opts, err := client.GetFilterOptions(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, opts.Genres)
	require.Contains(t, opts.Countries, "Japan")

	cities, err := client.GetCities(t.Context(), "Japan")
	require.NoError(t, err)
	require.Equal(t, []string{"Tokyo"}, cities)

	_, err = client.GetCities(t.Context(), "Atlantis")
	require.True(t, encoresdk.IsNotFound(err))
}
