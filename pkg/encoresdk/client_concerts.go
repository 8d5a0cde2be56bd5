package encoresdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func (q ConcertQuery) encode() string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if len(q.Genres) > 0 {
		v.Set("genre", strings.Join(q.Genres, ","))
	}
	if q.City != "" {
		v.Set("city", q.City)
	}
	if q.Country != "" {
		v.Set("country", q.Country)
	}
	if q.MinPrice != nil {
		v.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		v.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.OrderBy != "" {
		v.Set("orderBy", q.OrderBy)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// ListConcerts returns one page of concerts matching q.
func (c *SDKClient) ListConcerts(ctx context.Context, q ConcertQuery) (*ConcertListResponse, error) {
	var out ConcertListResponse
	if err := c.do(ctx, http.MethodGet, "/api/concerts"+q.encode(), "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetConcert returns a single concert.
func (c *SDKClient) GetConcert(ctx context.Context, id int64) (*Concert, error) {
	var out Concert
	if err := c.do(ctx, http.MethodGet, "/api/concerts/"+strconv.FormatInt(id, 10), "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAnalytics returns the dashboard chart data.
func (c *SDKClient) GetAnalytics(ctx context.Context) (*AnalyticsResponse, error) {
	var out AnalyticsResponse
	if err := c.do(ctx, http.MethodGet, "/api/concerts/analytics", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStatistics returns per-genre and venue aggregates.
func (c *SDKClient) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	var out StatisticsResponse
	if err := c.do(ctx, http.MethodGet, "/api/concerts/statistics", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFilterOptions returns every filter list in one response.
func (c *SDKClient) GetFilterOptions(ctx context.Context) (*FilterOptionsResponse, error) {
	var out FilterOptionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/filters", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCities returns the cities of one country.
func (c *SDKClient) GetCities(ctx context.Context, country string) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/api/filters/cities/"+url.PathEscape(country), "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
