package http

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/service"
	"github.com/aussiebroadwan/encore/internal/encore/store"
	"github.com/aussiebroadwan/encore/pkg/encoresdk"
	"github.com/aussiebroadwan/encore/pkg/httpx"
	"github.com/aussiebroadwan/encore/pkg/slogx"
)

// lastUpdateLayout renders timestamps the way browsers print
// Date.toISOString.
const lastUpdateLayout = "2006-01-02T15:04:05.000Z07:00"

// ConcertsHandler serves the concert catalogue.
type ConcertsHandler struct {
	ConcertService *service.ConcertService
}

func toConcert(c domain.Concert) encoresdk.Concert {
	return encoresdk.Concert{
		ID:       c.ID,
		Name:     c.Name,
		Genre:    c.Genre,
		Price:    domain.FormatPrice(c.PriceCents),
		Location: c.Location,
		Date:     c.Date,
		ImageURL: c.ImageURL,
	}
}

func toConcerts(cs []domain.Concert) []encoresdk.Concert {
	out := make([]encoresdk.Concert, len(cs))
	for i, c := range cs {
		out[i] = toConcert(c)
	}
	return out
}

func toConcertInput(req encoresdk.ConcertRequest) domain.ConcertInput {
	return domain.ConcertInput{
		Name:     req.Name,
		Genre:    req.Genre,
		Price:    req.Price,
		Location: req.Location,
		Date:     req.Date,
		ImageURL: req.ImageURL,
	}
}

func formatLastUpdate(t time.Time) string {
	return t.UTC().Format(lastUpdateLayout)
}

// parseConcertQuery reads the listing parameters. Bad paging values fall
// back to the defaults. A bad price bound is reported by name.
func parseConcertQuery(r *http.Request) (q service.ConcertQuery, badParam string) {
	v := r.URL.Query()
	q = service.ConcertQuery{
		Filter: domain.ConcertFilter{
			Search:  strings.TrimSpace(v.Get("search")),
			City:    strings.TrimSpace(v.Get("city")),
			Country: strings.TrimSpace(v.Get("country")),
		},
		OrderBy: v.Get("orderBy"),
	}

	if g := v.Get("genre"); g != "" {
		for _, name := range strings.Split(g, ",") {
			if name = strings.TrimSpace(name); name != "" {
				q.Filter.Genres = append(q.Filter.Genres, name)
			}
		}
	}

	for _, p := range []struct {
		key string
		dst **float64
	}{
		{"minPrice", &q.MinPrice},
		{"maxPrice", &q.MaxPrice},
	} {
		raw := strings.TrimPrefix(strings.TrimSpace(v.Get(p.key)), "$")
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) {
			return q, p.key
		}
		*p.dst = &f
	}

	q.Page, _ = strconv.Atoi(v.Get("page"))
	q.Limit, _ = strconv.Atoi(v.Get("limit"))
	return q, ""
}

// concertID parses the {id} path value. On failure it writes a 404 and
// returns false.
func concertID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusNotFound, domain.ErrConcertNotFound.Error())
		return 0, false
	}
	return id, true
}

// HandleList handles GET /api/concerts
//
//	@Summary		List concerts
//	@Description	Filters, orders and paginates the catalogue. Without orderBy the newest dates come
//	@Description	first. priceThresholds split the filtered prices into three bands.
//	@Tags			Concerts
//	@Produce		json
//	@Param			search		query		string							false	"Substring of name, genre or location"
//	@Param			genre		query		string							false	"Comma separated genre names"
//	@Param			city		query		string							false	"Substring of location"
//	@Param			country		query		string							false	"Country name"
//	@Param			minPrice	query		number							false	"Lowest price"
//	@Param			maxPrice	query		number							false	"Highest price"
//	@Param			orderBy		query		string							false	"Price, Date or Location"
//	@Param			page		query		int								false	"Page number, from 1"
//	@Param			limit		query		int								false	"Page size, at most 100"
//	@Success		200			{object}	encoresdk.ConcertListResponse	"One page of concerts"
//	@Failure		400			{object}	encoresdk.ErrorResponse			"Invalid price bound"
//	@Failure		500			{object}	encoresdk.ErrorResponse			"Internal server error"
//	@Router			/api/concerts [get].
func (h *ConcertsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q, bad := parseConcertQuery(r)
	if bad != "" {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid "+bad)
		return
	}

	page, err := h.ConcertService.List(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err, "Failed to get concerts")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, encoresdk.ConcertListResponse{
		Concerts:    toConcerts(page.Concerts),
		TotalCount:  page.TotalCount,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		PriceThresholds: encoresdk.PriceThresholds{
			Low:    page.Thresholds.Low,
			Medium: page.Thresholds.Medium,
			High:   page.Thresholds.High,
		},
		LastUpdate: formatLastUpdate(page.LastUpdate),
	})
}

// HandleAnalytics handles GET /api/concerts/analytics
//
//	@Summary		Catalogue analytics
//	@Description	Price band and genre distributions plus the average price per date.
//	@Tags			Concerts
//	@Produce		json
//	@Success		200	{object}	encoresdk.AnalyticsResponse	"Chart data"
//	@Failure		500	{object}	encoresdk.ErrorResponse		"Internal server error"
//	@Router			/api/concerts/analytics [get].
func (h *ConcertsHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.ConcertService.Analytics(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to get analytics data")
		return
	}

	out := encoresdk.AnalyticsResponse{
		PriceDistributionData: make([]encoresdk.NamedValue, len(a.PriceDistribution)),
		GenreDistributionData: make([]encoresdk.NamedValue, len(a.GenreDistribution)),
		PriceTrendData:        make([]encoresdk.PricePoint, len(a.PriceTrend)),
		LastUpdate:            formatLastUpdate(a.LastUpdate),
	}
	for i, nv := range a.PriceDistribution {
		out.PriceDistributionData[i] = encoresdk.NamedValue(nv)
	}
	for i, nv := range a.GenreDistribution {
		out.GenreDistributionData[i] = encoresdk.NamedValue(nv)
	}
	for i, p := range a.PriceTrend {
		out.PriceTrendData[i] = encoresdk.PricePoint(p)
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

func centsToUnits(c float64) float64 {
	return math.Round(c) / 100
}

// HandleStatistics handles GET /api/concerts/statistics
//
//	@Summary		Catalogue statistics
//	@Description	Per-genre price and schedule aggregates plus venue totals, with the time the
//	@Description	queries took.
//	@Tags			Concerts
//	@Produce		json
//	@Success		200	{object}	encoresdk.StatisticsResponse	"Aggregates"
//	@Failure		500	{object}	encoresdk.ErrorResponse			"Internal server error"
//	@Router			/api/concerts/statistics [get].
func (h *ConcertsHandler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ConcertService.Statistics(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch statistics")
		return
	}

	out := encoresdk.StatisticsResponse{
		GenreStats: make([]encoresdk.GenreStat, len(stats.GenreStats)),
		VenueStats: toVenueStat(stats.VenueStats),
		ExecutionTime: fmt.Sprintf("%.2fms",
			float64(stats.ExecutionTime.Microseconds())/1000),
	}
	for i, g := range stats.GenreStats {
		out.GenreStats[i] = encoresdk.GenreStat{
			GenreName:        g.GenreName,
			ConcertCount:     g.ConcertCount,
			MinPrice:         centsToUnits(float64(g.MinPriceCents)),
			MaxPrice:         centsToUnits(float64(g.MaxPriceCents)),
			AvgPrice:         centsToUnits(g.AvgPriceCents),
			UpcomingConcerts: g.UpcomingConcerts,
			PastConcerts:     g.PastConcerts,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

func toVenueStat(v store.VenueStat) encoresdk.VenueStat {
	return encoresdk.VenueStat{
		UniqueVenues:  v.UniqueVenues,
		EarliestDate:  v.EarliestDate,
		LatestDate:    v.LatestDate,
		TotalConcerts: v.TotalConcerts,
	}
}

// HandleGet handles GET /api/concerts/{id}
//
//	@Summary		Get a concert
//	@Tags			Concerts
//	@Produce		json
//	@Param			id	path		int						true	"Concert id"
//	@Success		200	{object}	encoresdk.Concert		"Concert"
//	@Failure		404	{object}	encoresdk.ErrorResponse	"Concert not found"
//	@Failure		500	{object}	encoresdk.ErrorResponse	"Internal server error"
//	@Router			/api/concerts/{id} [get].
func (h *ConcertsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := concertID(w, r)
	if !ok {
		return
	}

	c, err := h.ConcertService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Failed to get concert")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toConcert(c))
}

// HandleCreate handles POST /api/concerts
//
//	@Summary		Create a concert
//	@Description	Unknown genres are created on demand. Text fields are stripped of markup.
//	@Tags			Concerts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		encoresdk.ConcertRequest			true	"Concert"
//	@Success		201		{object}	encoresdk.Concert					"Created concert"
//	@Failure		400		{object}	encoresdk.ValidationErrorResponse	"Rejected fields"
//	@Failure		401		{object}	encoresdk.ErrorResponse				"No token provided"
//	@Failure		403		{object}	encoresdk.ErrorResponse				"Invalid or partial token"
//	@Failure		500		{object}	encoresdk.ErrorResponse				"Internal server error"
//	@Router			/api/concerts [post].
func (h *ConcertsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req encoresdk.ConcertRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.ConcertService.Create(r.Context(), toConcertInput(req))
	if err != nil {
		writeServiceError(w, r, err, "Failed to create concert")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toConcert(c))
}

// HandleUpdate handles PUT /api/concerts/{id}
//
//	@Summary		Update a concert
//	@Tags			Concerts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Concert id"
//	@Param			request	body		encoresdk.ConcertRequest			true	"Concert"
//	@Success		200		{object}	encoresdk.Concert					"Updated concert"
//	@Failure		400		{object}	encoresdk.ValidationErrorResponse	"Rejected fields"
//	@Failure		401		{object}	encoresdk.ErrorResponse				"No token provided"
//	@Failure		403		{object}	encoresdk.ErrorResponse				"Invalid or partial token"
//	@Failure		404		{object}	encoresdk.ErrorResponse				"Concert not found"
//	@Failure		500		{object}	encoresdk.ErrorResponse				"Internal server error"
//	@Router			/api/concerts/{id} [put].
func (h *ConcertsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := concertID(w, r)
	if !ok {
		return
	}

	var req encoresdk.ConcertRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.ConcertService.Update(r.Context(), id, toConcertInput(req))
	if err != nil {
		writeServiceError(w, r, err, "Failed to update concert")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toConcert(c))
}

// HandleDelete handles DELETE /api/concerts/{id}
//
//	@Summary		Delete a concert
//	@Tags			Concerts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Concert id"
//	@Success		200	{object}	encoresdk.Concert		"Removed concert"
//	@Failure		401	{object}	encoresdk.ErrorResponse	"No token provided"
//	@Failure		403	{object}	encoresdk.ErrorResponse	"Invalid or partial token"
//	@Failure		404	{object}	encoresdk.ErrorResponse	"Concert not found"
//	@Failure		500	{object}	encoresdk.ErrorResponse	"Internal server error"
//	@Router			/api/concerts/{id} [delete].
func (h *ConcertsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := concertID(w, r)
	if !ok {
		return
	}

	c, err := h.ConcertService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Failed to delete concert")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toConcert(c))
}

// HandleBulk handles POST /api/concerts/bulk
//
//	@Summary		Apply queued operations
//	@Description	Runs create, update and delete operations in order. Each one succeeds or fails on
//	@Description	its own and is reported in results.
//	@Tags			Concerts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		encoresdk.BulkRequest	true	"Operations"
//	@Success		200		{object}	encoresdk.BulkResponse	"Per operation results"
//	@Failure		400		{object}	encoresdk.ErrorResponse	"Invalid operations format"
//	@Failure		401		{object}	encoresdk.ErrorResponse	"No token provided"
//	@Failure		403		{object}	encoresdk.ErrorResponse	"Invalid or partial token"
//	@Router			/api/concerts/bulk [post].
func (h *ConcertsHandler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var body struct {
		Operations json.RawMessage `json:"operations"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Warn("failed to parse bulk request", "err", err)
		httpx.WriteError(w, http.StatusBadRequest, "Invalid operations format")
		return
	}

	var ops []service.BulkOperation
	raw := strings.TrimSpace(string(body.Operations))
	if !strings.HasPrefix(raw, "[") || json.Unmarshal(body.Operations, &ops) != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid operations format")
		return
	}

	results := h.ConcertService.Bulk(r.Context(), ops)

	out := encoresdk.BulkResponse{Results: make([]encoresdk.BulkResult, len(results))}
	for i, res := range results {
		out.Results[i] = encoresdk.BulkResult(res)
	}
	log.Info("bulk operations applied", "count", len(ops))

	httpx.WriteJSON(w, http.StatusOK, out)
}
