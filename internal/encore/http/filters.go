package http

import (
	"net/http"

	"github.com/aussiebroadwan/encore/internal/encore/service"
	"github.com/aussiebroadwan/encore/pkg/encoresdk"
	"github.com/aussiebroadwan/encore/pkg/httpx"
)

// FiltersHandler serves the static filter lists.
type FiltersHandler struct {
	FilterService service.FilterService
}

// HandleOptions handles GET /api/filters
//
//	@Summary		All filter options
//	@Tags			Filters
//	@Produce		json
//	@Success		200	{object}	encoresdk.FilterOptionsResponse	"Genres, orderings, countries and cities"
//	@Router			/api/filters [get].
func (h *FiltersHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	opts := h.FilterService.Options()
	httpx.WriteJSON(w, http.StatusOK, encoresdk.FilterOptionsResponse{
		Genres:    opts.Genres,
		OrderBy:   opts.OrderBy,
		Countries: opts.Countries,
		Cities:    opts.Cities,
	})
}

// HandleGenres handles GET /api/filters/genres
//
//	@Summary	Genre filter values
//	@Tags		Filters
//	@Produce	json
//	@Success	200	{array}	string	"Genres"
//	@Router		/api/filters/genres [get].
func (h *FiltersHandler) HandleGenres(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.FilterService.Genres())
}

// HandleOrderBy handles GET /api/filters/orderBy
//
//	@Summary	Supported orderings
//	@Tags		Filters
//	@Produce	json
//	@Success	200	{array}	string	"Orderings"
//	@Router		/api/filters/orderBy [get].
func (h *FiltersHandler) HandleOrderBy(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.FilterService.OrderBy())
}

// HandleCountries handles GET /api/filters/countries
//
//	@Summary	Country filter values
//	@Tags		Filters
//	@Produce	json
//	@Success	200	{array}	string	"Countries"
//	@Router		/api/filters/countries [get].
func (h *FiltersHandler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.FilterService.Countries())
}

// HandleCities handles GET /api/filters/cities
//
//	@Summary	Cities by country
//	@Tags		Filters
//	@Produce	json
//	@Success	200	{object}	map[string][]string	"Cities keyed by country"
//	@Router		/api/filters/cities [get].
func (h *FiltersHandler) HandleCities(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.FilterService.Cities())
}

// HandleCitiesOf handles GET /api/filters/cities/{country}
//
//	@Summary	Cities of one country
//	@Tags		Filters
//	@Produce	json
//	@Param		country	path		string					true	"Country"
//	@Success	200		{array}		string					"Cities"
//	@Failure	404		{object}	encoresdk.ErrorResponse	"Country not found"
//	@Router		/api/filters/cities/{country} [get].
func (h *FiltersHandler) HandleCitiesOf(w http.ResponseWriter, r *http.Request) {
	cities, ok := h.FilterService.CitiesOf(r.PathValue("country"))
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Country not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cities)
}
