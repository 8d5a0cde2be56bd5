package service

import (
	"slices"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
)

// FilterOptions lists the values a client may offer in its filter controls.
type FilterOptions struct {
	Genres    []string            `json:"genres"`
	OrderBy   []string            `json:"orderBy"`
	Countries []string            `json:"countries"`
	Cities    map[string][]string `json:"cities"`
}

// FilterService serves the static filter catalogue. It hands out copies so
// callers cannot mutate the shared tables.
type FilterService struct{}

func (FilterService) Options() FilterOptions {
	return FilterOptions{
		Genres:    FilterService{}.Genres(),
		OrderBy:   FilterService{}.OrderBy(),
		Countries: FilterService{}.Countries(),
		Cities:    FilterService{}.Cities(),
	}
}

func (FilterService) Genres() []string    { return slices.Clone(domain.FilterGenres) }
func (FilterService) OrderBy() []string   { return slices.Clone(domain.OrderByFields) }
func (FilterService) Countries() []string { return slices.Clone(domain.Countries) }

func (FilterService) Cities() map[string][]string {
	out := make(map[string][]string, len(domain.CountryCities))
	for k, v := range domain.CountryCities {
		out[k] = slices.Clone(v)
	}
	return out
}

// CitiesOf returns the cities of country, or false if it is unknown.
func (FilterService) CitiesOf(country string) ([]string, bool) {
	cities, ok := domain.CountryCities[country]
	if !ok {
		return nil, false
	}
	return slices.Clone(cities), true
}
