package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/store"
)

// NamedValue is one slice of a distribution chart.
type NamedValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PricePoint is the average price of the concerts on one date.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type Analytics struct {
	PriceDistribution []NamedValue
	GenreDistribution []NamedValue
	PriceTrend        []PricePoint
	LastUpdate        time.Time
}

type Statistics struct {
	GenreStats    []store.GenreStat
	VenueStats    store.VenueStat
	ExecutionTime time.Duration
}

// Analytics summarises the whole catalogue for dashboard charts.
func (s *ConcertService) Analytics(ctx context.Context) (Analytics, error) {
	all, err := s.Store.Concerts().ListConcerts(ctx, domain.ConcertFilter{})
	if err != nil {
		return Analytics{}, fmt.Errorf("failed to list concerts: %w", err)
	}

	return Analytics{
		PriceDistribution: priceDistribution(all),
		GenreDistribution: genreDistribution(all),
		PriceTrend:        priceTrend(all),
		LastUpdate:        s.LastUpdate(),
	}, nil
}

// priceDistribution counts concerts at or below the low threshold, up to the
// medium threshold, and above it.
func priceDistribution(cs []domain.Concert) []NamedValue {
	if len(cs) == 0 {
		return []NamedValue{}
	}
	t := computeThresholds(cs)

	var low, medium, high int
	for _, c := range cs {
		switch p := c.PriceValue(); {
		case p <= t.Low:
			low++
		case p <= t.Medium:
			medium++
		default:
			high++
		}
	}
	return []NamedValue{
		{Name: "Low", Value: low},
		{Name: "Medium", Value: medium},
		{Name: "High", Value: high},
	}
}

// genreDistribution counts concerts per genre in first-seen order.
func genreDistribution(cs []domain.Concert) []NamedValue {
	out := []NamedValue{}
	index := map[string]int{}
	for _, c := range cs {
		i, ok := index[c.Genre]
		if !ok {
			i = len(out)
			index[c.Genre] = i
			out = append(out, NamedValue{Name: c.Genre})
		}
		out[i].Value++
	}
	return out
}

// priceTrend averages prices per date, oldest date first.
func priceTrend(cs []domain.Concert) []PricePoint {
	type acc struct {
		sum   int64
		count int
	}
	byDate := map[string]*acc{}
	var dates []string
	for _, c := range cs {
		a, ok := byDate[c.Date]
		if !ok {
			a = &acc{}
			byDate[c.Date] = a
			dates = append(dates, c.Date)
		}
		a.sum += c.PriceCents
		a.count++
	}
	slices.Sort(dates)

	out := make([]PricePoint, 0, len(dates))
	for _, d := range dates {
		a := byDate[d]
		out = append(out, PricePoint{
			Date:  d,
			Price: float64(a.sum) / float64(a.count) / 100,
		})
	}
	return out
}

// Statistics aggregates per genre and across venues, timing the queries.
func (s *ConcertService) Statistics(ctx context.Context) (Statistics, error) {
	start := time.Now()
	today, _ := s.today()

	genres, err := s.Store.Concerts().GenreStats(ctx, today)
	if err != nil {
		return Statistics{}, fmt.Errorf("failed to get genre statistics: %w", err)
	}
	venues, err := s.Store.Concerts().VenueStats(ctx)
	if err != nil {
		return Statistics{}, fmt.Errorf("failed to get venue statistics: %w", err)
	}

	return Statistics{
		GenreStats:    genres,
		VenueStats:    venues,
		ExecutionTime: time.Since(start),
	}, nil
}
