package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/store"
	"github.com/aussiebroadwan/encore/pkg/slogx"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ConcertQuery is a listing request. Filter is pushed down to the store;
// price bounds, ordering and paging are applied here.
type ConcertQuery struct {
	Filter   domain.ConcertFilter
	MinPrice *float64
	MaxPrice *float64
	OrderBy  string // Price, Date or Location; empty keeps newest first
	Page     int
	Limit    int
}

// PriceThresholds split a price list into three roughly equal bands.
type PriceThresholds struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

type ConcertPage struct {
	Concerts    []domain.Concert
	TotalCount  int
	CurrentPage int
	TotalPages  int
	Thresholds  PriceThresholds
	LastUpdate  time.Time
}

// ConcertService manages the catalogue and tracks when it last changed.
type ConcertService struct {
	Store     store.Store
	Sanitizer *TextSanitizer
	Now       func() time.Time

	lastUpdate atomic.Int64 // unix milliseconds
}

func NewConcertService(s store.Store) *ConcertService {
	svc := &ConcertService{
		Store:     s,
		Sanitizer: NewTextSanitizer(),
	}
	svc.touch()
	return svc
}

func (s *ConcertService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ConcertService) touch() {
	s.lastUpdate.Store(s.now().UnixMilli())
}

// LastUpdate reports when the catalogue was last modified through this
// service.
func (s *ConcertService) LastUpdate() time.Time {
	return time.UnixMilli(s.lastUpdate.Load()).UTC()
}

// today returns midnight of the current day in UTC, as a date string and a
// time.
func (s *ConcertService) today() (string, time.Time) {
	d := s.now().UTC().Truncate(24 * time.Hour)
	return d.Format(domain.DateLayout), d
}

// List runs q and returns one page of results.
func (s *ConcertService) List(ctx context.Context, q ConcertQuery) (ConcertPage, error) {
	all, err := s.Store.Concerts().ListConcerts(ctx, q.Filter)
	if err != nil {
		return ConcertPage{}, fmt.Errorf("failed to list concerts: %w", err)
	}

	filtered := filterByPrice(all, q.MinPrice, q.MaxPrice)
	sortConcerts(filtered, q.OrderBy)

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)

	totalPages := (len(filtered) + limit - 1) / limit

	// Pages past the end are empty; compare before multiplying so a huge
	// page cannot overflow.
	start := len(filtered)
	if page <= totalPages {
		start = (page - 1) * limit
	}
	end := min(start+limit, len(filtered))

	return ConcertPage{
		Concerts:    filtered[start:end],
		TotalCount:  len(filtered),
		CurrentPage: page,
		TotalPages:  totalPages,
		Thresholds:  computeThresholds(filtered),
		LastUpdate:  s.LastUpdate(),
	}, nil
}

func filterByPrice(in []domain.Concert, minPrice, maxPrice *float64) []domain.Concert {
	if minPrice == nil && maxPrice == nil {
		return in
	}
	lo, hi := 0.0, math.Inf(1)
	if minPrice != nil {
		lo = *minPrice
	}
	if maxPrice != nil {
		hi = *maxPrice
	}
	out := make([]domain.Concert, 0, len(in))
	for _, c := range in {
		if p := c.PriceValue(); p >= lo && p <= hi {
			out = append(out, c)
		}
	}
	return out
}

func sortConcerts(cs []domain.Concert, orderBy string) {
	switch orderBy {
	case "":
		return
	case "Price":
		slices.SortStableFunc(cs, func(a, b domain.Concert) int {
			return cmpInt64(a.PriceCents, b.PriceCents)
		})
	case "Location":
		slices.SortStableFunc(cs, func(a, b domain.Concert) int {
			return strings.Compare(strings.ToLower(a.Location), strings.ToLower(b.Location))
		})
	default: // Date, and anything unrecognised
		slices.SortStableFunc(cs, func(a, b domain.Concert) int {
			return strings.Compare(a.Date, b.Date)
		})
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// sortedPrices returns every price in ascending order.
func sortedPrices(cs []domain.Concert) []float64 {
	prices := make([]float64, len(cs))
	for i, c := range cs {
		prices[i] = c.PriceValue()
	}
	slices.Sort(prices)
	return prices
}

func computeThresholds(cs []domain.Concert) PriceThresholds {
	if len(cs) == 0 {
		return PriceThresholds{}
	}
	p := sortedPrices(cs)
	n := len(p)
	return PriceThresholds{
		Low:    p[n/3],
		Medium: p[n*2/3],
		High:   p[n-1],
	}
}

// Get returns one concert.
func (s *ConcertService) Get(ctx context.Context, id int64) (domain.Concert, error) {
	c, err := s.Store.Concerts().GetConcertByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Concert{}, domain.ErrConcertNotFound
	}
	if err != nil {
		return domain.Concert{}, fmt.Errorf("failed to get concert: %w", err)
	}
	return c, nil
}

// prepare sanitises and validates in, returning the concert to persist.
func (s *ConcertService) prepare(in domain.ConcertInput) (domain.Concert, error) {
	in.Name = s.Sanitizer.Clean(in.Name)
	in.Genre = s.Sanitizer.Clean(in.Genre)
	in.Location = s.Sanitizer.Clean(in.Location)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.Price = strings.TrimSpace(in.Price)
	in.Date = strings.TrimSpace(in.Date)

	_, today := s.today()
	if err := in.Validate(today); err != nil {
		return domain.Concert{}, err
	}

	cents, err := domain.ParsePrice(in.Price)
	if err != nil {
		return domain.Concert{}, &domain.ValidationError{Fields: map[string]string{
			"price": "Price must be in format $XX or $XX.XX",
		}}
	}

	return domain.Concert{
		Name:       in.Name,
		Genre:      in.Genre,
		PriceCents: cents,
		Location:   in.Location,
		Date:       in.Date,
		ImageURL:   in.ImageURL,
	}, nil
}

// Create validates in and stores it, creating its genre if needed.
func (s *ConcertService) Create(ctx context.Context, in domain.ConcertInput) (domain.Concert, error) {
	c, err := s.prepare(in)
	if err != nil {
		return domain.Concert{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		genreID, err := tx.Genres().GetOrCreateGenre(ctx, c.Genre)
		if err != nil {
			return fmt.Errorf("failed to resolve genre: %w", err)
		}
		c.ID, err = tx.Concerts().CreateConcert(ctx, c, genreID)
		if err != nil {
			return fmt.Errorf("failed to create concert: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Concert{}, err
	}

	s.touch()
	slogx.FromContext(ctx).Info("concert created", "concert_id", c.ID)
	return c, nil
}

// Update replaces concert id with in.
func (s *ConcertService) Update(ctx context.Context, id int64, in domain.ConcertInput) (domain.Concert, error) {
	c, err := s.prepare(in)
	if err != nil {
		return domain.Concert{}, err
	}
	c.ID = id

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		genreID, err := tx.Genres().GetOrCreateGenre(ctx, c.Genre)
		if err != nil {
			return fmt.Errorf("failed to resolve genre: %w", err)
		}
		return tx.Concerts().UpdateConcert(ctx, c, genreID)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Concert{}, domain.ErrConcertNotFound
	}
	if err != nil {
		return domain.Concert{}, fmt.Errorf("failed to update concert: %w", err)
	}

	s.touch()
	slogx.FromContext(ctx).Info("concert updated", "concert_id", id)
	return c, nil
}

// Delete removes concert id and returns what was removed.
func (s *ConcertService) Delete(ctx context.Context, id int64) (domain.Concert, error) {
	var removed domain.Concert
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		removed, err = tx.Concerts().GetConcertByID(ctx, id)
		if err != nil {
			return err
		}
		return tx.Concerts().DeleteConcert(ctx, id)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Concert{}, domain.ErrConcertNotFound
	}
	if err != nil {
		return domain.Concert{}, fmt.Errorf("failed to delete concert: %w", err)
	}

	s.touch()
	slogx.FromContext(ctx).Info("concert deleted", "concert_id", id)
	return removed, nil
}
