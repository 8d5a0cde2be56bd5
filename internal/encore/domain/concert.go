package domain

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of concert dates.
const DateLayout = "2006-01-02"

const (
	MaxConcertNameLen     = 50
	MaxConcertLocationLen = 100
)

type Concert struct {
	ID         int64
	Name       string
	Genre      string
	PriceCents int64
	Location   string
	Date       string // YYYY-MM-DD
	ImageURL   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Genre struct {
	ID   int64
	Name string
}

// ConcertInput is the client payload for create and update.
type ConcertInput struct {
	Name     string `json:"name"`
	Genre    string `json:"genre"`
	Price    string `json:"price"`
	Location string `json:"location"`
	Date     string `json:"date"`
	ImageURL string `json:"imageUrl"`
}

var priceRe = regexp.MustCompile(`^\$\d+(\.\d{1,2})?$`)

// Validate checks the payload and returns a *ValidationError naming each bad
// field. today is the first instant of the current day.
func (in ConcertInput) Validate(today time.Time) error {
	fields := map[string]string{}

	switch name := strings.TrimSpace(in.Name); {
	case name == "":
		fields["name"] = "Event name is required"
	case len([]rune(in.Name)) > MaxConcertNameLen:
		fields["name"] = "Event name cannot exceed 50 characters"
	}

	if strings.TrimSpace(in.Genre) == "" {
		fields["genre"] = "Genre is required"
	}

	if !priceRe.MatchString(in.Price) {
		fields["price"] = "Price must be in format $XX or $XX.XX"
	}

	switch loc := strings.TrimSpace(in.Location); {
	case loc == "":
		fields["location"] = "Location is required"
	case len([]rune(in.Location)) > MaxConcertLocationLen:
		fields["location"] = "Location cannot exceed 100 characters"
	}

	if in.Date == "" {
		fields["date"] = "Date is required"
	} else if d, err := time.ParseInLocation(DateLayout, in.Date, today.Location()); err != nil {
		fields["date"] = "Date must be in format YYYY-MM-DD"
	} else if d.Before(today) {
		fields["date"] = "Event date cannot be in the past"
	}

	if strings.TrimSpace(in.ImageURL) == "" {
		fields["imageUrl"] = "Image URL is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

var errBadPrice = errors.New("domain: malformed price")

// maxPriceUnits is the largest whole part whose cents still fit in an int64.
const maxPriceUnits = (math.MaxInt64 - 99) / 100

// ParsePrice converts "$59.99", "$30" or "59.9" into cents. Commas are
// ignored.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0, errBadPrice
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || w < 0 || w > maxPriceUnits {
		return 0, errBadPrice
	}
	var f int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, errBadPrice
		}
		if len(frac) == 1 {
			frac += "0"
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, errBadPrice
		}
	}
	return w*100 + f, nil
}

// FormatPrice renders cents as "$59.99".
func FormatPrice(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// PriceValue returns the price in currency units.
func (c Concert) PriceValue() float64 {
	return float64(c.PriceCents) / 100
}

// Countries and the cities each one covers. Location filters resolve through
// this table.
var (
	FilterGenres  = []string{"Rock", "Metal", "Alternative Rock", "Punk"}
	OrderByFields = []string{"Date", "Price", "Location"}
	Countries     = []string{"USA", "UK", "Germany", "Sweden", "Brazil", "Japan"}
	CountryCities = map[string][]string{
		"USA":     {"New York", "Los Angeles", "Chicago", "Houston", "Miami", "Seattle", "Boston", "Austin", "Portland", "Detroit"},
		"UK":      {"London", "Manchester"},
		"Germany": {"Berlin"},
		"Sweden":  {"Stockholm"},
		"Brazil":  {"Sao Paulo"},
		"Japan":   {"Tokyo"},
	}
)

// ConcertFilter holds the predicates pushed down to the store.
type ConcertFilter struct {
	Search  string   // substring of name, genre or location, case-insensitive
	Genres  []string // exact genre names, any of
	City    string   // substring of location
	Country string   // location names the country or one of its cities
}
