package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrConflict reports a compare-and-swap update whose precondition no
	// longer held.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so a Tx-scoped Store cannot start a nested
// transaction by accident.
type Store interface {
	Users() Users
	Concerts() Concerts
	Genres() Genres

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. An error from fn rolls back,
	// nil commits.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the email exactly as stored.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// BeginTwoFactorSetup stores a new pending secret and setup id, disables
	// 2FA and clears any active secret. Last writer wins.
	BeginTwoFactorSetup(ctx context.Context, userID, secret, setupID string, at time.Time) error

	// PromoteTwoFactorSecret moves the pending secret to the active slot only
	// if the pending setup id still equals setupID. Returns ErrConflict
	// otherwise.
	PromoteTwoFactorSecret(ctx context.Context, userID, setupID string) error

	// DisableTwoFactor clears every 2FA column.
	DisableTwoFactor(ctx context.Context, userID string) error

	// ClearStalePendingSetups drops pending enrollments started before cutoff
	// and reports how many were cleared.
	ClearStalePendingSetups(ctx context.Context, cutoff time.Time) (int64, error)
}

type Concerts interface {
	// ListConcerts returns matching concerts ordered by date, newest first.
	ListConcerts(ctx context.Context, f domain.ConcertFilter) ([]domain.Concert, error)

	GetConcertByID(ctx context.Context, id int64) (domain.Concert, error)

	// CreateConcert inserts c (with c.Genre resolved to genreID) and returns
	// the new id.
	CreateConcert(ctx context.Context, c domain.Concert, genreID int64) (int64, error)

	// UpdateConcert replaces every mutable column. ErrNotFound when absent.
	UpdateConcert(ctx context.Context, c domain.Concert, genreID int64) error

	// DeleteConcert removes a concert. ErrNotFound when absent.
	DeleteConcert(ctx context.Context, id int64) error

	GenreStats(ctx context.Context, today string) ([]GenreStat, error)
	VenueStats(ctx context.Context) (VenueStat, error)
}

type Genres interface {
	// GetOrCreateGenre returns the id of the named genre, inserting it if new.
	GetOrCreateGenre(ctx context.Context, name string) (int64, error)

	ListGenres(ctx context.Context) ([]domain.Genre, error)
}

// GenreStat aggregates concerts per genre.
type GenreStat struct {
	GenreName        string
	ConcertCount     int64
	MinPriceCents    int64
	MaxPriceCents    int64
	AvgPriceCents    float64
	UpcomingConcerts int64
	PastConcerts     int64
}

// VenueStat aggregates across every concert.
type VenueStat struct {
	UniqueVenues  int64
	EarliestDate  string
	LatestDate    string
	TotalConcerts int64
}
