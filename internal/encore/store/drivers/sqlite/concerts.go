package sqlite

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
	"github.com/aussiebroadwan/encore/internal/encore/store"
)

type concertsRepo struct {
	q querier
}

const concertSelect = `
	SELECT c.id, c.name, g.name, c.price_cents, c.location, c.date, c.image_url,
	       c.created_at, c.updated_at
	FROM concerts c
	JOIN genres g ON c.genre_id = g.id`

func scanConcert(row interface{ Scan(...any) error }) (domain.Concert, error) {
	var c domain.Concert
	err := row.Scan(
		&c.ID, &c.Name, &c.Genre, &c.PriceCents, &c.Location, &c.Date, &c.ImageURL,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// likePattern wraps s for a substring LIKE match, escaping wildcards.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// buildConcertWhere renders f as a WHERE clause. SQLite's LIKE is
// case-insensitive for ASCII.
func buildConcertWhere(f domain.ConcertFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if s := strings.TrimSpace(f.Search); s != "" {
		p := likePattern(s)
		conds = append(conds, `(c.name LIKE ? ESCAPE '\' OR g.name LIKE ? ESCAPE '\' OR c.location LIKE ? ESCAPE '\')`)
		args = append(args, p, p, p)
	}

	var genres []string
	for _, g := range f.Genres {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	if len(genres) > 0 {
		conds = append(conds, `g.name IN (`+placeholders(len(genres))+`)`)
		for _, g := range genres {
			args = append(args, g)
		}
	}

	if city := strings.TrimSpace(f.City); city != "" {
		conds = append(conds, `c.location LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(city))
	}

	if country := strings.TrimSpace(f.Country); country != "" {
		cities := domain.CountryCities[country]
		clause := `c.location LIKE ? ESCAPE '\'`
		args = append(args, likePattern(country))
		if len(cities) > 0 {
			clause = `(` + clause + ` OR c.location IN (` + placeholders(len(cities)) + `))`
			for _, city := range cities {
				args = append(args, city)
			}
		}
		conds = append(conds, clause)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func (r *concertsRepo) ListConcerts(ctx context.Context, f domain.ConcertFilter) ([]domain.Concert, error) {
	where, args := buildConcertWhere(f)
	rows, err := r.q.QueryContext(ctx, concertSelect+where+` ORDER BY c.date DESC, c.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Concert
	for rows.Next() {
		c, err := scanConcert(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *concertsRepo) GetConcertByID(ctx context.Context, id int64) (domain.Concert, error) {
	c, err := scanConcert(r.q.QueryRowContext(ctx, concertSelect+` WHERE c.id = ?`, id))
	if err != nil {
		return domain.Concert{}, mapNotFound(err)
	}
	return c, nil
}

func (r *concertsRepo) CreateConcert(ctx context.Context, c domain.Concert, genreID int64) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO concerts (name, genre_id, price_cents, location, date, image_url)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, genreID, c.PriceCents, c.Location, c.Date, c.ImageURL,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *concertsRepo) UpdateConcert(ctx context.Context, c domain.Concert, genreID int64) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE concerts
		SET name = ?, genre_id = ?, price_cents = ?, location = ?, date = ?, image_url = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		c.Name, genreID, c.PriceCents, c.Location, c.Date, c.ImageURL, c.ID,
	)
	return expectOneRow(res, err)
}

func (r *concertsRepo) DeleteConcert(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM concerts WHERE id = ?`, id)
	return expectOneRow(res, err)
}

func (r *concertsRepo) GenreStats(ctx context.Context, today string) ([]store.GenreStat, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT g.name,
		       COUNT(c.id),
		       MIN(c.price_cents),
		       MAX(c.price_cents),
		       AVG(c.price_cents),
		       SUM(CASE WHEN c.date >= ? THEN 1 ELSE 0 END),
		       SUM(CASE WHEN c.date < ? THEN 1 ELSE 0 END)
		FROM concerts c
		JOIN genres g ON c.genre_id = g.id
		GROUP BY g.name
		ORDER BY COUNT(c.id) DESC, g.name`,
		today, today,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.GenreStat
	for rows.Next() {
		var s store.GenreStat
		if err := rows.Scan(
			&s.GenreName, &s.ConcertCount, &s.MinPriceCents, &s.MaxPriceCents,
			&s.AvgPriceCents, &s.UpcomingConcerts, &s.PastConcerts,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *concertsRepo) VenueStats(ctx context.Context) (store.VenueStat, error) {
	var s store.VenueStat
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT location),
		       COALESCE(MIN(date), ''),
		       COALESCE(MAX(date), ''),
		       COUNT(*)
		FROM concerts`,
	).Scan(&s.UniqueVenues, &s.EarliestDate, &s.LatestDate, &s.TotalConcerts)
	return s, err
}
