package sqlite

import (
	"context"

	"github.com/aussiebroadwan/encore/internal/encore/domain"
)

type genresRepo struct {
	q querier
}

func (r *genresRepo) GetOrCreateGenre(ctx context.Context, name string) (int64, error) {
	if _, err := r.q.ExecContext(ctx,
		`INSERT INTO genres (name) VALUES (?) ON CONFLICT (name) DO NOTHING`, name,
	); err != nil {
		return 0, err
	}

	var id int64
	err := r.q.QueryRowContext(ctx, `SELECT id FROM genres WHERE name = ?`, name).Scan(&id)
	return id, mapNotFound(err)
}

func (r *genresRepo) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
