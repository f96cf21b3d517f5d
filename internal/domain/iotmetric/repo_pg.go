package iotmetric

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const sampleCols = `id, metric, value, recorded_at, created_at, updated_at`

func (r *repoPG) List(ctx context.Context, f Filter, limit, offset int) ([]Point, error) {
	query := `SELECT recorded_at, value FROM iot_metrics WHERE 1=1`
	var args []interface{}
	idx := 1

	if f.Metric != nil {
		query += fmt.Sprintf(` AND metric = $%d`, idx)
		args = append(args, *f.Metric)
		idx++
	}
	if f.From != nil {
		query += fmt.Sprintf(` AND recorded_at >= $%d`, idx)
		args = append(args, *f.From)
		idx++
	}
	if f.To != nil {
		query += fmt.Sprintf(` AND recorded_at <= $%d`, idx)
		args = append(args, *f.To)
		idx++
	}

	query += fmt.Sprintf(` ORDER BY recorded_at ASC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []Point{}
	for rows.Next() {
		var p Point
		if err := rows.Scan(&p.RecordedAt, &p.Value); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, n *NewSample) (*Sample, error) {
	var s Sample
	err := r.pool.QueryRow(ctx, `
		INSERT INTO iot_metrics (metric, value, recorded_at, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING `+sampleCols,
		n.Metric, n.Value, n.RecordedAt).
		Scan(&s.ID, &s.Metric, &s.Value, &s.RecordedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
