package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const itemCols = `id, type, title, description, date, created_at, updated_at`

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.Type, &it.Title, &it.Description,
		&it.Date, &it.CreatedAt, &it.UpdatedAt)
	return &it, err
}

func (r *repoPG) List(ctx context.Context, f Filter, asc bool, limit, offset int) ([]*Item, error) {
	query := `SELECT ` + itemCols + ` FROM history_items WHERE 1=1`
	var args []interface{}
	idx := 1

	if f.Type != nil {
		query += fmt.Sprintf(` AND type = $%d`, idx)
		args = append(args, *f.Type)
		idx++
	}

	direction := "DESC"
	if asc {
		direction = "ASC"
	}
	query += fmt.Sprintf(` ORDER BY date %s LIMIT $%d OFFSET $%d`, direction, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, n *NewItem) (*Item, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO history_items (type, title, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING `+itemCols,
		n.Type, n.Title, n.Description, n.Date)
	return scanItem(row)
}

func (r *repoPG) Delete(ctx context.Context, id int64) (*Item, error) {
	it, err := scanItem(r.pool.QueryRow(ctx,
		`DELETE FROM history_items WHERE id = $1 RETURNING `+itemCols, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}
