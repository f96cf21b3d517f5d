package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, patient_name, doctor_name, specialty, date, status, notes, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientName, &a.DoctorName, &a.Specialty,
		&a.Date, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) List(ctx context.Context, f Filter, limit, offset int) ([]*Appointment, error) {
	query := `SELECT ` + apptCols + ` FROM appointments WHERE 1=1`
	var args []interface{}
	idx := 1

	if f.Status != nil {
		query += fmt.Sprintf(` AND status = $%d`, idx)
		args = append(args, *f.Status)
		idx++
	}
	if f.DateMin != nil {
		query += fmt.Sprintf(` AND date >= $%d`, idx)
		args = append(args, *f.DateMin)
		idx++
	}

	query += fmt.Sprintf(` ORDER BY date ASC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, n *NewAppointment) (*Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (patient_name, doctor_name, specialty, date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING `+apptCols,
		n.PatientName, n.DoctorName, n.Specialty, n.Date, StatusScheduled, n.Notes)
	return scanAppointment(row)
}

func (r *repoPG) Update(ctx context.Context, id int64, u *Update) (*Appointment, error) {
	set := []string{"updated_at = NOW()"}
	var args []interface{}
	idx := 1

	if u.Status != nil {
		set = append(set, fmt.Sprintf("status = $%d", idx))
		args = append(args, *u.Status)
		idx++
	}
	if u.Date != nil {
		set = append(set, fmt.Sprintf("date = $%d", idx))
		args = append(args, *u.Date)
		idx++
	}
	if u.NotesSet {
		set = append(set, fmt.Sprintf("notes = $%d", idx))
		args = append(args, u.Notes)
		idx++
	}

	query := fmt.Sprintf(`UPDATE appointments SET %s WHERE id = $%d RETURNING `+apptCols,
		strings.Join(set, ", "), idx)
	args = append(args, id)

	a, err := scanAppointment(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) (*Appointment, error) {
	a, err := scanAppointment(r.pool.QueryRow(ctx,
		`DELETE FROM appointments WHERE id = $1 RETURNING `+apptCols, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
