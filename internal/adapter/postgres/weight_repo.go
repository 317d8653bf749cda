package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"nutriplan/internal/domain"

	"github.com/google/uuid"
)

// AddWeighIn inserts a new weigh-in.
func (d *DB) AddWeighIn(ctx context.Context, clientID uuid.UUID, value float64, unit string, createdAt time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO weigh_ins(client_id, value, unit, created_at) VALUES($1, $2, $3, $4) RETURNING id;",
		clientID, value, unit, createdAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteLatestWeighIn removes the client's most recent weigh-in.
func (d *DB) DeleteLatestWeighIn(ctx context.Context, clientID uuid.UUID) (bool, error) {
	res, err := d.sql.ExecContext(ctx,
		`DELETE FROM weigh_ins WHERE id = (
			SELECT id FROM weigh_ins WHERE client_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1
		);`, clientID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// LatestWeighInForLocalDay returns the client's most recent weigh-in for a local calendar day.
func (d *DB) LatestWeighInForLocalDay(ctx context.Context, clientID uuid.UUID, localDay string) (*domain.WeighIn, error) {
	dayStart, dayEnd, err := localDayBounds(localDay)
	if err != nil {
		return nil, err
	}

	row := d.sql.QueryRowContext(ctx,
		`SELECT id, value, unit, created_at FROM weigh_ins
		WHERE client_id=$1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC LIMIT 1;`,
		clientID, dayStart, dayEnd,
	)

	e := domain.WeighIn{ClientID: clientID, Day: localDay}
	if err := row.Scan(&e.ID, &e.Value, &e.Unit, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// ListRecentWeighIns returns the client's most recent weigh-ins up to limit.
func (d *DB) ListRecentWeighIns(ctx context.Context, clientID uuid.UUID, limit int) ([]domain.WeighIn, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, value, unit, created_at FROM weigh_ins WHERE client_id=$1 ORDER BY created_at DESC LIMIT $2;",
		clientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.WeighIn, 0, limit)
	for rows.Next() {
		e := domain.WeighIn{ClientID: clientID}
		if err := rows.Scan(&e.ID, &e.Value, &e.Unit, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Day = e.CreatedAt.In(time.Local).Format("2006-01-02")
		out = append(out, e)
	}
	return out, rows.Err()
}
