package postgres

import (
	"context"
	"time"

	"nutriplan/internal/domain"

	"github.com/google/uuid"
)

// AddWaterEvent inserts a new water intake event.
func (d *DB) AddWaterEvent(ctx context.Context, clientID uuid.UUID, deltaMl int, createdAt time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO water_events(client_id, delta_ml, created_at) VALUES($1, $2, $3) RETURNING id;",
		clientID, deltaMl, createdAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteWaterEvent removes a water event by ID, scoped to a client.
func (d *DB) DeleteWaterEvent(ctx context.Context, clientID uuid.UUID, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM water_events WHERE id=$1 AND client_id=$2;", id, clientID)
	return err
}

// ListRecentWaterEvents returns the client's most recent water events up to limit.
func (d *DB) ListRecentWaterEvents(ctx context.Context, clientID uuid.UUID, limit int) ([]domain.WaterEvent, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, delta_ml, created_at FROM water_events WHERE client_id=$1 ORDER BY created_at DESC LIMIT $2;",
		clientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.WaterEvent, 0, limit)
	for rows.Next() {
		e := domain.WaterEvent{ClientID: clientID}
		if err := rows.Scan(&e.ID, &e.DeltaMl, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// WaterTotalForLocalDay returns the client's total water intake in mL for a local calendar day.
func (d *DB) WaterTotalForLocalDay(ctx context.Context, clientID uuid.UUID, localDay string) (int, error) {
	dayStart, dayEnd, err := localDayBounds(localDay)
	if err != nil {
		return 0, err
	}

	var total int
	err = d.sql.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(delta_ml), 0) FROM water_events WHERE client_id=$1 AND created_at >= $2 AND created_at < $3;",
		clientID, dayStart, dayEnd,
	).Scan(&total)
	return total, err
}
