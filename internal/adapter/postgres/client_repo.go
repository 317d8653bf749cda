package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nutriplan/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const clientColumns = `id, coach_id, name, weight_kg, height_cm, age, gender, activity_level,
	primary_goal, meals_per_day, target_weight_kg, timeframe, dietary_restrictions, allergies,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	var restrictions pq.StringArray
	err := row.Scan(
		&c.ID, &c.CoachID, &c.Name,
		&c.Profile.Weight, &c.Profile.Height, &c.Profile.Age,
		&c.Profile.Gender, &c.Profile.ActivityLevel, &c.Profile.PrimaryGoal, &c.Profile.MealsPerDay,
		&c.TargetWeight, &c.Timeframe, &restrictions, &c.Allergies,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.DietaryRestrictions = []string(restrictions)
	return &c, nil
}

// restrictionsArg stores a nil slice as an empty array.
func restrictionsArg(v []string) any {
	if v == nil {
		v = []string{}
	}
	return pq.Array(v)
}

// CreateClient inserts a new client.
func (d *DB) CreateClient(ctx context.Context, c *domain.Client) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO clients ("+clientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`,
		c.ID, c.CoachID, c.Name,
		c.Profile.Weight, c.Profile.Height, c.Profile.Age,
		string(c.Profile.Gender), string(c.Profile.ActivityLevel), string(c.Profile.PrimaryGoal), c.Profile.MealsPerDay,
		c.TargetWeight, c.Timeframe, restrictionsArg(c.DietaryRestrictions), c.Allergies,
		c.CreatedAt.UTC(), c.UpdatedAt.UTC(),
	)
	return err
}

// GetClient returns a client owned by coachID, or nil if there is none.
func (d *DB) GetClient(ctx context.Context, coachID int64, id uuid.UUID) (*domain.Client, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE id=$1 AND coach_id=$2;", id, coachID)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

// ListClients returns a coach's clients ordered by name.
func (d *DB) ListClients(ctx context.Context, coachID int64) ([]domain.Client, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE coach_id=$1 ORDER BY name, created_at;", coachID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// UpdateClient overwrites the intake fields of a client.
func (d *DB) UpdateClient(ctx context.Context, c *domain.Client) (bool, error) {
	res, err := d.sql.ExecContext(ctx,
		`UPDATE clients SET name=$3, weight_kg=$4, height_cm=$5, age=$6, gender=$7, activity_level=$8,
			primary_goal=$9, meals_per_day=$10, target_weight_kg=$11, timeframe=$12,
			dietary_restrictions=$13, allergies=$14, updated_at=$15
		WHERE id=$1 AND coach_id=$2;`,
		c.ID, c.CoachID, c.Name,
		c.Profile.Weight, c.Profile.Height, c.Profile.Age,
		string(c.Profile.Gender), string(c.Profile.ActivityLevel), string(c.Profile.PrimaryGoal), c.Profile.MealsPerDay,
		c.TargetWeight, c.Timeframe, restrictionsArg(c.DietaryRestrictions), c.Allergies,
		c.UpdatedAt.UTC(),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteClient removes a client; their weigh-ins and water events cascade.
func (d *DB) DeleteClient(ctx context.Context, coachID int64, id uuid.UUID) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM clients WHERE id=$1 AND coach_id=$2;", id, coachID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
