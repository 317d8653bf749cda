package app

import (
	"context"
	"time"

	"nutriplan/internal/domain"

	"github.com/google/uuid"
)

// WeightService encapsulates weigh-in use cases.
type WeightService struct {
	clients domain.ClientRepository
	repo    domain.WeightRepository
}

// NewWeightService creates a WeightService backed by the given repositories.
func NewWeightService(clients domain.ClientRepository, repo domain.WeightRepository) *WeightService {
	return &WeightService{clients: clients, repo: repo}
}

// Progress summarises a client's weight change relative to their intake
// weight and target. Target and Percent are nil when no target is set.
type Progress struct {
	Unit    string   `json:"unit"`
	Start   float64  `json:"start"`
	Latest  float64  `json:"latest"`
	Target  *float64 `json:"target"`
	Percent *float64 `json:"percent"`
	Entries int      `json:"entries"`
}

func validUnit(unit string) error {
	if unit != domain.UnitKg && unit != domain.UnitLb {
		return invalid("unit", `must be "kg" or "lb"`)
	}
	return nil
}

// RecordWeighIn validates and stores a new weight measurement, returning the
// latest entry for today after the insert.
func (s *WeightService) RecordWeighIn(ctx context.Context, coachID int64, clientID uuid.UUID, value float64, unit string) (*domain.WeighIn, string, error) {
	if !validPositive(value) {
		return nil, "", invalid("value", "must be > 0")
	}
	if err := validUnit(unit); err != nil {
		return nil, "", err
	}
	if domain.ConvertWeight(value, unit, domain.UnitKg) > maxWeightKg {
		return nil, "", invalid("value", "must be at most 700 kg")
	}
	if _, err := loadClient(ctx, s.clients, coachID, clientID); err != nil {
		return nil, "", err
	}
	now := time.Now()
	today := now.In(time.Local).Format("2006-01-02")
	if _, err := s.repo.AddWeighIn(ctx, clientID, value, unit, now); err != nil {
		return nil, today, err
	}
	entry, err := s.repo.LatestWeighInForLocalDay(ctx, clientID, today)
	return entry, today, err
}

// ListRecent returns the most recent weigh-ins up to limit.
func (s *WeightService) ListRecent(ctx context.Context, coachID int64, clientID uuid.UUID, limit int) ([]domain.WeighIn, error) {
	if _, err := loadClient(ctx, s.clients, coachID, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListRecentWeighIns(ctx, clientID, limit)
}

// UndoLast deletes the most recent weigh-in and returns the new latest
// entry for today.
func (s *WeightService) UndoLast(ctx context.Context, coachID int64, clientID uuid.UUID) (bool, *domain.WeighIn, string, error) {
	today := time.Now().In(time.Local).Format("2006-01-02")
	if _, err := loadClient(ctx, s.clients, coachID, clientID); err != nil {
		return false, nil, today, err
	}
	deleted, err := s.repo.DeleteLatestWeighIn(ctx, clientID)
	if err != nil {
		return false, nil, today, err
	}
	entry, err := s.repo.LatestWeighInForLocalDay(ctx, clientID, today)
	if err != nil {
		return deleted, nil, today, err
	}
	return deleted, entry, today, nil
}

// Progress reports how far the client has moved from their intake weight
// toward their target, in unit.
func (s *WeightService) Progress(ctx context.Context, coachID int64, clientID uuid.UUID, unit string) (*Progress, error) {
	if err := validUnit(unit); err != nil {
		return nil, err
	}
	c, err := loadClient(ctx, s.clients, coachID, clientID)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.ListRecentWeighIns(ctx, clientID, 1)
	if err != nil {
		return nil, err
	}

	startKg := c.Profile.Weight
	latestKg := startKg
	if len(recent) > 0 {
		latestKg = domain.ConvertWeight(recent[0].Value, recent[0].Unit, domain.UnitKg)
	}

	p := &Progress{
		Unit:    unit,
		Start:   domain.ConvertWeight(startKg, domain.UnitKg, unit),
		Latest:  domain.ConvertWeight(latestKg, domain.UnitKg, unit),
		Entries: len(recent),
	}
	if c.TargetWeight > 0 {
		target := domain.ConvertWeight(c.TargetWeight, domain.UnitKg, unit)
		pct := domain.WeightProgress(startKg, latestKg, c.TargetWeight)
		p.Target, p.Percent = &target, &pct
	}
	return p, nil
}
