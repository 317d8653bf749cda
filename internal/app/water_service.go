package app

import (
	"context"
	"time"

	"nutriplan/internal/domain"

	"github.com/google/uuid"
)

const maxWaterDeltaMl = 5000

// WaterService encapsulates water-tracking use cases.
type WaterService struct {
	clients domain.ClientRepository
	repo    domain.WaterRepository
}

// NewWaterService creates a WaterService backed by the given repositories.
func NewWaterService(clients domain.ClientRepository, repo domain.WaterRepository) *WaterService {
	return &WaterService{clients: clients, repo: repo}
}

// WaterDay is a client's intake for one local day against their target.
type WaterDay struct {
	Day         string `json:"day"`
	TotalMl     int    `json:"totalMl"`
	TargetMl    int    `json:"targetMl"`
	RemainingMl int    `json:"remainingMl"`
}

// Today returns the water total for the given local day along with the
// client's daily water target.
func (s *WaterService) Today(ctx context.Context, coachID int64, clientID uuid.UUID, today string) (*WaterDay, error) {
	c, err := loadClient(ctx, s.clients, coachID, clientID)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.WaterTotalForLocalDay(ctx, clientID, today)
	if err != nil {
		return nil, err
	}
	target := domain.WaterTarget(c.Profile.Weight, c.Profile.ActivityLevel)
	return &WaterDay{
		Day:         today,
		TotalMl:     total,
		TargetMl:    target,
		RemainingMl: max(target-total, 0),
	}, nil
}

// RecordEvent validates and stores a water intake event.
func (s *WaterService) RecordEvent(ctx context.Context, coachID int64, clientID uuid.UUID, deltaMl int) (int64, error) {
	if deltaMl == 0 || deltaMl < -maxWaterDeltaMl || deltaMl > maxWaterDeltaMl {
		return 0, invalid("deltaMl", "must be non-zero and within [-5000, 5000]")
	}
	if _, err := loadClient(ctx, s.clients, coachID, clientID); err != nil {
		return 0, err
	}
	return s.repo.AddWaterEvent(ctx, clientID, deltaMl, time.Now())
}

// ListRecent returns the most recent water events up to limit.
func (s *WaterService) ListRecent(ctx context.Context, coachID int64, clientID uuid.UUID, limit int) ([]domain.WaterEvent, error) {
	if _, err := loadClient(ctx, s.clients, coachID, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListRecentWaterEvents(ctx, clientID, limit)
}

// UndoLast deletes the most recent water event.
func (s *WaterService) UndoLast(ctx context.Context, coachID int64, clientID uuid.UUID) (bool, int64, error) {
	if _, err := loadClient(ctx, s.clients, coachID, clientID); err != nil {
		return false, 0, err
	}
	items, err := s.repo.ListRecentWaterEvents(ctx, clientID, 1)
	if err != nil {
		return false, 0, err
	}
	if len(items) == 0 {
		return false, 0, nil
	}
	if err := s.repo.DeleteWaterEvent(ctx, clientID, items[0].ID); err != nil {
		return false, 0, err
	}
	return true, items[0].ID, nil
}
