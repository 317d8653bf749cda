package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WaterEvent represents a single water intake/decrement event.
type WaterEvent struct {
	ID        int64     `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	DeltaMl   int       `json:"deltaMl"`
	CreatedAt time.Time `json:"createdAt"`
}

// WaterRepository is the port for water persistence.
type WaterRepository interface {
	AddWaterEvent(ctx context.Context, clientID uuid.UUID, deltaMl int, createdAt time.Time) (int64, error)
	DeleteWaterEvent(ctx context.Context, clientID uuid.UUID, id int64) error
	ListRecentWaterEvents(ctx context.Context, clientID uuid.UUID, limit int) ([]WaterEvent, error)
	WaterTotalForLocalDay(ctx context.Context, clientID uuid.UUID, localDay string) (int, error)
}
