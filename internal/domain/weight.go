package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WeighIn is a single weight measurement for a client.
type WeighIn struct {
	ID        int64     `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	Day       string    `json:"day"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"createdAt"`
}

// WeightRepository is the port for weigh-in persistence.
type WeightRepository interface {
	AddWeighIn(ctx context.Context, clientID uuid.UUID, value float64, unit string, createdAt time.Time) (int64, error)
	DeleteLatestWeighIn(ctx context.Context, clientID uuid.UUID) (bool, error)
	LatestWeighInForLocalDay(ctx context.Context, clientID uuid.UUID, localDay string) (*WeighIn, error)
	ListRecentWeighIns(ctx context.Context, clientID uuid.UUID, limit int) ([]WeighIn, error)
}
