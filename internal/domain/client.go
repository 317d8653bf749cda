package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Client is a coaching client and the intake answers collected for them.
type Client struct {
	ID                  uuid.UUID     `json:"id"`
	CoachID             int64         `json:"coachId"`
	Name                string        `json:"name"`
	Profile             ClientProfile `json:"profile"`
	TargetWeight        float64       `json:"targetWeight,omitempty"`
	Timeframe           string        `json:"timeframe,omitempty"`
	DietaryRestrictions []string      `json:"dietaryRestrictions"`
	Allergies           string        `json:"allergies,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// ClientRepository is the port for client persistence. Every call is scoped
// to the owning coach; Get returns (nil, nil) for unknown or foreign clients.
type ClientRepository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, coachID int64, id uuid.UUID) (*Client, error)
	ListClients(ctx context.Context, coachID int64) ([]Client, error)
	UpdateClient(ctx context.Context, c *Client) (bool, error)
	DeleteClient(ctx context.Context, coachID int64, id uuid.UUID) (bool, error)
}
