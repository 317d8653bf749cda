package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"nutriplan/internal/domain"

	"github.com/google/uuid"
)

var (
	// ErrClientNotFound indicates that the client does not exist or belongs to another coach.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidProfile is wrapped by every intake validation failure.
	ErrInvalidProfile = errors.New("invalid profile")
)

// ValidationError reports the first intake field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidProfile }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

const (
	defaultMealsPerDay = 3
	maxWeightKg        = 700
	maxHeightCm        = 300
)

var timeframes = []string{"1-month", "3-months", "6-months", "1-year", "ongoing"}

// ProfileInput is a client profile as entered on the intake form. Weight and
// height may be given in imperial units; they default to kg and cm.
type ProfileInput struct {
	Weight        float64              `json:"weight"`
	WeightUnit    string               `json:"weightUnit,omitempty"`
	Height        float64              `json:"height"`
	HeightUnit    string               `json:"heightUnit,omitempty"`
	Age           int                  `json:"age"`
	Gender        domain.Gender        `json:"gender"`
	ActivityLevel domain.ActivityLevel `json:"activityLevel"`
	PrimaryGoal   domain.Goal          `json:"primaryGoal"`
	MealsPerDay   int                  `json:"mealsPerDay,omitempty"`
}

// ClientIntake is the payload submitted at the end of the intake wizard.
type ClientIntake struct {
	ProfileInput
	Name                string   `json:"name"`
	TargetWeight        float64  `json:"targetWeight,omitempty"`
	Timeframe           string   `json:"timeframe,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	Allergies           string   `json:"allergies,omitempty"`
}

func validPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Profile validates in and returns the normalised metric profile.
func (in ProfileInput) Profile() (domain.ClientProfile, error) {
	var p domain.ClientProfile

	if !validPositive(in.Weight) {
		return p, invalid("weight", "must be a positive number")
	}
	switch in.WeightUnit {
	case "", domain.UnitKg:
		p.Weight = in.Weight
	case domain.UnitLb:
		p.Weight = domain.ConvertWeight(in.Weight, domain.UnitLb, domain.UnitKg)
	default:
		return p, invalid("weightUnit", `must be "kg" or "lb"`)
	}
	if p.Weight > maxWeightKg {
		return p, invalid("weight", "must be at most 700 kg")
	}

	if !validPositive(in.Height) {
		return p, invalid("height", "must be a positive number")
	}
	switch in.HeightUnit {
	case "", domain.UnitCm:
		p.Height = in.Height
	case domain.UnitIn:
		p.Height = domain.ConvertHeight(in.Height, domain.UnitIn, domain.UnitCm)
	default:
		return p, invalid("heightUnit", `must be "cm" or "in"`)
	}
	if p.Height > maxHeightCm {
		return p, invalid("height", "must be at most 300 cm")
	}

	if in.Age < 1 || in.Age > 130 {
		return p, invalid("age", "must be between 1 and 130")
	}
	p.Age = in.Age

	switch in.Gender {
	case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
		p.Gender = in.Gender
	default:
		return p, invalid("gender", "must be male, female or other")
	}

	if !slices.Contains(domain.ActivityLevels, in.ActivityLevel) {
		return p, invalid("activityLevel", "is not a known activity level")
	}
	p.ActivityLevel = in.ActivityLevel

	if !slices.Contains(domain.Goals, in.PrimaryGoal) {
		return p, invalid("primaryGoal", "is not a known goal")
	}
	p.PrimaryGoal = in.PrimaryGoal

	p.MealsPerDay = in.MealsPerDay
	if p.MealsPerDay == 0 {
		p.MealsPerDay = defaultMealsPerDay
	}
	if p.MealsPerDay < 3 || p.MealsPerDay > 6 {
		return p, invalid("mealsPerDay", "must be between 3 and 6")
	}
	return p, nil
}

// ClientService encapsulates client intake use cases.
type ClientService struct {
	repo domain.ClientRepository
}

// NewClientService creates a ClientService backed by the given repository.
func NewClientService(repo domain.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) apply(c *domain.Client, in ClientIntake) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return invalid("name", "is required")
	}
	profile, err := in.Profile()
	if err != nil {
		return err
	}

	var target float64
	if in.TargetWeight != 0 {
		if !validPositive(in.TargetWeight) {
			return invalid("targetWeight", "must be a positive number")
		}
		target = in.TargetWeight
		if in.WeightUnit == domain.UnitLb {
			target = domain.ConvertWeight(target, domain.UnitLb, domain.UnitKg)
		}
		if target > maxWeightKg {
			return invalid("targetWeight", "must be at most 700 kg")
		}
	}
	if in.Timeframe != "" && !slices.Contains(timeframes, in.Timeframe) {
		return invalid("timeframe", "is not a known timeframe")
	}

	restrictions := make([]string, 0, len(in.DietaryRestrictions))
	for _, r := range in.DietaryRestrictions {
		if r = strings.TrimSpace(r); r != "" && !slices.Contains(restrictions, r) {
			restrictions = append(restrictions, r)
		}
	}

	c.Name = name
	c.Profile = profile
	c.TargetWeight = target
	c.Timeframe = in.Timeframe
	c.DietaryRestrictions = restrictions
	c.Allergies = strings.TrimSpace(in.Allergies)
	return nil
}

// Create validates an intake submission and stores a new client.
func (s *ClientService) Create(ctx context.Context, coachID int64, in ClientIntake) (*domain.Client, error) {
	c := &domain.Client{ID: uuid.New(), CoachID: coachID}
	if err := s.apply(c, in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a client owned by coachID.
func (s *ClientService) Get(ctx context.Context, coachID int64, id uuid.UUID) (*domain.Client, error) {
	return loadClient(ctx, s.repo, coachID, id)
}

// List returns every client owned by coachID.
func (s *ClientService) List(ctx context.Context, coachID int64) ([]domain.Client, error) {
	return s.repo.ListClients(ctx, coachID)
}

// Update replaces the intake answers of an existing client.
func (s *ClientService) Update(ctx context.Context, coachID int64, id uuid.UUID, in ClientIntake) (*domain.Client, error) {
	c, err := loadClient(ctx, s.repo, coachID, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(c, in); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now().UTC()
	ok, err := s.repo.UpdateClient(ctx, c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrClientNotFound
	}
	return c, nil
}

// Delete removes a client.
func (s *ClientService) Delete(ctx context.Context, coachID int64, id uuid.UUID) error {
	ok, err := s.repo.DeleteClient(ctx, coachID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrClientNotFound
	}
	return nil
}

func loadClient(ctx context.Context, repo domain.ClientRepository, coachID int64, id uuid.UUID) (*domain.Client, error) {
	c, err := repo.GetClient(ctx, coachID, id)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if c == nil {
		return nil, ErrClientNotFound
	}
	return c, nil
}
