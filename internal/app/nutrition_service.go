package app

import (
	"context"

	"nutriplan/internal/domain"

	"github.com/google/uuid"
)

// MealSlot is one meal of the day and its calorie allotment.
type MealSlot struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

// Plan bundles the daily targets and meal split for a profile.
type Plan struct {
	ClientID          *uuid.UUID              `json:"clientId,omitempty"`
	Profile           domain.ClientProfile    `json:"profile"`
	Targets           domain.NutritionTargets `json:"targets"`
	Distribution      domain.MealDistribution `json:"distribution"`
	Meals             []MealSlot              `json:"meals"`
	BMRHarrisBenedict int                     `json:"bmrHarrisBenedict"`
}

// NutritionService computes nutrition plans.
type NutritionService struct {
	clients domain.ClientRepository
}

// NewNutritionService creates a NutritionService that reads stored profiles
// from clients.
func NewNutritionService(clients domain.ClientRepository) *NutritionService {
	return &NutritionService{clients: clients}
}

// Calculate validates an ad-hoc profile and returns its plan.
func (s *NutritionService) Calculate(in ProfileInput) (*Plan, error) {
	p, err := in.Profile()
	if err != nil {
		return nil, err
	}
	return buildPlan(p), nil
}

// PlanForClient returns the plan for a stored client.
func (s *NutritionService) PlanForClient(ctx context.Context, coachID int64, id uuid.UUID) (*Plan, error) {
	c, err := loadClient(ctx, s.clients, coachID, id)
	if err != nil {
		return nil, err
	}
	plan := buildPlan(c.Profile)
	plan.ClientID = &c.ID
	return plan, nil
}

func buildPlan(p domain.ClientProfile) *Plan {
	targets := domain.DailyNeeds(p)
	dist := domain.DistributeMeals(targets.Calories, p.MealsPerDay)

	slots := domain.MealSlots(p.MealsPerDay)
	meals := make([]MealSlot, 0, len(slots))
	for _, name := range slots {
		meals = append(meals, MealSlot{Name: name, Calories: dist[name]})
	}

	hb := domain.ComputeBMRHarrisBenedict(p.Weight, p.Height, p.Age, p.Gender)
	return &Plan{
		Profile:           p,
		Targets:           targets,
		Distribution:      dist,
		Meals:             meals,
		BMRHarrisBenedict: domain.Round(hb),
	}
}
