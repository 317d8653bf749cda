package app_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"nutriplan/internal/app"
	"nutriplan/internal/domain"
)

type mockClientRepo struct {
	createFn func(ctx context.Context, c *domain.Client) error
	getFn    func(ctx context.Context, coachID int64, id uuid.UUID) (*domain.Client, error)
	listFn   func(ctx context.Context, coachID int64) ([]domain.Client, error)
	updateFn func(ctx context.Context, c *domain.Client) (bool, error)
	deleteFn func(ctx context.Context, coachID int64, id uuid.UUID) (bool, error)
}

func (m *mockClientRepo) CreateClient(ctx context.Context, c *domain.Client) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return nil
}

func (m *mockClientRepo) GetClient(ctx context.Context, coachID int64, id uuid.UUID) (*domain.Client, error) {
	if m.getFn != nil {
		return m.getFn(ctx, coachID, id)
	}
	return nil, nil
}

func (m *mockClientRepo) ListClients(ctx context.Context, coachID int64) ([]domain.Client, error) {
	if m.listFn != nil {
		return m.listFn(ctx, coachID)
	}
	return nil, nil
}

func (m *mockClientRepo) UpdateClient(ctx context.Context, c *domain.Client) (bool, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, c)
	}
	return true, nil
}

func (m *mockClientRepo) DeleteClient(ctx context.Context, coachID int64, id uuid.UUID) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, coachID, id)
	}
	return true, nil
}

// ownedBy returns a client repo that only yields c to coachID.
func ownedBy(coachID int64, c *domain.Client) *mockClientRepo {
	return &mockClientRepo{
		getFn: func(_ context.Context, cid int64, id uuid.UUID) (*domain.Client, error) {
			if cid != coachID || id != c.ID {
				return nil, nil
			}
			cp := *c
			return &cp, nil
		},
	}
}

func sampleClient() *domain.Client {
	return &domain.Client{
		ID:      uuid.New(),
		CoachID: 1,
		Name:    "Alex",
		Profile: domain.ClientProfile{
			Weight: 70, Height: 170, Age: 30,
			Gender:        domain.GenderMale,
			ActivityLevel: domain.ActivityModerate,
			PrimaryGoal:   domain.GoalWeightLoss,
			MealsPerDay:   3,
		},
		TargetWeight: 65,
	}
}

func validIntake() app.ClientIntake {
	return app.ClientIntake{
		ProfileInput: app.ProfileInput{
			Weight: 70, Height: 170, Age: 30,
			Gender:        domain.GenderMale,
			ActivityLevel: domain.ActivityModerate,
			PrimaryGoal:   domain.GoalWeightLoss,
			MealsPerDay:   4,
		},
		Name:                "  Alex  ",
		TargetWeight:        65,
		Timeframe:           "3-months",
		DietaryRestrictions: []string{"vegetarian", " ", "vegetarian", "gluten-free"},
	}
}

func TestProfileInput_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*app.ProfileInput)
		field  string
	}{
		{"zero weight", func(p *app.ProfileInput) { p.Weight = 0 }, "weight"},
		{"negative weight", func(p *app.ProfileInput) { p.Weight = -70 }, "weight"},
		{"NaN weight", func(p *app.ProfileInput) { p.Weight = math.NaN() }, "weight"},
		{"infinite height", func(p *app.ProfileInput) { p.Height = math.Inf(1) }, "height"},
		{"huge finite weight", func(p *app.ProfileInput) { p.Weight = 1e300 }, "weight"},
		{"weight above 700 kg", func(p *app.ProfileInput) { p.Weight = 701 }, "weight"},
		{"weight above 700 kg in lb", func(p *app.ProfileInput) { p.Weight, p.WeightUnit = 1600, "lb" }, "weight"},
		{"height above 300 cm", func(p *app.ProfileInput) { p.Height = 301 }, "height"},
		{"height above 300 cm in inches", func(p *app.ProfileInput) { p.Height, p.HeightUnit = 120, "in" }, "height"},
		{"bad weight unit", func(p *app.ProfileInput) { p.WeightUnit = "st" }, "weightUnit"},
		{"bad height unit", func(p *app.ProfileInput) { p.HeightUnit = "ft" }, "heightUnit"},
		{"zero age", func(p *app.ProfileInput) { p.Age = 0 }, "age"},
		{"implausible age", func(p *app.ProfileInput) { p.Age = 200 }, "age"},
		{"missing gender", func(p *app.ProfileInput) { p.Gender = "" }, "gender"},
		{"unknown activity", func(p *app.ProfileInput) { p.ActivityLevel = "couch" }, "activityLevel"},
		{"unknown goal", func(p *app.ProfileInput) { p.PrimaryGoal = "bulk" }, "primaryGoal"},
		{"too many meals", func(p *app.ProfileInput) { p.MealsPerDay = 7 }, "mealsPerDay"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validIntake().ProfileInput
			tc.mutate(&in)
			_, err := in.Profile()
			if !errors.Is(err, app.ErrInvalidProfile) {
				t.Fatalf("expected ErrInvalidProfile, got %v", err)
			}
			var verr *app.ValidationError
			if !errors.As(err, &verr) || verr.Field != tc.field {
				t.Fatalf("expected field %q, got %v", tc.field, err)
			}
		})
	}
}

func TestProfileInput_ImperialUnits(t *testing.T) {
	in := app.ProfileInput{
		Weight: 154.3235835, WeightUnit: "lb",
		Height: 70, HeightUnit: "in",
		Age: 30, Gender: domain.GenderFemale,
		ActivityLevel: domain.ActivityLight, PrimaryGoal: domain.GoalMaintenance,
	}
	p, err := in.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p.Weight-70) > 0.001 || math.Abs(p.Height-177.8) > 0.001 {
		t.Errorf("expected 70kg/177.8cm, got %vkg/%vcm", p.Weight, p.Height)
	}
	if p.MealsPerDay != 3 {
		t.Errorf("expected default of 3 meals, got %d", p.MealsPerDay)
	}
}

func TestClientService_Create(t *testing.T) {
	var stored *domain.Client
	repo := &mockClientRepo{
		createFn: func(_ context.Context, c *domain.Client) error {
			stored = c
			return nil
		},
	}
	svc := app.NewClientService(repo)

	c, err := svc.Create(context.Background(), 7, validIntake())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != c {
		t.Fatal("expected the returned client to be stored")
	}
	if c.ID == uuid.Nil || c.CoachID != 7 || c.Name != "Alex" {
		t.Errorf("unexpected client identity: %+v", c)
	}
	if diff := cmp.Diff([]string{"vegetarian", "gluten-free"}, c.DietaryRestrictions); diff != "" {
		t.Errorf("restrictions mismatch (-want +got):\n%s", diff)
	}
	if c.Profile.MealsPerDay != 4 || c.TargetWeight != 65 {
		t.Errorf("unexpected profile: %+v target=%v", c.Profile, c.TargetWeight)
	}
	if c.CreatedAt.IsZero() || !c.CreatedAt.Equal(c.UpdatedAt) {
		t.Errorf("expected timestamps to be set, got %v / %v", c.CreatedAt, c.UpdatedAt)
	}
}

func TestClientService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*app.ClientIntake)
	}{
		{"blank name", func(in *app.ClientIntake) { in.Name = "   " }},
		{"negative target", func(in *app.ClientIntake) { in.TargetWeight = -1 }},
		{"target above 700 kg", func(in *app.ClientIntake) { in.TargetWeight = 800 }},
		{"bad timeframe", func(in *app.ClientIntake) { in.Timeframe = "forever" }},
		{"bad profile", func(in *app.ClientIntake) { in.Age = -3 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockClientRepo{
				createFn: func(_ context.Context, _ *domain.Client) error {
					t.Fatal("invalid intake must not be stored")
					return nil
				},
			}
			in := validIntake()
			tc.mutate(&in)
			_, err := app.NewClientService(repo).Create(context.Background(), 1, in)
			if !errors.Is(err, app.ErrInvalidProfile) {
				t.Fatalf("expected ErrInvalidProfile, got %v", err)
			}
		})
	}
}

func TestClientService_Create_TargetInPounds(t *testing.T) {
	in := validIntake()
	in.Weight, in.WeightUnit, in.TargetWeight = 176.37, "lb", 165.35
	c, err := app.NewClientService(&mockClientRepo{}).Create(context.Background(), 1, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(c.Profile.Weight-80) > 0.01 || math.Abs(c.TargetWeight-75) > 0.01 {
		t.Errorf("expected 80kg -> 75kg, got %v -> %v", c.Profile.Weight, c.TargetWeight)
	}
}

func TestClientService_Get_NotFound(t *testing.T) {
	c := sampleClient()
	svc := app.NewClientService(ownedBy(1, c))

	if _, err := svc.Get(context.Background(), 2, c.ID); !errors.Is(err, app.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound for another coach, got %v", err)
	}
	got, err := svc.Get(context.Background(), 1, c.ID)
	if err != nil || got.Name != "Alex" {
		t.Fatalf("expected Alex, got %v, %v", got, err)
	}
}

func TestClientService_Update(t *testing.T) {
	c := sampleClient()
	repo := ownedBy(1, c)
	var saved *domain.Client
	repo.updateFn = func(_ context.Context, u *domain.Client) (bool, error) {
		saved = u
		return true, nil
	}

	in := validIntake()
	in.Name = "Alexandra"
	in.PrimaryGoal = domain.GoalMuscleGain
	got, err := app.NewClientService(repo).Update(context.Background(), 1, c.ID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.ID != c.ID || got.Name != "Alexandra" || got.Profile.PrimaryGoal != domain.GoalMuscleGain {
		t.Fatalf("unexpected update result: %+v", got)
	}
}

func TestClientService_Delete(t *testing.T) {
	repo := &mockClientRepo{
		deleteFn: func(_ context.Context, _ int64, _ uuid.UUID) (bool, error) { return false, nil },
	}
	err := app.NewClientService(repo).Delete(context.Background(), 1, uuid.New())
	if !errors.Is(err, app.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
