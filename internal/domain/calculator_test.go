package domain_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nutriplan/internal/domain"
)

func TestComputeBMR(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		age    int
		gender domain.Gender
		want   float64
	}{
		{"male", 70, 170, 30, domain.GenderMale, 1617.5},
		{"female", 70, 170, 30, domain.GenderFemale, 1451.5},
		{"other uses non-male branch", 70, 170, 30, domain.GenderOther, 1451.5},
		{"unknown gender uses non-male branch", 70, 170, 30, "", 1451.5},
		{"heavier older male", 95.5, 188, 52, domain.GenderMale, 10*95.5 + 6.25*188 - 5*52 + 5},
		{"zero inputs do not fail", 0, 0, 0, domain.GenderMale, 5},
		{"negative inputs do not fail", -10, -10, -10, domain.GenderFemale, -100 - 62.5 + 50 - 161},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ComputeBMR(tc.weight, tc.height, tc.age, tc.gender)
			if !almostEqual(got, tc.want, 1e-9) {
				t.Errorf("ComputeBMR(%v, %v, %v, %q) = %v; want %v",
					tc.weight, tc.height, tc.age, tc.gender, got, tc.want)
			}
		})
	}
}

func TestComputeBMRHarrisBenedict(t *testing.T) {
	male := domain.ComputeBMRHarrisBenedict(70, 170, 30, domain.GenderMale)
	if !almostEqual(male, 1671.672, 1e-6) {
		t.Errorf("male = %v; want 1671.672", male)
	}
	female := domain.ComputeBMRHarrisBenedict(70, 170, 30, domain.GenderFemale)
	want := 447.593 + 9.247*70 + 3.098*170 - 4.330*30
	if !almostEqual(female, want, 1e-6) {
		t.Errorf("female = %v; want %v", female, want)
	}
}

func TestActivityMultiplier(t *testing.T) {
	tests := []struct {
		level domain.ActivityLevel
		want  float64
	}{
		{domain.ActivitySedentary, 1.2},
		{domain.ActivityLight, 1.375},
		{domain.ActivityModerate, 1.55},
		{domain.ActivityHigh, 1.725},
		{domain.ActivityExtreme, 1.9},
		{"", 1.2},
		{"couch", 1.2},
		{"Moderate", 1.2},
	}
	for _, tc := range tests {
		if got := domain.ActivityMultiplier(tc.level); got != tc.want {
			t.Errorf("ActivityMultiplier(%q) = %v; want %v", tc.level, got, tc.want)
		}
	}
}

func TestDailyCalories_ReferenceScenario(t *testing.T) {
	p := domain.ClientProfile{
		Weight:        70,
		Height:        170,
		Age:           30,
		Gender:        domain.GenderMale,
		ActivityLevel: domain.ActivityModerate,
		PrimaryGoal:   domain.GoalWeightLoss,
	}
	if got := domain.DailyCalories(p); got != 2007 {
		t.Fatalf("DailyCalories = %d; want 2007", got)
	}
}

func TestDailyCalories_GoalAdjustment(t *testing.T) {
	base := domain.ClientProfile{
		Weight: 70, Height: 170, Age: 30,
		Gender: domain.GenderMale, ActivityLevel: domain.ActivitySedentary,
	}
	tdee := 1617.5 * 1.2 // 1941

	tests := []struct {
		goal domain.Goal
		want int
	}{
		{domain.GoalWeightLoss, int(math.Round(tdee - 500))},
		{domain.GoalMuscleGain, int(math.Round(tdee + 300))},
		{domain.GoalAthleticPerformance, int(math.Round(tdee + 200))},
		{domain.GoalMaintenance, int(math.Round(tdee))},
		{domain.GoalGeneralHealth, int(math.Round(tdee))},
		{"bulk", int(math.Round(tdee))},
	}
	for _, tc := range tests {
		p := base
		p.PrimaryGoal = tc.goal
		if got := domain.DailyCalories(p); got != tc.want {
			t.Errorf("goal %q: DailyCalories = %d; want %d", tc.goal, got, tc.want)
		}
	}
}

func TestDailyCalories_IncreasesWithActivity(t *testing.T) {
	for _, g := range []domain.Gender{domain.GenderMale, domain.GenderFemale} {
		p := domain.ClientProfile{
			Weight: 62, Height: 165, Age: 41, Gender: g,
			PrimaryGoal: domain.GoalMaintenance,
		}
		prev := -1
		for _, level := range domain.ActivityLevels {
			p.ActivityLevel = level
			got := domain.DailyCalories(p)
			if got <= prev {
				t.Errorf("%s %s: calories %d not above previous level's %d", g, level, got, prev)
			}
			prev = got
		}
	}
}

func TestCalculateMacros(t *testing.T) {
	tests := []struct {
		calories int
		goal     domain.Goal
		want     domain.Macros
	}{
		{2007, domain.GoalWeightLoss, domain.Macros{Protein: 176, Carbs: 201, Fat: 56}},
		{2000, domain.GoalMuscleGain, domain.Macros{Protein: 150, Carbs: 225, Fat: 56}},
		{2000, domain.GoalAthleticPerformance, domain.Macros{Protein: 125, Carbs: 250, Fat: 56}},
		{2000, domain.GoalMaintenance, domain.Macros{Protein: 125, Carbs: 225, Fat: 67}},
		{2000, "", domain.Macros{Protein: 125, Carbs: 225, Fat: 67}},
	}
	for _, tc := range tests {
		got := domain.CalculateMacros(tc.calories, tc.goal)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("CalculateMacros(%d, %q) mismatch (-want +got):\n%s", tc.calories, tc.goal, diff)
		}
	}
}

func TestCalculateMacros_EnergyDrift(t *testing.T) {
	// Each of the three grams is off by at most half a gram.
	const maxDrift = 0.5*4 + 0.5*4 + 0.5*9

	for _, goal := range append(domain.Goals, "unknown") {
		for calories := 1200; calories <= 4000; calories += 37 {
			m := domain.CalculateMacros(calories, goal)
			energy := 4*m.Protein + 4*m.Carbs + 9*m.Fat
			if drift := math.Abs(float64(energy - calories)); drift > maxDrift {
				t.Errorf("goal %q, %d kcal: macros give %d kcal (drift %v)", goal, calories, energy, drift)
			}
		}
	}
}

func TestFiberTarget(t *testing.T) {
	tests := []struct {
		age    int
		gender domain.Gender
		want   int
	}{
		{49, domain.GenderMale, 38},
		{49, domain.GenderFemale, 25},
		{49, domain.GenderOther, 25},
		{50, domain.GenderMale, 30},
		{50, domain.GenderFemale, 21},
		{71, domain.GenderOther, 21},
		{18, domain.GenderMale, 38},
	}
	for _, tc := range tests {
		if got := domain.FiberTarget(tc.age, tc.gender); got != tc.want {
			t.Errorf("FiberTarget(%d, %q) = %d; want %d", tc.age, tc.gender, got, tc.want)
		}
	}
}

func TestWaterTarget(t *testing.T) {
	tests := []struct {
		weight float64
		level  domain.ActivityLevel
		want   int
	}{
		{70, domain.ActivitySedentary, 2450},
		{70, domain.ActivityModerate, 2450},
		{70, domain.ActivityHigh, 2950},
		{70, domain.ActivityExtreme, 2950},
		{70, "", 2450},
		{64.2, domain.ActivityLight, 2247},
	}
	for _, tc := range tests {
		if got := domain.WaterTarget(tc.weight, tc.level); got != tc.want {
			t.Errorf("WaterTarget(%v, %q) = %d; want %d", tc.weight, tc.level, got, tc.want)
		}
	}
}

func TestDailyNeeds(t *testing.T) {
	p := domain.ClientProfile{
		Weight:        70,
		Height:        170,
		Age:           30,
		Gender:        domain.GenderMale,
		ActivityLevel: domain.ActivityModerate,
		PrimaryGoal:   domain.GoalWeightLoss,
		MealsPerDay:   3,
	}
	want := domain.NutritionTargets{
		Calories: 2007,
		Protein:  176,
		Carbs:    201,
		Fat:      56,
		Fiber:    38,
		Water:    2450,
		BMR:      1618,
	}
	got := domain.DailyNeeds(p)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DailyNeeds mismatch (-want +got):\n%s", diff)
	}
	if again := domain.DailyNeeds(p); again != got {
		t.Fatalf("DailyNeeds not deterministic: %+v then %+v", got, again)
	}
}

func TestDailyNeeds_NonFiniteInput(t *testing.T) {
	p := domain.ClientProfile{
		Weight: math.NaN(), Height: 170, Age: 30,
		Gender: domain.GenderFemale, ActivityLevel: domain.ActivityHigh,
	}
	got := domain.DailyNeeds(p)
	if got.Calories != 0 || got.BMR != 0 || got.Water != 0 {
		t.Fatalf("expected zeroed energy and water targets, got %+v", got)
	}
	if got.Fiber != 25 {
		t.Fatalf("expected fiber 25, got %d", got.Fiber)
	}
}

func TestDailyNeeds_OutOfRangeInput(t *testing.T) {
	p := domain.ClientProfile{
		Weight: 1e300, Height: 170, Age: 30,
		Gender: domain.GenderMale, ActivityLevel: domain.ActivityModerate,
		PrimaryGoal: domain.GoalWeightLoss,
	}
	got := domain.DailyNeeds(p)
	if got.Calories != math.MaxInt || got.BMR != math.MaxInt || got.Water != math.MaxInt {
		t.Fatalf("expected saturated energy and water targets, got %+v", got)
	}
	if got.Protein <= 0 || got.Carbs <= 0 || got.Fat <= 0 {
		t.Fatalf("expected positive macros, got %+v", got)
	}
}

func TestDistributeMeals(t *testing.T) {
	tests := []struct {
		name  string
		meals int
		want  domain.MealDistribution
	}{
		{"three meals", 3, domain.MealDistribution{"breakfast": 500, "lunch": 700, "dinner": 800}},
		{"four meals", 4, domain.MealDistribution{"breakfast": 500, "lunch": 600, "dinner": 700, "snack": 200}},
		{"five meals", 5, domain.MealDistribution{"breakfast": 500, "lunch": 500, "dinner": 600, "snack1": 200, "snack2": 200}},
		{"six meals", 6, domain.MealDistribution{"meal1": 340, "meal2": 340, "meal3": 340, "meal4": 340, "meal5": 320, "meal6": 320}},
		{"unsupported", 7, domain.MealDistribution{"breakfast": 2000}},
		{"zero", 0, domain.MealDistribution{"breakfast": 2000}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.DistributeMeals(2000, tc.meals)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("DistributeMeals(2000, %d) mismatch (-want +got):\n%s", tc.meals, diff)
			}
		})
	}
}

func TestDistributeMeals_IndependentRounding(t *testing.T) {
	got := domain.DistributeMeals(2007, 3)
	want := domain.MealDistribution{"breakfast": 502, "lunch": 702, "dinner": 803}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMealSlots(t *testing.T) {
	if diff := cmp.Diff([]string{"breakfast", "lunch", "dinner", "snack"}, domain.MealSlots(4)); diff != "" {
		t.Errorf("MealSlots(4) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"breakfast"}, domain.MealSlots(2)); diff != "" {
		t.Errorf("MealSlots(2) mismatch (-want +got):\n%s", diff)
	}
	for _, n := range []int{3, 4, 5, 6} {
		slots := domain.MealSlots(n)
		dist := domain.DistributeMeals(1800, n)
		if len(slots) != len(dist) {
			t.Errorf("meals %d: %d slots but %d distribution entries", n, len(slots), len(dist))
		}
		for _, s := range slots {
			if _, ok := dist[s]; !ok {
				t.Errorf("meals %d: slot %q missing from distribution", n, s)
			}
		}
	}
}

func TestWeightProgress(t *testing.T) {
	tests := []struct {
		name                  string
		start, latest, target float64
		want                  float64
	}{
		{"partway down", 80, 77.9, 70, 21},
		{"partway up", 60, 63, 66, 50},
		{"reached", 80, 70, 70, 100},
		{"overshot", 80, 68, 70, 100},
		{"no change", 80, 80, 70, 0},
		{"moved away", 80, 82, 70, 0},
		{"already at target", 70, 72, 70, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.WeightProgress(tc.start, tc.latest, tc.target)
			if !almostEqual(got, tc.want, 1e-9) {
				t.Errorf("WeightProgress(%v, %v, %v) = %v; want %v",
					tc.start, tc.latest, tc.target, got, tc.want)
			}
		})
	}
}
