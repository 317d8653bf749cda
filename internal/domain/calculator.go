package domain

import "math"

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	waterMlPerKg       = 35
	waterActivityBonus = 500

	fiberAgeThreshold = 50
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityHigh:      1.725,
	ActivityExtreme:   1.9,
}

type macroRatios struct {
	protein, fat, carbs float64
}

var (
	goalMacroRatios = map[Goal]macroRatios{
		GoalWeightLoss:          {protein: 0.35, fat: 0.25, carbs: 0.40},
		GoalMuscleGain:          {protein: 0.30, fat: 0.25, carbs: 0.45},
		GoalAthleticPerformance: {protein: 0.25, fat: 0.25, carbs: 0.50},
	}
	defaultMacroRatios = macroRatios{protein: 0.25, fat: 0.30, carbs: 0.45}
)

type mealShare struct {
	slot     string
	fraction float64
}

var mealShares = map[int][]mealShare{
	3: {{"breakfast", 0.25}, {"lunch", 0.35}, {"dinner", 0.40}},
	4: {{"breakfast", 0.25}, {"lunch", 0.30}, {"dinner", 0.35}, {"snack", 0.10}},
	5: {{"breakfast", 0.25}, {"lunch", 0.25}, {"dinner", 0.30}, {"snack1", 0.10}, {"snack2", 0.10}},
	6: {{"meal1", 0.17}, {"meal2", 0.17}, {"meal3", 0.17}, {"meal4", 0.17}, {"meal5", 0.16}, {"meal6", 0.16}},
}

// Round rounds half up. Non-finite values round to 0 and values beyond the
// int range saturate.
func Round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f := math.Floor(v + 0.5)
	switch {
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	}
	return int(f)
}

// ComputeBMR returns the basal metabolic rate in kcal/day using the
// Mifflin-St Jeor equation. Inputs are not range checked.
func ComputeBMR(weight, height float64, age int, gender Gender) float64 {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// ComputeBMRHarrisBenedict returns the basal metabolic rate using the revised
// Harris-Benedict equation.
func ComputeBMRHarrisBenedict(weight, height float64, age int, gender Gender) float64 {
	a := float64(age)
	if gender == GenderMale {
		return 88.362 + 13.397*weight + 4.799*height - 5.677*a
	}
	return 447.593 + 9.247*weight + 3.098*height - 4.330*a
}

// ActivityMultiplier returns the TDEE multiplier for level, falling back to
// the sedentary multiplier for unknown levels.
func ActivityMultiplier(level ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return activityMultipliers[ActivitySedentary]
}

// GoalAdjustment returns the daily kcal added to TDEE for goal.
func GoalAdjustment(goal Goal) float64 {
	switch goal {
	case GoalWeightLoss:
		return -500
	case GoalMuscleGain:
		return 300
	case GoalAthleticPerformance:
		return 200
	default:
		return 0
	}
}

// DailyCalories returns the goal-adjusted total daily energy expenditure.
func DailyCalories(p ClientProfile) int {
	tdee := ComputeBMR(p.Weight, p.Height, p.Age, p.Gender) * ActivityMultiplier(p.ActivityLevel)
	return Round(tdee + GoalAdjustment(p.PrimaryGoal))
}

// CalculateMacros splits calories into gram targets using the ratio table for
// goal. Each macro is rounded on its own, so the grams need not add back up to
// calories exactly.
func CalculateMacros(calories int, goal Goal) Macros {
	r, ok := goalMacroRatios[goal]
	if !ok {
		r = defaultMacroRatios
	}
	c := float64(calories)
	return Macros{
		Protein: Round(c * r.protein / kcalPerGramProtein),
		Carbs:   Round(c * r.carbs / kcalPerGramCarbs),
		Fat:     Round(c * r.fat / kcalPerGramFat),
	}
}

// FiberTarget returns the daily fiber target in grams.
func FiberTarget(age int, gender Gender) int {
	if age < fiberAgeThreshold {
		if gender == GenderMale {
			return 38
		}
		return 25
	}
	if gender == GenderMale {
		return 30
	}
	return 21
}

// WaterTarget returns the daily water target in mL.
func WaterTarget(weight float64, level ActivityLevel) int {
	base := weight * waterMlPerKg
	if level == ActivityHigh || level == ActivityExtreme {
		base += waterActivityBonus
	}
	return Round(base)
}

// DailyNeeds computes every daily target for p.
func DailyNeeds(p ClientProfile) NutritionTargets {
	calories := DailyCalories(p)
	m := CalculateMacros(calories, p.PrimaryGoal)
	return NutritionTargets{
		Calories: calories,
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fat:      m.Fat,
		Fiber:    FiberTarget(p.Age, p.Gender),
		Water:    WaterTarget(p.Weight, p.ActivityLevel),
		BMR:      Round(ComputeBMR(p.Weight, p.Height, p.Age, p.Gender)),
	}
}

// DistributeMeals splits calories across the meal slots for mealsPerDay.
// Unsupported counts get a single breakfast slot holding everything.
func DistributeMeals(calories, mealsPerDay int) MealDistribution {
	shares, ok := mealShares[mealsPerDay]
	if !ok {
		return MealDistribution{"breakfast": calories}
	}
	out := make(MealDistribution, len(shares))
	for _, s := range shares {
		out[s.slot] = Round(float64(calories) * s.fraction)
	}
	return out
}

// MealSlots returns the slot names for mealsPerDay in serving order.
func MealSlots(mealsPerDay int) []string {
	shares, ok := mealShares[mealsPerDay]
	if !ok {
		return []string{"breakfast"}
	}
	slots := make([]string, len(shares))
	for i, s := range shares {
		slots[i] = s.slot
	}
	return slots
}

// WeightProgress returns how much of the distance from start to target has
// been covered by latest, as a percentage clamped to [0, 100].
func WeightProgress(start, latest, target float64) float64 {
	total := math.Abs(start - target)
	if total == 0 {
		return 100
	}
	covered := math.Abs(start - latest)
	if (latest-start)*(target-start) < 0 {
		// moved away from the target
		return 0
	}
	return math.Min(covered/total*100, 100)
}
