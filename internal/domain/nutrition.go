package domain

// Gender as captured by the intake form. Only "male" selects the male
// constant in the formulas; every other value takes the non-male branch.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel describes how active a client is day to day.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHigh      ActivityLevel = "high"
	ActivityExtreme   ActivityLevel = "extreme"
)

// ActivityLevels lists the known levels from least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityHigh, ActivityExtreme,
}

// Goal is the client's primary nutrition goal.
type Goal string

const (
	GoalWeightLoss          Goal = "weight-loss"
	GoalMuscleGain          Goal = "muscle-gain"
	GoalMaintenance         Goal = "maintenance"
	GoalAthleticPerformance Goal = "athletic-performance"
	GoalGeneralHealth       Goal = "general-health"
)

// Goals lists the known goals.
var Goals = []Goal{
	GoalWeightLoss, GoalMuscleGain, GoalMaintenance, GoalAthleticPerformance, GoalGeneralHealth,
}

// ClientProfile holds the inputs the calculator needs. Weight is in kg and
// height in cm.
type ClientProfile struct {
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	PrimaryGoal   Goal          `json:"primaryGoal"`
	MealsPerDay   int           `json:"mealsPerDay"`
}

// NutritionTargets are the computed daily targets for a client.
type NutritionTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Water    int `json:"water"`
	BMR      int `json:"bmr"`
}

// Macros are daily macronutrient targets in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// MealDistribution maps a meal slot name to its calorie allotment.
type MealDistribution map[string]int
