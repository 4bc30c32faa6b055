package api

type credentialsInput struct {
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	DisplayName string `json:"display_name" form:"display_name"`
	Timezone    string `json:"timezone" form:"timezone"`
	RememberMe  bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type workoutItemPayload struct {
	ExerciseName  string   `json:"exercise" form:"exercise"`
	Sets          int      `json:"sets" form:"sets"`
	TargetReps    string   `json:"target_reps" form:"target_reps"`
	RepsPerformed *int     `json:"reps_performed" form:"reps_performed"`
	WeightKg      *float64 `json:"weight_kg" form:"weight_kg"`
	RestSeconds   *int     `json:"rest_seconds" form:"rest_seconds"`
	Notes         string   `json:"notes" form:"notes"`
}

type workoutSessionPayload struct {
	Date      string               `json:"date" form:"date"`
	StartTime string               `json:"start_time" form:"start_time"`
	EndTime   string               `json:"end_time" form:"end_time"`
	Location  string               `json:"location" form:"location"`
	Notes     string               `json:"notes" form:"notes"`
	Items     []workoutItemPayload `json:"items"`
}

type mealItemPayload struct {
	FoodName    string  `json:"food" form:"food"`
	AmountGrams float64 `json:"amount_grams" form:"amount_grams"`
	Unit        string  `json:"unit" form:"unit"`
}

type mealEntryPayload struct {
	Date     string            `json:"date" form:"date"`
	Time     string            `json:"time" form:"time"`
	MealType string            `json:"meal_type" form:"meal_type"`
	Notes    string            `json:"notes" form:"notes"`
	Items    []mealItemPayload `json:"items"`
}

type foodPayload struct {
	Name            string   `json:"name" form:"name"`
	ProteinPer100g  float64  `json:"protein_per_100g" form:"protein_per_100g"`
	CaloriesPer100g *float64 `json:"calories_per_100g" form:"calories_per_100g"`
	CarbsPer100g    *float64 `json:"carbs_per_100g" form:"carbs_per_100g"`
	FatPer100g      *float64 `json:"fat_per_100g" form:"fat_per_100g"`
}

type studySessionPayload struct {
	Date         string `json:"date" form:"date"`
	StartTime    string `json:"start_time" form:"start_time"`
	EndTime      string `json:"end_time" form:"end_time"`
	ActivityType string `json:"activity_type" form:"activity_type"`
	Notes        string `json:"notes" form:"notes"`
}

type internshipLogPayload struct {
	Date        string  `json:"date" form:"date"`
	Hours       float64 `json:"hours" form:"hours"`
	TaskTitle   string  `json:"task_title" form:"task_title"`
	Description string  `json:"description" form:"description"`
	Billable    bool    `json:"billable" form:"billable"`
}

type habitPayload struct {
	Name string `json:"name" form:"name"`
}

type habitCompletionPayload struct {
	Date  string `json:"date" form:"date"`
	Notes string `json:"notes" form:"notes"`
}

type habitActivePayload struct {
	Active bool `json:"active" form:"active"`
}

type metricsPayload struct {
	Date              string   `json:"date" form:"date"`
	WaterML           int      `json:"water_ml" form:"water_ml"`
	SleepHours        *float64 `json:"sleep_hours" form:"sleep_hours"`
	ScreenTimeMinutes int      `json:"screen_time_minutes" form:"screen_time_minutes"`
	Steps             *int     `json:"steps" form:"steps"`
	Mood              string   `json:"mood" form:"mood"`
	Notes             string   `json:"notes" form:"notes"`
}

type journalPayload struct {
	Date        string `json:"date" form:"date"`
	MorningNote string `json:"morning_note" form:"morning_note"`
	EveningNote string `json:"evening_note" form:"evening_note"`
	GratefulFor string `json:"grateful_for" form:"grateful_for"`
	Highlights  string `json:"highlights" form:"highlights"`
	Mood        string `json:"mood" form:"mood"`
	QuoteID     *uint  `json:"quote_id" form:"quote_id"`
}

type quotePayload struct {
	Text   string `json:"text" form:"text"`
	Author string `json:"author" form:"author"`
}
