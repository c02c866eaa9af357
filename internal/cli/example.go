package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitcraft/internal/constants"
	"github.com/julianstephens/habitcraft/internal/models"
)

type ExampleCmd struct {
	Kind string `arg:"" help:"Payload kind (see 'habitcraft kinds')."`
}

func (c *ExampleCmd) Run(ctx *Context) error {
	payload, ok := examplePayload(c.Kind, ctx.Now().UTC().Truncate(time.Second))
	if !ok {
		return fmt.Errorf("unknown kind %q (run 'habitcraft kinds' for the list)", c.Kind)
	}
	return ctx.printJSON(payload)
}

// examplePayload returns a sample record of the named kind that passes validation
func examplePayload(kind string, now time.Time) (any, bool) {
	today := now.Format(constants.DateFormat)
	weekAgo := now.AddDate(0, 0, -7).Format(constants.DateFormat)
	notes := "Felt great"
	description := "Twenty minutes before breakfast"
	status := models.StatusActive

	user := models.User{
		ID:        uuid.NewString(),
		Email:     "ada@example.com",
		Name:      "Ada Lovelace",
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch kind {
	case "user":
		return user, true
	case "user_registration":
		return models.UserRegistration{Email: user.Email, Password: "correct-horse", Name: user.Name}, true
	case "user_login":
		return models.UserLogin{Email: user.Email, Password: "correct-horse"}, true
	case "auth_response":
		return models.AuthResponse{User: user, Token: uuid.NewString()}, true
	case "habit_input":
		return models.HabitInput{
			Name:        "Morning run",
			Description: &description,
			Frequency:   models.FrequencyWeekly,
			TargetDays:  []int{1, 3, 5},
			Color:       constants.DefaultHabitColor,
			Icon:        constants.DefaultHabitIcon,
		}, true
	case "habit":
		return models.Habit{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Name:        "Morning run",
			Description: &description,
			Frequency:   models.FrequencyWeekly,
			TargetDays:  []int{1, 3, 5},
			Color:       constants.DefaultHabitColor,
			Icon:        constants.DefaultHabitIcon,
			Status:      models.StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}, true
	case "completion_input":
		return models.CompletionInput{Date: today, Notes: &notes}, true
	case "completion":
		return models.Completion{
			ID:        uuid.NewString(),
			HabitID:   uuid.NewString(),
			Date:      today,
			Notes:     &notes,
			CreatedAt: now,
		}, true
	case "habit_statistics":
		return models.HabitStatistics{
			HabitID:           uuid.NewString(),
			CurrentStreak:     4,
			LongestStreak:     12,
			TotalCompletions:  37,
			CompletionRate:    0.82,
			LastCompletedDate: &today,
		}, true
	case "api_error":
		return models.ApiError{
			Code:       constants.ErrorCodeValidation,
			Message:    "validation failed: color: must be a valid hex color code",
			StatusCode: http.StatusBadRequest,
		}, true
	case "health_response":
		return models.HealthResponse{Status: constants.HealthStatusOK, Timestamp: now, Version: constants.Version}, true
	case "hello_response":
		return models.HelloResponse{Message: "Hello from HabitCraft"}, true
	case "list_habits_query":
		return models.ListHabitsQuery{Status: &status}, true
	case "list_completions_query":
		return models.ListCompletionsQuery{StartDate: &weekAgo, EndDate: &today}, true
	}
	return nil, false
}
