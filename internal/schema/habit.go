package schema

import (
	"github.com/julianstephens/habitcraft/internal/constants"
	"github.com/julianstephens/habitcraft/internal/models"
)

// ParseHabitInput builds a HabitInput, applying the color, icon and
// target_days defaults when those keys are absent. An explicit null color or
// icon is stored as "" and re-encodes as "", not null; a null target_days
// becomes an empty list.
func ParseHabitInput(raw Raw) (models.HabitInput, error) {
	return build(raw, func(r *reader) models.HabitInput {
		return models.HabitInput{
			Name:        r.str("name"),
			Description: r.optStr("description"),
			Frequency:   models.HabitFrequency(r.str("frequency")),
			TargetDays:  r.weekdays("target_days"),
			Color:       r.strOr("color", constants.DefaultHabitColor),
			Icon:        r.strOr("icon", constants.DefaultHabitIcon),
		}
	})
}

// ParseHabit builds a stored Habit. Defaults and null handling match
// ParseHabitInput; status defaults to active when absent and rejects null.
func ParseHabit(raw Raw) (models.Habit, error) {
	return build(raw, func(r *reader) models.Habit {
		habit := models.Habit{
			ID:          r.str("id"),
			UserID:      r.str("user_id"),
			Name:        r.str("name"),
			Description: r.optStr("description"),
			Frequency:   models.HabitFrequency(r.str("frequency")),
			TargetDays:  r.weekdays("target_days"),
			Color:       r.strOr("color", constants.DefaultHabitColor),
			Icon:        r.strOr("icon", constants.DefaultHabitIcon),
			Status:      models.StatusActive,
			CreatedAt:   r.timestamp("created_at"),
			UpdatedAt:   r.timestamp("updated_at"),
		}
		if _, ok := r.raw["status"]; ok {
			habit.Status = models.HabitStatus(r.str("status"))
		}
		return habit
	})
}

func ParseHabitStatistics(raw Raw) (models.HabitStatistics, error) {
	return build(raw, func(r *reader) models.HabitStatistics {
		return models.HabitStatistics{
			HabitID:           r.str("habit_id"),
			CurrentStreak:     r.integer("current_streak"),
			LongestStreak:     r.integer("longest_streak"),
			TotalCompletions:  r.integer("total_completions"),
			CompletionRate:    r.number("completion_rate"),
			LastCompletedDate: r.optDate("last_completed_date"),
		}
	})
}
