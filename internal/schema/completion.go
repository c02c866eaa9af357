package schema

import "github.com/julianstephens/habitcraft/internal/models"

func ParseCompletionInput(raw Raw) (models.CompletionInput, error) {
	return build(raw, func(r *reader) models.CompletionInput {
		return models.CompletionInput{
			Date:  r.date("date"),
			Notes: r.optStr("notes"),
		}
	})
}

func ParseCompletion(raw Raw) (models.Completion, error) {
	return build(raw, func(r *reader) models.Completion {
		return models.Completion{
			ID:        r.str("id"),
			HabitID:   r.str("habit_id"),
			Date:      r.date("date"),
			Notes:     r.optStr("notes"),
			CreatedAt: r.timestamp("created_at"),
		}
	})
}
