package models

import "time"

type CompletionInput struct {
	Date  string  `json:"date"` // YYYY-MM-DD format
	Notes *string `json:"notes"`
}

// Completion records a single day's fulfillment of a habit
type Completion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
