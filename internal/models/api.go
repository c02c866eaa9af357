package models

import (
	"fmt"
	"time"
)

// ApiError is the error body returned by every API endpoint
type ApiError struct {
	Code       string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func (e ApiError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type HelloResponse struct {
	Message string `json:"message"`
}

// ListHabitsQuery filters a habit listing. A nil Status lists every habit.
type ListHabitsQuery struct {
	Status *HabitStatus `json:"status" validate:"omitempty,oneof=active archived"`
}

// ListCompletionsQuery bounds a completion listing by an inclusive date range
type ListCompletionsQuery struct {
	StartDate *string `json:"start_date"` // YYYY-MM-DD format
	EndDate   *string `json:"end_date"`   // YYYY-MM-DD format
}
