package models

import "time"

type HabitFrequency string

const (
	FrequencyDaily  HabitFrequency = "daily"
	FrequencyWeekly HabitFrequency = "weekly"
	FrequencyCustom HabitFrequency = "custom"
)

// Valid reports whether f is one of the known frequencies
func (f HabitFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

// HabitFrequencies returns every accepted frequency in display order
func HabitFrequencies() []HabitFrequency {
	return []HabitFrequency{FrequencyDaily, FrequencyWeekly, FrequencyCustom}
}

type HabitStatus string

const (
	StatusActive   HabitStatus = "active"
	StatusArchived HabitStatus = "archived"
)

// Valid reports whether s is one of the known statuses
func (s HabitStatus) Valid() bool {
	return s == StatusActive || s == StatusArchived
}

// HabitInput is the client-supplied part of a habit. Length tags must match
// the HabitName* and HabitDescriptionMaxLen constants.
type HabitInput struct {
	Name        string         `json:"name" validate:"min=1,max=100"`
	Description *string        `json:"description" validate:"omitempty,max=500"`
	Frequency   HabitFrequency `json:"frequency" validate:"oneof=daily weekly custom"`
	TargetDays  []int          `json:"target_days" validate:"dive,weekday"` // 0=Sunday, 6=Saturday
	Color       string         `json:"color" validate:"omitempty,hexcolor6"`
	Icon        string         `json:"icon"`
}

// Habit is a stored habit: the HabitInput fields plus server-assigned ones
type Habit struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name" validate:"min=1,max=100"`
	Description *string        `json:"description" validate:"omitempty,max=500"`
	Frequency   HabitFrequency `json:"frequency" validate:"oneof=daily weekly custom"`
	TargetDays  []int          `json:"target_days" validate:"dive,weekday"`
	Color       string         `json:"color" validate:"omitempty,hexcolor6"`
	Icon        string         `json:"icon"`
	Status      HabitStatus    `json:"status" validate:"oneof=active archived"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Input returns the client-supplied fields of h
func (h Habit) Input() HabitInput {
	return HabitInput{
		Name:        h.Name,
		Description: h.Description,
		Frequency:   h.Frequency,
		TargetDays:  append([]int{}, h.TargetDays...),
		Color:       h.Color,
		Icon:        h.Icon,
	}
}

// HabitStatistics is a read-only aggregate computed elsewhere
type HabitStatistics struct {
	HabitID           string  `json:"habit_id"`
	CurrentStreak     int     `json:"current_streak"`
	LongestStreak     int     `json:"longest_streak"`
	TotalCompletions  int     `json:"total_completions"`
	CompletionRate    float64 `json:"completion_rate"`
	LastCompletedDate *string `json:"last_completed_date"` // YYYY-MM-DD format
}
