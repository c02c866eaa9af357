package constants

const (
	AppName          = "habitcraft"
	Version          = "v0.1.0"
	DefaultConfigDir = "~/.config/habitcraft"
	ConfigFileName   = "config.json"
	ConfigDirFlag    = "--config-dir"
	ConfigDirEnv     = "HABITCRAFT_CONFIG_DIR"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Habit defaults, applied only when the field is absent from the payload
	DefaultHabitColor = "#3B82F6"
	DefaultHabitIcon  = "⭐"

	// Field limits
	HabitNameMinLen        = 1
	HabitNameMaxLen        = 100
	HabitDescriptionMaxLen = 500
	PasswordMinLen         = 8
	MinWeekday             = 0 // Sunday
	MaxWeekday             = 6 // Saturday

	// API error codes
	ErrorCodeValidation = "validation_error"
	ErrorCodeInternal   = "internal_error"

	HealthStatusOK = "ok"
)
