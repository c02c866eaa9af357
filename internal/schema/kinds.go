package schema

import (
	"sort"
)

// Kind names a payload shape that can be decoded and validated
type Kind struct {
	Name        string
	Description string
	Decode      func(data []byte) (any, error)
	Parse       func(raw Raw) (any, error)
}

func kind[T any](name, description string, parse func(Raw) (T, error)) Kind {
	return Kind{
		Name:        name,
		Description: description,
		Decode: func(data []byte) (any, error) {
			return Decode(data, parse)
		},
		Parse: func(raw Raw) (any, error) {
			return parse(raw)
		},
	}
}

var registry = map[string]Kind{}

func register(k Kind) {
	registry[k.Name] = k
}

func init() {
	register(kind("user", "Account returned by the API", ParseUser))
	register(kind("user_registration", "Sign-up payload", ParseUserRegistration))
	register(kind("user_login", "Login payload", ParseUserLogin))
	register(kind("auth_response", "User plus bearer token", ParseAuthResponse))
	register(kind("habit_input", "Habit fields supplied by a client", ParseHabitInput))
	register(kind("habit", "Stored habit", ParseHabit))
	register(kind("completion_input", "Completion fields supplied by a client", ParseCompletionInput))
	register(kind("completion", "Stored completion of a habit for one day", ParseCompletion))
	register(kind("habit_statistics", "Streak and completion aggregate for a habit", ParseHabitStatistics))
	register(kind("api_error", "Error body returned by the API", ParseApiError))
	register(kind("health_response", "Health check body", ParseHealthResponse))
	register(kind("hello_response", "Greeting body", ParseHelloResponse))
	register(kind("list_habits_query", "Habit listing filter", ParseListHabitsQuery))
	register(kind("list_completions_query", "Completion listing date range", ParseListCompletionsQuery))
}

// Lookup returns the kind registered under name
func Lookup(name string) (Kind, bool) {
	k, ok := registry[name]
	return k, ok
}

// Kinds returns every registered kind sorted by name
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for _, k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].Name < kinds[j].Name
	})
	return kinds
}
