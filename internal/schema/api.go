package schema

import (
	"net/url"

	"github.com/julianstephens/habitcraft/internal/models"
)

func ParseApiError(raw Raw) (models.ApiError, error) {
	return build(raw, func(r *reader) models.ApiError {
		return models.ApiError{
			Code:       r.str("error"),
			Message:    r.str("message"),
			StatusCode: r.integer("status_code"),
		}
	})
}

func ParseHealthResponse(raw Raw) (models.HealthResponse, error) {
	return build(raw, func(r *reader) models.HealthResponse {
		return models.HealthResponse{
			Status:    r.str("status"),
			Timestamp: r.timestamp("timestamp"),
			Version:   r.str("version"),
		}
	})
}

func ParseHelloResponse(raw Raw) (models.HelloResponse, error) {
	return build(raw, func(r *reader) models.HelloResponse {
		return models.HelloResponse{Message: r.str("message")}
	})
}

// RawFromValues turns URL query parameters into a Raw, keeping the first
// value of each key.
func RawFromValues(values url.Values) Raw {
	raw := make(Raw, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			raw[key] = vals[0]
		}
	}
	return raw
}

func ParseListHabitsQuery(raw Raw) (models.ListHabitsQuery, error) {
	return build(raw, func(r *reader) models.ListHabitsQuery {
		var query models.ListHabitsQuery
		if s := r.optStr("status"); s != nil {
			status := models.HabitStatus(*s)
			query.Status = &status
		}
		return query
	})
}

// ParseListCompletionsQuery rejects a range whose start falls after its end
func ParseListCompletionsQuery(raw Raw) (models.ListCompletionsQuery, error) {
	return build(raw, func(r *reader) models.ListCompletionsQuery {
		query := models.ListCompletionsQuery{
			StartDate: r.optDate("start_date"),
			EndDate:   r.optDate("end_date"),
		}
		// YYYY-MM-DD compares correctly as a string
		if query.StartDate != nil && query.EndDate != nil && *query.StartDate > *query.EndDate {
			r.fail("start_date", "must not be after end_date")
		}
		return query
	})
}
