package schema

import "github.com/julianstephens/habitcraft/internal/models"

func ParseUser(raw Raw) (models.User, error) {
	return build(raw, readUser)
}

func ParseUserRegistration(raw Raw) (models.UserRegistration, error) {
	return build(raw, func(r *reader) models.UserRegistration {
		return models.UserRegistration{
			Email:    r.str("email"),
			Password: r.str("password"),
			Name:     r.str("name"),
		}
	})
}

func ParseUserLogin(raw Raw) (models.UserLogin, error) {
	return build(raw, func(r *reader) models.UserLogin {
		return models.UserLogin{
			Email:    r.str("email"),
			Password: r.str("password"),
		}
	})
}

func ParseAuthResponse(raw Raw) (models.AuthResponse, error) {
	return build(raw, func(r *reader) models.AuthResponse {
		var resp models.AuthResponse
		if user := r.object("user"); user != nil {
			resp.User = readUser(user)
		}
		resp.Token = r.str("token")
		return resp
	})
}

func readUser(r *reader) models.User {
	return models.User{
		ID:        r.str("id"),
		Email:     r.str("email"),
		Name:      r.str("name"),
		CreatedAt: r.timestamp("created_at"),
		UpdatedAt: r.timestamp("updated_at"),
	}
}
