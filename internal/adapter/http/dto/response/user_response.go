package response

import (
	"urb_denuncias/internal/domain/entities"
)

type UserResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func NewLoginResponse(u entities.User, token string) LoginResponse {
	return LoginResponse{Token: token, User: FromUser(u)}
}
