package response

import (
	"eatyaar/internal/usecase"

	"github.com/google/uuid"
)

type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	Phone     string    `json:"phone"`
	IsNewUser bool      `json:"is_new_user"`
}

func FromAuthResult(r *usecase.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token:     r.Token,
		UserID:    r.UserID,
		Phone:     r.Phone,
		IsNewUser: r.IsNewUser,
	}
}
