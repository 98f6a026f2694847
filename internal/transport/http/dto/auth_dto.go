package dto

import (
	"time"

	"github.com/CePseudoBE/taxcalc/internal/domain/model"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleAuthRequest struct {
	IDToken string `json:"idToken"`
}

// UserResponse is the identity data crossing the client boundary. The access
// token intentionally has no field here.
type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	IsModerator bool      `json:"isModerator"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewUserResponse(id model.Identity) UserResponse {
	return UserResponse{
		ID:          id.ID,
		Email:       id.Email,
		IsModerator: id.IsModerator,
		IsAdmin:     id.IsAdmin,
		CreatedAt:   id.CreatedAt,
	}
}
