package auth

import (
	"errors"
	"time"

	"github.com/CePseudoBE/taxcalc/internal/domain/model"
)

var ErrInvalidInput = errors.New("invalid input")

// identityPayload mirrors the backend's user response.
type identityPayload struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	IsModerator bool      `json:"isModerator"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p identityPayload) toModel() model.Identity {
	return model.Identity{
		ID:          p.ID,
		Email:       p.Email,
		IsModerator: p.IsModerator,
		IsAdmin:     p.IsAdmin,
		CreatedAt:   p.CreatedAt,
	}
}

// authPayload is what the backend returns from login, register and google
// sign-in: the identity plus a bearer token with its lifetime in seconds. The
// token goes into the session store and nowhere else.
type authPayload struct {
	User        identityPayload `json:"user"`
	AccessToken string          `json:"accessToken"`
	ExpiresIn   int64           `json:"expiresIn"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleRequest struct {
	IDToken string `json:"idToken"`
}
