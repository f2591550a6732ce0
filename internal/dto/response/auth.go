package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID     string          `json:"user_id"`
	Token      string          `json:"token,omitempty"`
	ExpiresAt  time.Time       `json:"expires_at,omitzero"`
	Email      string          `json:"email"`
	Type       entity.UserType `json:"type"`
	IsApproved bool            `json:"is_approved"`
}

type UserResponse struct {
	ID         string          `json:"su_id"`
	Email      string          `json:"su_email"`
	Type       entity.UserType `json:"su_type"`
	IsApproved bool            `json:"su_is_approve"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.ServiceUser) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Type:       user.Type,
		IsApproved: user.IsApproved,
		CreatedAt:  user.CreatedAt,
	}
}

func AuthToResponse(user *entity.ServiceUser, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:     user.ID.String(),
		Email:      user.Email,
		Type:       user.Type,
		IsApproved: user.IsApproved,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
