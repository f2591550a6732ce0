package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeAdmin      UserType = "admin"
	UserTypeSuperAdmin UserType = "super admin"
	UserTypeMechanic   UserType = "mechanic"
)

func (t UserType) IsValid() bool {
	switch t {
	case UserTypeAdmin, UserTypeSuperAdmin, UserTypeMechanic:
		return true
	}
	return false
}

// ServiceUser is a staff account. IsApproved gates login on top of valid
// credentials: a freshly registered account cannot sign in until an admin
// flips the flag.
type ServiceUser struct {
	ID           uuid.UUID `db:"su_id"`
	Email        string    `db:"su_email"`
	PasswordHash string    `db:"su_password"`
	Type         UserType  `db:"su_type"`
	IsApproved   bool      `db:"su_is_approve"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *ServiceUser) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:         u.ID,
		Email:      u.Email,
		Type:       u.Type,
		IsApproved: u.IsApproved,
	}
}
